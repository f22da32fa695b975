package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "user-directory/internal/application"
	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
	"user-directory/pkg/response"
	"user-directory/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	DisplayName  string `json:"display_name" binding:"required"`
	EmailAddress string `json:"email_address" binding:"required,email"`
}

type banUserRequest struct {
	ReasonCode *byte `json:"reason_code"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	proj, err := h.Svc.Create(c.Request.Context(), req.DisplayName, req.EmailAddress)
	if err != nil {
		h.Logger.WithError(err).Error("create user failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create user", nil)
		return
	}
	response.Success(c, http.StatusCreated, proj, "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	proj, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load user", nil)
		return
	}
	response.Success(c, http.StatusOK, proj, "user", nil)
}

// Ban excludes a user. The reason code is optional and defaults to the
// domain's default exclusion reason.
func (h *UserHandler) Ban(c *gin.Context) {
	id := c.Param("id")

	var req banUserRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
	}
	reasonCode := entity.DefaultExclusionReasonID
	if req.ReasonCode != nil {
		reasonCode = *req.ReasonCode
	}

	proj, err := h.Svc.Ban(c.Request.Context(), id, reasonCode)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
		case errors.Is(err, entity.ErrInvalidReasonCode):
			response.Error[any](c, http.StatusBadRequest, "unknown exclusion reason code", nil)
		default:
			h.Logger.WithError(err).WithField("user_id", id).Error("ban user failed")
			response.Error[any](c, http.StatusInternalServerError, "failed to ban user", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, proj, "user banned", nil)
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Error("user search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
