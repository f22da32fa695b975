package application

import (
	"context"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
	"user-directory/pkg/helpers"
)

// Service is the directory orchestration layer: Create, Get and Ban. Reads
// go through the cache-aside accessor; mutations load the authoritative
// record from the store directly, apply the domain transition and then
// persist-and-refresh.
type Service struct {
	Repo         repository.UserRepository
	Accessor     *CacheAside
	Logger       *logrus.Logger
	Events       *helpers.RabbitPublisher
	ES           *elasticsearch.Client
	ESUsersIndex string
}

func NewService(repo repository.UserRepository, accessor *CacheAside, logger *logrus.Logger, events *helpers.RabbitPublisher, es *elasticsearch.Client, esUsersIndex string) *Service {
	return &Service{
		Repo:         repo,
		Accessor:     accessor,
		Logger:       logger,
		Events:       events,
		ES:           es,
		ESUsersIndex: esUsersIndex,
	}
}

// Create registers a new active user with a system-generated identifier.
// Fails with ErrPersistenceFailure when the durable write does not succeed.
func (s *Service) Create(ctx context.Context, displayName, emailAddress string) (*UserProjection, error) {
	u := entity.NewUser(displayName, emailAddress)
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "display_name": displayName}).Info("creating user")

	proj, err := s.Accessor.PersistAndRefresh(ctx, u)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, EventUserCreated, u)
	_ = s.indexUser(ctx, u)
	return proj, nil
}

// Get resolves a user projection by identifier, cache first.
// repository.ErrNotFound propagates unchanged.
func (s *Service) Get(ctx context.Context, id string) (*UserProjection, error) {
	return s.Accessor.Resolve(ctx, id)
}

// Ban excludes a user with the given reason code. The current record is
// loaded from the store directly, never from the cache, since the mutation
// must act on authoritative state. Re-banning overwrites the reason.
func (s *Service) Ban(ctx context.Context, id string, reasonID byte) (*UserProjection, error) {
	reason, err := entity.ExclusionReasonFromID(reasonID)
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": id, "reason": reason.String()}).Info("banning user")

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Exclude(reason)

	proj, err := s.Accessor.PersistAndRefresh(ctx, u)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, EventUserBanned, u)
	_ = s.indexUser(ctx, u)
	return proj, nil
}
