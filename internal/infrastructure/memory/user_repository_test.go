package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
)

type InMemoryUserRepositorySuite struct {
	suite.Suite
	repo *UserRepository
}

func (s *InMemoryUserRepositorySuite) SetupTest() {
	s.repo = NewUserRepository()
}

func TestInMemoryUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryUserRepositorySuite))
}

func (s *InMemoryUserRepositorySuite) TestSaveAndGet() {
	u := entity.NewUser("Jane Doe", "jane.doe@example.com")
	s.Require().NoError(s.repo.Save(context.Background(), u))

	found, err := s.repo.GetByID(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)
	s.Equal(u.DisplayName, found.DisplayName)
}

func (s *InMemoryUserRepositorySuite) TestGetMissingReturnsErrNotFound() {
	_, err := s.repo.GetByID(context.Background(), "no-such-id")
	s.Require().ErrorIs(err, repository.ErrNotFound)
}

func (s *InMemoryUserRepositorySuite) TestSaveIsIdempotentUpsert() {
	u := entity.NewUser("Jane Doe", "jane.doe@example.com")
	s.Require().NoError(s.repo.Save(context.Background(), u))
	s.Require().NoError(s.repo.Save(context.Background(), u))

	found, err := s.repo.GetByID(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Equal(u.DisplayName, found.DisplayName)
}

func (s *InMemoryUserRepositorySuite) TestSaveOverwritesStoredFields() {
	u := entity.NewUser("Jane Doe", "jane.doe@example.com")
	s.Require().NoError(s.repo.Save(context.Background(), u))

	u.Exclude(entity.ReasonCheating)
	s.Require().NoError(s.repo.Save(context.Background(), u))

	found, err := s.repo.GetByID(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.ExclusionReason)
	s.Equal(entity.ReasonCheating, *found.ExclusionReason)
}

func (s *InMemoryUserRepositorySuite) TestGetReturnsCopy() {
	u := entity.NewUser("Jane Doe", "jane.doe@example.com")
	s.Require().NoError(s.repo.Save(context.Background(), u))

	first, err := s.repo.GetByID(context.Background(), u.ID)
	s.Require().NoError(err)
	first.DisplayName = "mutated"

	second, err := s.repo.GetByID(context.Background(), u.ID)
	s.Require().NoError(err)
	s.Equal("Jane Doe", second.DisplayName)
}

func (s *InMemoryUserRepositorySuite) TestHonorsCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := entity.NewUser("Jane Doe", "jane.doe@example.com")
	s.Require().Error(s.repo.Save(ctx, u))
	_, err := s.repo.GetByID(ctx, u.ID)
	s.Require().Error(err)
	s.Require().NotErrorIs(err, repository.ErrNotFound)
}
