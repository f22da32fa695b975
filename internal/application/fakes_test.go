package application

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"user-directory/internal/domain/entity"
	"user-directory/internal/domain/repository"
)

func newTestLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// countingRepo is an in-memory store that counts calls and can be forced to
// fail, so tests can assert on store traffic and failure ordering.
type countingRepo struct {
	mu        sync.Mutex
	users     map[string]entity.User
	getCalls  int
	saveCalls int
	saveErr   error
	getErr    error
}

func newCountingRepo() *countingRepo {
	return &countingRepo{users: make(map[string]entity.User)}
}

func (r *countingRepo) Save(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[u.ID] = *u
	return nil
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := u
	return &out, nil
}

var _ repository.UserRepository = (*countingRepo)(nil)

// recordingCache stores JSON payloads without expiry and records every TTL
// it was handed, so tests can verify the uniform TTL policy.
type recordingCache struct {
	mu       sync.Mutex
	values   map[string][]byte
	ttls     []time.Duration
	setCalls int
	setErr   error
	getErr   error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{values: make(map[string][]byte)}
}

func (c *recordingCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *recordingCache) SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = b
	c.ttls = append(c.ttls, ttl)
	return nil
}
