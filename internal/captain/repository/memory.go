package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"ride-hail/internal/captain/model"
	"ride-hail/internal/captain/service"

	"github.com/google/uuid"
)

// MemoryStore keeps captains in process. Used for local runs and tests.
type MemoryStore struct {
	mu       sync.Mutex
	captains map[string]model.Captain
	byEmail  map[string]string
	now      func() time.Time
}

var _ service.CaptainStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		captains: make(map[string]model.Captain),
		byEmail:  make(map[string]string),
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context, captain model.Captain) (model.Captain, error) {
	if err := ctx.Err(); err != nil {
		return model.Captain{}, err
	}

	key := strings.ToLower(captain.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[key]; ok {
		return model.Captain{}, model.ErrEmailTaken
	}

	captain.ID = uuid.NewString()
	captain.CreatedAt = s.now().UTC()
	if captain.Status == "" {
		captain.Status = model.CaptainStatusInactive
	}

	s.captains[captain.ID] = captain
	s.byEmail[key] = captain.ID
	return captain, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.captains)
}
