package repository

import (
	"context"
	"sync"
	"testing"

	"ride-hail/internal/captain/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
}

func (s *MemoryStoreSuite) TestCreate() {
	s.Run("assigns identity and default status", func() {
		got, err := s.store.Create(context.Background(), sampleCaptain())
		s.Require().NoError(err)

		_, parseErr := uuid.Parse(got.ID)
		s.NoError(parseErr)
		s.False(got.CreatedAt.IsZero())
		s.Equal(model.CaptainStatusInactive, got.Status)
		s.Equal(sampleCaptain().Fullname, got.Fullname)
		s.Equal(sampleCaptain().Vehicle, got.Vehicle)
	})

	s.Run("rejects a second captain with the same email", func() {
		dup := sampleCaptain()
		dup.Email = "SAM@x.com"

		_, err := s.store.Create(context.Background(), dup)
		s.Require().ErrorIs(err, model.ErrEmailTaken)
		s.Equal(1, s.store.Len())
	})

	s.Run("honours a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		other := sampleCaptain()
		other.Email = "other@x.com"
		_, err := s.store.Create(ctx, other)
		s.Require().ErrorIs(err, context.Canceled)
	})
}

func (s *MemoryStoreSuite) TestConcurrentDuplicateEmail() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Create(context.Background(), sampleCaptain())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else if err == model.ErrEmailTaken {
				taken++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, success)
	s.Equal(24, taken)
}
