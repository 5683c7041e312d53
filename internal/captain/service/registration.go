package service

import (
	"context"
	"errors"
	"fmt"

	"ride-hail/internal/captain/handler/dto"
	"ride-hail/internal/captain/model"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=registration.go -destination=mocks/store_mock.go -package=mocks CaptainStore

//nolint:stylecheck // message is part of the public contract
var ErrAllFieldsRequired = errors.New("All fields are required")

// CaptainStore persists captain records. Identity, timestamps and uniqueness
// are owned by the implementation.
type CaptainStore interface {
	Create(ctx context.Context, captain model.Captain) (model.Captain, error)
}

// PresencePolicy decides what counts as a missing capacity.
type PresencePolicy int

const (
	// PresenceTruthy treats a zero capacity as missing, like every other empty field.
	PresenceTruthy PresencePolicy = iota
	// PresenceExplicit only requires capacity to be set; zero is accepted.
	PresenceExplicit
)

func ParsePresencePolicy(s string) (PresencePolicy, error) {
	switch s {
	case "", "truthy":
		return PresenceTruthy, nil
	case "explicit":
		return PresenceExplicit, nil
	default:
		return PresenceTruthy, fmt.Errorf("unknown presence policy: %q", s)
	}
}

// validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

type Option func(*RegistrationService)

func WithPresencePolicy(p PresencePolicy) Option {
	return func(s *RegistrationService) {
		s.policy = p
	}
}

type RegistrationService struct {
	store  CaptainStore
	policy PresencePolicy
}

func NewRegistrationService(store CaptainStore, opts ...Option) *RegistrationService {
	s := &RegistrationService{store: store, policy: PresenceTruthy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates req and submits a new captain to the store. Whatever the
// store returns, record or error, is handed back unchanged.
func (s *RegistrationService) Register(ctx context.Context, req dto.RegisterCaptainRequest) (model.Captain, error) {
	if !s.complete(req) {
		return model.Captain{}, ErrAllFieldsRequired
	}

	captain := model.Captain{
		Fullname: model.Fullname{
			Firstname: req.Firstname,
			Lastname:  req.Lastname,
		},
		Email:    req.Email,
		Password: req.Password,
		Vehicle: model.Vehicle{
			Plate:       req.Plate,
			Color:       req.Color,
			Capacity:    *req.Capacity,
			VehicleType: model.VehicleType(req.VehicleType),
		},
	}

	return s.store.Create(ctx, captain)
}

func (s *RegistrationService) complete(req dto.RegisterCaptainRequest) bool {
	if err := validate.Struct(req); err != nil {
		return false
	}
	if s.policy == PresenceTruthy && *req.Capacity == 0 {
		return false
	}
	return true
}
