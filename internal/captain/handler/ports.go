package handler

import (
	"context"

	"ride-hail/internal/captain/handler/dto"
	"ride-hail/internal/captain/model"
	"ride-hail/internal/common/rmq"
)

type Registrar interface {
	Register(ctx context.Context, req dto.RegisterCaptainRequest) (model.Captain, error)
}

type TokenIssuer interface {
	GenerateTokens(captainID, role string) (accessToken, refreshToken string, err error)
}

type EventPublisher interface {
	PublishCaptainRegistered(ctx context.Context, msg rmq.CaptainRegisteredMessage) error
}
