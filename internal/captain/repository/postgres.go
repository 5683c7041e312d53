package repository

import (
	"context"
	"errors"
	"fmt"

	"ride-hail/internal/captain/model"
	"ride-hail/internal/captain/service"
	"ride-hail/internal/common/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// Querier is the part of pgxpool.Pool the repository needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CaptainRepository struct {
	db Querier
}

var _ service.CaptainStore = (*CaptainRepository)(nil)

func NewCaptainRepository(db Querier) *CaptainRepository {
	return &CaptainRepository{db: db}
}

func (r *CaptainRepository) Create(ctx context.Context, captain model.Captain) (model.Captain, error) {
	var created model.Captain

	query := `
		INSERT INTO captains (firstname, lastname, email, password, plate, color, capacity, vehicle_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text, created_at, firstname, lastname, email, password,
		          plate, color, capacity, vehicle_type, status
	`

	err := r.db.QueryRow(
		ctx,
		query,
		captain.Fullname.Firstname,
		captain.Fullname.Lastname,
		captain.Email,
		captain.Password,
		captain.Vehicle.Plate,
		captain.Vehicle.Color,
		captain.Vehicle.Capacity,
		captain.Vehicle.VehicleType,
	).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.Fullname.Firstname,
		&created.Fullname.Lastname,
		&created.Email,
		&created.Password,
		&created.Vehicle.Plate,
		&created.Vehicle.Color,
		&created.Vehicle.Capacity,
		&created.Vehicle.VehicleType,
		&created.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			logger.Warn("create_captain", "duplicate captain email", "", "", pgErr.Message)
			return model.Captain{}, model.ErrEmailTaken
		}
		logger.Error("create_captain", "failed to insert captain", "", "", err.Error())
		return model.Captain{}, fmt.Errorf("failed to insert captain: %w", err)
	}

	logger.Debug("create_captain", "captain inserted", "", created.ID)
	return created, nil
}
