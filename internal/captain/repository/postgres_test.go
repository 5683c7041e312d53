package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ride-hail/internal/captain/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *int:
			*p = r.values[i].(int)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *model.VehicleType:
			*p = model.VehicleType(r.values[i].(string))
		case *model.CaptainStatus:
			*p = model.CaptainStatus(r.values[i].(string))
		default:
			return errors.New("unexpected scan target")
		}
	}
	return nil
}

type fakeQuerier struct {
	row  fakeRow
	sql  string
	args []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func TestCaptainRepositoryCreate(t *testing.T) {
	created := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	t.Run("inserts the record and returns the stored row", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{values: []any{
			"6f1c6a3e-3d1f-4c55-9a55-0d3c1f1f2b11", created, "Sam", "", "sam@x.com", "pw123",
			"KA-01-HH-1234", "black", 4, "car", "inactive",
		}}}
		repo := NewCaptainRepository(q)

		got, err := repo.Create(context.Background(), sampleCaptain())
		require.NoError(t, err)

		assert.Contains(t, q.sql, "INSERT INTO captains")
		assert.Equal(t, []any{"Sam", "", "sam@x.com", "pw123", "KA-01-HH-1234", "black", 4, model.VehicleCar}, q.args)
		assert.Equal(t, "6f1c6a3e-3d1f-4c55-9a55-0d3c1f1f2b11", got.ID)
		assert.Equal(t, created, got.CreatedAt)
		assert.Equal(t, model.CaptainStatusInactive, got.Status)
		assert.Equal(t, sampleCaptain().Vehicle, got.Vehicle)
	})

	t.Run("maps unique violations to ErrEmailTaken", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: &pgconn.PgError{Code: "23505", Message: "duplicate key"}}}
		repo := NewCaptainRepository(q)

		_, err := repo.Create(context.Background(), sampleCaptain())
		require.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("wraps other failures", func(t *testing.T) {
		boom := errors.New("connection reset")
		q := &fakeQuerier{row: fakeRow{err: boom}}
		repo := NewCaptainRepository(q)

		_, err := repo.Create(context.Background(), sampleCaptain())
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, model.ErrEmailTaken)
	})
}

func sampleCaptain() model.Captain {
	return model.Captain{
		Fullname: model.Fullname{Firstname: "Sam"},
		Email:    "sam@x.com",
		Password: "pw123",
		Vehicle: model.Vehicle{
			Plate:       "KA-01-HH-1234",
			Color:       "black",
			Capacity:    4,
			VehicleType: model.VehicleCar,
		},
	}
}
