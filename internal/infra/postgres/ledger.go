package postgres

import (
	"context"
	"errors"
	"time"

	"shootbook/internal/domain/reservation"
	"shootbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Ledger is the durable reservation store. Slot uniqueness among active
// records is enforced by the partial unique index in migrations.go.
type Ledger struct {
	pool *pgxpool.Pool
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool}
}

func (l *Ledger) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	var id int64
	err := l.pool.QueryRow(ctx, `
		INSERT INTO reservations
			(shoot_date, time_label, shoot_type, phone, requester_id, requester_name, requester_handle, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
		RETURNING id
	`,
		res.Slot().Date(),
		res.Slot().TimeLabel(),
		res.ShootType().String(),
		res.Phone().String(),
		res.Requester().ID(),
		res.Requester().Name(),
		res.Requester().Handle(),
		res.Status().String(),
		res.CreatedAt(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, infra.WrapRepoErr("slot already reserved", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (l *Ledger) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row := l.pool.QueryRow(ctx, `
		SELECT id, shoot_date, time_label, shoot_type, phone, requester_id, requester_name, requester_handle, status, created_at, updated_at
		FROM reservations WHERE id = $1
	`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

func (l *Ledger) ListActive(ctx context.Context) ([]*reservation.Reservation, error) {
	return l.list(ctx, `
		SELECT id, shoot_date, time_label, shoot_type, phone, requester_id, requester_name, requester_handle, status, created_at, updated_at
		FROM reservations WHERE status = 'new' ORDER BY id
	`)
}

func (l *Ledger) ListActiveByRequester(ctx context.Context, requesterID int64) ([]*reservation.Reservation, error) {
	return l.list(ctx, `
		SELECT id, shoot_date, time_label, shoot_type, phone, requester_id, requester_name, requester_handle, status, created_at, updated_at
		FROM reservations WHERE status = 'new' AND requester_id = $1 ORDER BY id
	`, requesterID)
}

// UpdateStatus applies a transition already validated against the domain
// lifecycle. The status = 'new' guard protects against a concurrent
// transition committed between read and write.
func (l *Ledger) UpdateStatus(ctx context.Context, id int64, next reservation.Status, now time.Time) error {
	tag, err := l.pool.Exec(ctx, `
		UPDATE reservations SET status = $2, updated_at = $3
		WHERE id = $1 AND status = 'new'
	`, id, next.String(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := l.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists); err != nil {
			return infra.WrapRepoErr("failed to check reservation existence", err)
		}
		if !exists {
			return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("reservation no longer active", nil, infra.KindStale)
	}
	return nil
}

func (l *Ledger) IsSlotTaken(ctx context.Context, date, timeLabel string) (bool, error) {
	var taken bool
	err := l.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE shoot_date = $1 AND time_label = $2 AND status = 'new'
		)
	`, date, timeLabel).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot", err)
	}
	return taken, nil
}

func (l *Ledger) TakenTimes(ctx context.Context, date string) (map[string]bool, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT time_label FROM reservations
		WHERE shoot_date = $1 AND status = 'new'
	`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list taken times", err)
	}
	defer rows.Close()

	taken := make(map[string]bool)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time label", err)
		}
		taken[label] = true
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate taken times", err)
	}
	return taken, nil
}

func (l *Ledger) list(ctx context.Context, sql string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := l.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var out []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id                   int64
		date, label          string
		shoot, phone         string
		requesterID          int64
		name, handle, status string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &date, &label, &shoot, &phone, &requesterID, &name, &handle, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	slot, err := reservation.NewSlot(date, label)
	if err != nil {
		return nil, err
	}
	shootType, err := reservation.NewShootType(shoot)
	if err != nil {
		return nil, err
	}
	phoneVO, err := reservation.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	requester, err := reservation.NewRequester(requesterID, name, handle)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		id, slot, shootType, phoneVO, requester,
		reservation.Status(status), createdAt, updatedAt,
	), nil
}
