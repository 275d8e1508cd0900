package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The partial unique index is what makes the conflict check and the insert
// a single atomic step: two concurrent appends for the same slot can never
// both commit while status = 'new'.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id BIGSERIAL PRIMARY KEY,
	shoot_date TEXT NOT NULL,
	time_label TEXT NOT NULL,
	shoot_type TEXT NOT NULL,
	phone TEXT NOT NULL,
	requester_id BIGINT NOT NULL,
	requester_name TEXT NOT NULL,
	requester_handle TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'new',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
	ON reservations (shoot_date, time_label) WHERE status = 'new';

CREATE INDEX IF NOT EXISTS idx_reservations_requester
	ON reservations (requester_id);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
