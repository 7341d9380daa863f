package repositories

import (
	"context"

	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindOpenDates(ctx context.Context) ([]string, error)
	ReplaceOpenDates(ctx context.Context, dates []string) error
}

func New(db *sqlx.DB, logger log.Logger) Repositories {
	return &repositories{db: db, log: logger}
}

func (r *repositories) FindOpenDates(ctx context.Context) ([]string, error) {
	var dates []string
	err := r.db.SelectContext(ctx, &dates, `SELECT to_char(open_date, 'YYYY-MM-DD') FROM open_dates ORDER BY open_date`)
	if err != nil {
		return nil, errors.InternalServerError("error find open dates")
	}
	return dates, nil
}

// ReplaceOpenDates swaps the whole list transactionally so readers never
// observe a half-written calendar.
func (r *repositories) ReplaceOpenDates(ctx context.Context, dates []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM open_dates`); err != nil {
		tx.Rollback()
		return errors.InternalServerError("error clear open dates")
	}

	for _, date := range dates {
		if _, err := tx.ExecContext(ctx, `INSERT INTO open_dates (open_date) VALUES ($1) ON CONFLICT DO NOTHING`, date); err != nil {
			tx.Rollback()
			return errors.InternalServerError("error insert open date")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}
