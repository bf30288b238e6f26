package readstore

import (
	"context"
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(pool db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: pool}
}

func (s *AvailabilityReadStore) BookedStartTimes(ctx context.Context, categoryID uuid.UUID, date time.Time) ([]consultation.TimeOfDay, error) {
	rows, err := s.db.Query(ctx,
		`SELECT start_time FROM appointments
		 WHERE category_id = $1 AND date = $2
		 ORDER BY start_time`,
		pgconv.UUIDToPgtype(categoryID),
		pgconv.DateToPgtype(date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked times", err)
	}
	defer rows.Close()

	var times []consultation.TimeOfDay
	for rows.Next() {
		var start pgtype.Time
		if err := rows.Scan(&start); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time", err)
		}
		times = append(times, pgconv.TimeOfDayFromPgtype(start))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked times", err)
	}
	return times, nil
}

func (s *AvailabilityReadStore) SlotTaken(ctx context.Context, categoryID uuid.UUID, date time.Time, start consultation.TimeOfDay) (bool, error) {
	var taken bool
	row := s.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM appointments
		     WHERE category_id = $1 AND date = $2 AND start_time = $3
		 )`,
		pgconv.UUIDToPgtype(categoryID),
		pgconv.DateToPgtype(date),
		pgconv.TimeOfDayToPgtype(start),
	)
	if err := row.Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return taken, nil
}
