package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FlexDesk-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий окон доступности, блокировок дат и исключений по местам.
// Replace* методы удаляют и вставляют набор целиком; атомарность обеспечивает
// транзакция вызывающего кода (через контекст).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWindows получает окна доступности объявления
func (r *Repository) GetWindows(ctx context.Context, listingID int64) ([]domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"listing_id",
		"day_of_week",
		"start_time",
		"end_time",
		"timezone",
		"is_all_day",
		"applies_to_all_desks",
	).
		From("availability_windows").
		Where(squirrel.Eq{"listing_id": listingID}).
		OrderBy("day_of_week ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.AvailabilityWindow, 0)
	for rows.Next() {
		var w domain.AvailabilityWindow
		err := rows.Scan(
			&w.ID,
			&w.ListingID,
			&w.DayOfWeek,
			&w.StartTime,
			&w.EndTime,
			&w.Timezone,
			&w.IsAllDay,
			&w.AppliesToAllDesks,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ReplaceWindows заменяет все окна объявления
func (r *Repository) ReplaceWindows(ctx context.Context, listingID int64, windows []domain.AvailabilityWindow) error {
	if err := r.deleteWhere(ctx, "ReplaceWindows", "availability_windows", squirrel.Eq{"listing_id": listingID}); err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("availability_windows").
		Columns(
			"listing_id",
			"day_of_week",
			"start_time",
			"end_time",
			"timezone",
			"is_all_day",
			"applies_to_all_desks",
		)
	for _, w := range windows {
		insert = insert.Values(
			listingID,
			w.DayOfWeek,
			w.StartTime,
			w.EndTime,
			w.Timezone,
			w.IsAllDay,
			w.AppliesToAllDesks,
		)
	}

	return r.exec(ctx, "ReplaceWindows", insert)
}

// GetBlackouts получает блокировки дат объявления.
// from/to ограничивают период включительно, nil - без ограничения.
func (r *Repository) GetBlackouts(ctx context.Context, listingID int64, from, to *time.Time) ([]domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"listing_id",
		"date",
		"start_time",
		"end_time",
		"reason",
	).
		From("blackout_dates").
		Where(squirrel.Eq{"listing_id": listingID})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *to})
	}

	query, args, err := selectBuilder.OrderBy("date ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackouts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackouts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]domain.BlackoutDate, 0)
	for rows.Next() {
		var b domain.BlackoutDate
		err := rows.Scan(
			&b.ID,
			&b.ListingID,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&b.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBlackouts - scan row: %v", ErrScanRow, err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlackouts - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// ReplaceBlackouts заменяет все блокировки дат объявления
func (r *Repository) ReplaceBlackouts(ctx context.Context, listingID int64, blackouts []domain.BlackoutDate) error {
	if err := r.deleteWhere(ctx, "ReplaceBlackouts", "blackout_dates", squirrel.Eq{"listing_id": listingID}); err != nil {
		return err
	}
	if len(blackouts) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("blackout_dates").
		Columns("listing_id", "date", "start_time", "end_time", "reason")
	for _, b := range blackouts {
		insert = insert.Values(listingID, b.Date, b.StartTime, b.EndTime, b.Reason)
	}

	return r.exec(ctx, "ReplaceBlackouts", insert)
}

// GetOverrides получает исключения доступности места.
// date != nil ограничивает выборку одной датой.
func (r *Repository) GetOverrides(ctx context.Context, deskID int64, date *time.Time) ([]domain.DeskAvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"desk_id",
		"date",
		"start_time",
		"end_time",
		"available",
	).
		From("desk_availability_overrides").
		Where(squirrel.Eq{"desk_id": deskID})

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *date})
	}

	query, args, err := selectBuilder.OrderBy("date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.DeskAvailabilityOverride, 0)
	for rows.Next() {
		var o domain.DeskAvailabilityOverride
		err := rows.Scan(
			&o.ID,
			&o.DeskID,
			&o.Date,
			&o.StartTime,
			&o.EndTime,
			&o.Available,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverrides - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// ReplaceOverrides заменяет все исключения места
func (r *Repository) ReplaceOverrides(ctx context.Context, deskID int64, overrides []domain.DeskAvailabilityOverride) error {
	if err := r.deleteWhere(ctx, "ReplaceOverrides", "desk_availability_overrides", squirrel.Eq{"desk_id": deskID}); err != nil {
		return err
	}
	if len(overrides) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("desk_availability_overrides").
		Columns("desk_id", "date", "start_time", "end_time", "available")
	for _, o := range overrides {
		insert = insert.Values(deskID, o.Date, o.StartTime, o.EndTime, o.Available)
	}

	return r.exec(ctx, "ReplaceOverrides", insert)
}

func (r *Repository) deleteWhere(ctx context.Context, op, table string, where squirrel.Eq) error {
	return r.exec(ctx, op, psqlbuilder.Delete(table).Where(where))
}

func (r *Repository) exec(ctx context.Context, op string, builder squirrel.Sqlizer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build query: %v", ErrBuildQuery, op, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	return nil
}
