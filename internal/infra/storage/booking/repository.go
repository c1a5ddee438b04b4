package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FlexDesk-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"listing_id",
	"desk_id",
	"desk_label",
	"date",
	"time",
	"duration",
	"status",
	"total_price",
	"check_in_code",
	"user_id",
	"booking_date",
	"start_minute",
	"duration_minutes",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// При создании через usecase транзакция обязательна: проверка пересечений и вставка
// должны видеть одно и то же состояние.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"listing_id",
			"desk_id",
			"desk_label",
			"date",
			"time",
			"duration",
			"status",
			"total_price",
			"check_in_code",
			"user_id",
			"booking_date",
			"start_minute",
			"duration_minutes",
			"timezone",
		).
		Values(
			booking.ListingID,
			booking.DeskID,
			booking.DeskLabel,
			booking.Date,
			booking.Time,
			booking.Duration,
			booking.Status,
			booking.TotalPrice,
			booking.CheckInCode,
			booking.UserID,
			booking.BookingDate,
			booking.StartMinute,
			booking.DurationMinutes,
			booking.Timezone,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку под смену статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, сначала новые
//
// Примеры использования:
//
// 1. Бронирования пользователя:
//
//	filter := domain.BookingsFilter{UserID: &userID}
//
// 2. Занятость места на дату (для проверки пересечений, внутри транзакции):
//
//	filter := domain.BookingsFilter{ListingID: &id, DeskID: &deskID, DeskLabel: &label, StartDate: &d, EndDate: &d, OnlyActive: true, ForUpdate: true}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.ListingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"listing_id": *filter.ListingID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if cond := deskCondition(filter); cond != nil {
		selectBuilder = selectBuilder.Where(cond)
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if filter.OnlyActive {
		activeStatuses := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatuses})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC", "id DESC")

	// FOR UPDATE имеет смысл только внутри транзакции
	if filter.ForUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus меняет статус, только если текущий статус равен from.
// Проверку допустимости перехода выполняет вызывающий код (domain.Transition).
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		// либо бронирования нет, либо статус уже другой
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return r.GetByID(ctx, updatedID)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.ListingID,
		&booking.DeskID,
		&booking.DeskLabel,
		&booking.Date,
		&booking.Time,
		&booking.Duration,
		&booking.Status,
		&booking.TotalPrice,
		&booking.CheckInCode,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartMinute,
		&booking.DurationMinutes,
		&booking.Timezone,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// deskCondition выбирает бронирования места: по ID, а строки без desk_id по метке без учета регистра
func deskCondition(filter domain.BookingsFilter) squirrel.Sqlizer {
	byLabel := func(label string) squirrel.Sqlizer {
		return squirrel.Expr("lower(desk_label) = lower(?)", label)
	}

	switch {
	case filter.DeskID != nil && filter.DeskLabel != nil:
		return squirrel.Or{
			squirrel.Eq{"desk_id": *filter.DeskID},
			squirrel.And{squirrel.Eq{"desk_id": nil}, byLabel(*filter.DeskLabel)},
		}
	case filter.DeskID != nil:
		return squirrel.Eq{"desk_id": *filter.DeskID}
	case filter.DeskLabel != nil:
		return byLabel(*filter.DeskLabel)
	}
	return nil
}
