package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	"github.com/m04kA/FlexDesk-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FlexDesk-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var listingColumns = []string{
	"id",
	"owner_id",
	"title",
	"timezone",
	"price_per_hour",
	"paid_enabled",
	"requires_approval",
	"requires_id",
	"mode",
	"allowed_emails",
	"created_at",
	"updated_at",
}

var deskColumns = []string{
	"id",
	"listing_id",
	"label",
	"created_at",
	"updated_at",
}

// Repository репозиторий для объявлений и мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое объявление
func (r *Repository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("listings").
		Columns(
			"owner_id",
			"title",
			"timezone",
			"price_per_hour",
			"paid_enabled",
			"requires_approval",
			"requires_id",
			"mode",
			"allowed_emails",
		).
		Values(
			listing.OwnerID,
			listing.Title,
			listing.Timezone,
			listing.PricePerHour,
			listing.PaidEnabled,
			listing.RequiresApproval,
			listing.RequiresID,
			listing.Mode,
			pq.Array(emailsOrEmpty(listing.AllowedEmails)),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&listing.ID,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return listing, nil
}

// GetByID получает объявление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var listing domain.Listing
	var emails pq.StringArray

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&listing.ID,
		&listing.OwnerID,
		&listing.Title,
		&listing.Timezone,
		&listing.PricePerHour,
		&listing.PaidEnabled,
		&listing.RequiresApproval,
		&listing.RequiresID,
		&listing.Mode,
		&emails,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan listing: %v", ErrScanRow, err)
	}

	listing.AllowedEmails = []string(emails)

	return &listing, nil
}

// Update перезаписывает публикуемые поля объявления
func (r *Repository) Update(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("listings").
		Set("title", listing.Title).
		Set("timezone", listing.Timezone).
		Set("price_per_hour", listing.PricePerHour).
		Set("paid_enabled", listing.PaidEnabled).
		Set("requires_approval", listing.RequiresApproval).
		Set("requires_id", listing.RequiresID).
		Set("mode", listing.Mode).
		Set("allowed_emails", pq.Array(emailsOrEmpty(listing.AllowedEmails))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": listing.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&listing.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return listing, nil
}

// CreateDesk добавляет место в объявление
func (r *Repository) CreateDesk(ctx context.Context, desk *domain.Desk) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desks").
		Columns("listing_id", "label").
		Values(desk.ListingID, desk.Label).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDesk - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&desk.ID,
		&desk.CreatedAt,
		&desk.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return nil, ErrDeskLabelTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDesk - execute insert: %v", ErrExecQuery, err)
	}

	return desk, nil
}

// RenameDesk меняет отображаемую метку места
func (r *Repository) RenameDesk(ctx context.Context, deskID int64, label string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("desks").
		Set("label", label).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": deskID}).
		Suffix("RETURNING " + strings.Join(deskColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RenameDesk - build update query: %v", ErrBuildQuery, err)
	}

	desk, err := scanDesk(executor.QueryRowContext(ctx, query, args...))
	if isUniqueViolation(err) {
		return nil, ErrDeskLabelTaken
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: RenameDesk - execute update: %v", ErrExecQuery, err)
	}

	return desk, nil
}

// GetDeskByID получает место по ID
func (r *Repository) GetDeskByID(ctx context.Context, deskID int64) (*domain.Desk, error) {
	return r.getDesk(ctx, "GetDeskByID", squirrel.Eq{"id": deskID})
}

// GetDeskByLabel получает место объявления по метке без учета регистра
func (r *Repository) GetDeskByLabel(ctx context.Context, listingID int64, label string) (*domain.Desk, error) {
	return r.getDesk(ctx, "GetDeskByLabel", squirrel.And{
		squirrel.Eq{"listing_id": listingID},
		squirrel.Expr("lower(label) = lower(?)", label),
	})
}

// ListDesks получает все места объявления
func (r *Repository) ListDesks(ctx context.Context, listingID int64) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"listing_id": listingID}).
		OrderBy("label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDesks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		desk, err := scanDesk(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDesks - scan row: %v", ErrScanRow, err)
		}
		desks = append(desks, desk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDesks - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

func (r *Repository) getDesk(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	desk, err := scanDesk(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan desk: %v", ErrScanRow, op, err)
	}

	return desk, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDesk(row rowScanner) (*domain.Desk, error) {
	var desk domain.Desk
	err := row.Scan(
		&desk.ID,
		&desk.ListingID,
		&desk.Label,
		&desk.CreatedAt,
		&desk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &desk, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// emailsOrEmpty не дает записать NULL в NOT NULL колонку
func emailsOrEmpty(emails []string) []string {
	if emails == nil {
		return []string{}
	}
	return emails
}
