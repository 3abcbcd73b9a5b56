package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/domain"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/psqlbuilder"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/txmanager"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"venue_id",
	"venue_owner_id",
	"user_id",
	"start_datetime",
	"end_datetime",
	"status",
	"price_per_hour",
	"total_price",
	"currency",
	"notes",
	"created_at",
	"updated_at",
}

// Repository persists bookings in postgres. Queries run on the executor
// carried by the context, so they participate in caller-managed transactions.
type Repository struct {
	db     *sql.DB
	logger Logger
}

func NewRepository(db *sql.DB, logger Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) executor(ctx context.Context) Executor {
	return txmanager.GetExecutor(ctx, r.db)
}

// Create inserts the booking and fills in the generated id and timestamps.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns("venue_id", "venue_owner_id", "user_id", "start_datetime", "end_datetime",
			"status", "price_per_hour", "total_price", "currency", "notes").
		Values(b.VenueID, b.VenueOwnerID, b.UserID, b.StartDatetime, b.EndDatetime,
			b.Status, b.PricePerHour, b.TotalPrice, b.Currency, b.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert: %v", ErrBuildQuery, err)
	}

	row := r.executor(ctx).QueryRowContext(ctx, query, args...)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	r.logger.Info("[Repository.Create] created booking %s for venue %s", b.ID, b.VenueID)
	return b, nil
}

// HasActiveOverlap reports whether any pending or confirmed booking of the
// venue intersects [start, end). Inside a transaction the venue's active rows
// are locked so a concurrent insert cannot slip between check and create.
func (r *Repository) HasActiveOverlap(ctx context.Context, venueID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	builder := psqlbuilder.Select("id").
		From(bookingsTable).
		Where(sq.Eq{"venue_id": venueID}).
		Where(sq.Eq{"status": domain.ActiveStatuses}).
		Where(sq.Lt{"start_datetime": end}).
		Where(sq.Gt{"end_datetime": start})

	if excludeID != nil {
		builder = builder.Where(sq.NotEq{"id": *excludeID})
	}
	if txmanager.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveOverlap - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveOverlap - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overlap := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: HasActiveOverlap - iterate rows: %v", ErrExecQuery, err)
	}
	return overlap, nil
}

// GetByID fetches a booking constrained by the given visibility scope.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, scope domain.ScopeFilter) (*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(sq.Eq{"id": id})
	builder = applyScope(builder, scope)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build query: %v", ErrBuildQuery, err)
	}

	row := r.executor(ctx).QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}
	return b, nil
}

// List returns bookings matching the filter within the visibility scope,
// newest first, paginated.
func (r *Repository) List(ctx context.Context, filter domain.ListFilter, scope domain.ScopeFilter) ([]*domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable)
	builder = applyScope(builder, scope)

	if filter.VenueID != nil {
		builder = builder.Where(sq.Eq{"venue_id": *filter.VenueID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": *filter.Status})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	builder = builder.
		OrderBy("created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}
	return bookings, nil
}

// UpdateStatus sets the booking status and returns the updated row.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build query: %v", ErrBuildQuery, err)
	}

	row := r.executor(ctx).QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrScanRow, err)
	}

	r.logger.Info("[Repository.UpdateStatus] booking %s -> %s", id, status)
	return b, nil
}

// OccupiedSlots returns the time windows of the venue's pending and confirmed
// bookings, ordered by start.
func (r *Repository) OccupiedSlots(ctx context.Context, venueID uuid.UUID) ([]domain.Slot, error) {
	query, args, err := psqlbuilder.Select("start_datetime", "end_datetime").
		From(bookingsTable).
		Where(sq.Eq{"venue_id": venueID}).
		Where(sq.Eq{"status": domain.ActiveStatuses}).
		OrderBy("start_datetime ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - build query: %v", ErrBuildQuery, err)
	}

	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.StartDatetime, &s.EndDatetime); err != nil {
			return nil, fmt.Errorf("%w: OccupiedSlots: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: OccupiedSlots - iterate rows: %v", ErrExecQuery, err)
	}
	return slots, nil
}

// Delete removes the booking row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(bookingsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build query: %v", ErrBuildQuery, err)
	}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute query: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	r.logger.Info("[Repository.Delete] deleted booking %s", id)
	return nil
}

func applyScope(builder sq.SelectBuilder, scope domain.ScopeFilter) sq.SelectBuilder {
	if scope.Unscoped() {
		return builder
	}
	if scope.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *scope.UserID})
	}
	if scope.VenueOwnerID != nil {
		builder = builder.Where(sq.Eq{"venue_owner_id": *scope.VenueOwnerID})
	}
	return builder
}

func columnList() string {
	out := bookingColumns[0]
	for _, c := range bookingColumns[1:] {
		out += ", " + c
	}
	return out
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.VenueID,
		&b.VenueOwnerID,
		&b.UserID,
		&b.StartDatetime,
		&b.EndDatetime,
		&b.Status,
		&b.PricePerHour,
		&b.TotalPrice,
		&b.Currency,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
