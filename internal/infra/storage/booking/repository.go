package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/pkg/dbmetrics"
	"github.com/m04kA/campus-facility-booking/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"facility_id",
	"facility_name",
	"requester_id",
	"requester_name",
	"requester_department",
	"purpose",
	"event_title",
	"start_time",
	"end_time",
	"status",
	"attendees",
	"special_requirements",
	"equipment_requested",
	"cost",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository SQL-репозиторий бронирований (PostgreSQL или SQLite)
// Все временные метки хранятся в UTC
type Repository struct {
	db      DBExecutor
	dialect psqlbuilder.Dialect
	sb      squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db:      db,
		dialect: dialect,
		sb:      psqlbuilder.For(dialect),
	}
}

// Create сохраняет новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	equipment, err := encodeList(booking.EquipmentRequested)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - equipment_requested: %v", ErrEncode, err)
	}

	query, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(
			booking.ID,
			booking.FacilityID,
			booking.FacilityName,
			booking.Requester.ID,
			booking.Requester.Name,
			booking.Requester.Department,
			booking.Purpose,
			booking.EventTitle,
			booking.StartTime.UTC(),
			booking.EndTime.UTC(),
			string(booking.Status),
			booking.Attendees,
			booking.SpecialRequirements,
			equipment,
			booking.Cost,
			utcPtr(booking.CancelledAt),
			booking.CreatedAt.UTC(),
			booking.UpdatedAt.UTC(),
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking.Clone(), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

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

// List возвращает бронирования по фильтру, отсортированные по времени начала
//
// Примеры использования:
//
// 1. Снимок для проверки конфликтов (внутри транзакции - с блокировкой строк FOR UPDATE в PostgreSQL):
//    filter := domain.BookingsFilter{FacilityID: &facilityID, Window: &interval, ActiveOnly: true}
//
// 2. История бронирований пользователя:
//    filter := domain.BookingsFilter{RequesterID: &requesterID}
//
// 3. Завершившиеся подтвержденные бронирования:
//    filter := domain.BookingsFilter{Status: &confirmed, EndedBy: &now}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.sb.Select(columns...).From(table)

	if filter.FacilityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility_id": *filter.FacilityID})
	}
	if filter.RequesterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"requester_id": *filter.RequesterID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}
	if filter.Window != nil {
		// Полуоткрытые интервалы: start < window.end AND end > window.start
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_time": filter.Window.End.UTC()}).
			Where(squirrel.Gt{"end_time": filter.Window.Start.UTC()})
	}
	if filter.EndedBy != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"end_time": filter.EndedBy.UTC()})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC", "created_at ASC", "id ASC")

	// Внутри транзакции блокируем строки facility, чтобы конкурентная проверка конфликтов ждала нас
	if r.dialect.SupportsRowLocks() && dbmetrics.IsInTransaction(ctx) && filter.FacilityID != nil {
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

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	equipment, err := encodeList(booking.EquipmentRequested)
	if err != nil {
		return fmt.Errorf("%w: Update - equipment_requested: %v", ErrEncode, err)
	}

	query, args, err := r.sb.Update(table).
		Set("purpose", booking.Purpose).
		Set("event_title", booking.EventTitle).
		Set("start_time", booking.StartTime.UTC()).
		Set("end_time", booking.EndTime.UTC()).
		Set("status", string(booking.Status)).
		Set("attendees", booking.Attendees).
		Set("special_requirements", booking.SpecialRequirements).
		Set("equipment_requested", equipment).
		Set("cost", booking.Cost).
		Set("cancelled_at", utcPtr(booking.CancelledAt)).
		Set("updated_at", booking.UpdatedAt.UTC()).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// UpdateStatus меняет статус бронирования
// При переходе в cancelled дополнительно проставляется cancelled_at
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := r.sb.Update(table).
		Set("status", string(status)).
		Set("updated_at", at.UTC())

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", at.UTC())
	}

	query, args, err := updateBuilder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в бронирование (порядок полей совпадает с columns)
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		status      string
		equipment   string
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.FacilityID,
		&booking.FacilityName,
		&booking.Requester.ID,
		&booking.Requester.Name,
		&booking.Requester.Department,
		&booking.Purpose,
		&booking.EventTitle,
		&booking.StartTime,
		&booking.EndTime,
		&status,
		&booking.Attendees,
		&booking.SpecialRequirements,
		&equipment,
		&booking.Cost,
		&cancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatus(status)
	booking.EquipmentRequested, err = decodeList(equipment)
	if err != nil {
		return nil, err
	}

	booking.StartTime = booking.StartTime.UTC()
	booking.EndTime = booking.EndTime.UTC()
	booking.CreatedAt = booking.CreatedAt.UTC()
	booking.UpdatedAt = booking.UpdatedAt.UTC()
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		booking.CancelledAt = &t
	}

	return &booking, nil
}

// Списки хранятся в TEXT-колонке как JSON, одинаково для PostgreSQL и SQLite
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(data string) ([]string, error) {
	if data == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
