package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// uniqueActiveSlotConstraint имя частичного уникального индекса по
// (venue_id, slot_id, reservation_date) WHERE active
const uniqueActiveSlotConstraint = "uq_reservations_active_slot"

// pgUniqueViolation SQLSTATE нарушения уникальности
const pgUniqueViolation = "23505"

// reservationColumns колонки резервации с денормализованными данными каталога
var reservationColumns = []string{
	"r.id",
	"r.user_id",
	"r.venue_id",
	"r.slot_id",
	"r.reservation_date",
	"r.theme",
	"r.photo_ref",
	"r.venue_price",
	"r.total_price",
	"r.active",
	"v.title",
	"t.time_from",
	"t.time_to",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с резервациями и их списками услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию.
// Если в контексте передана активная транзакция, использует её — создание
// всегда должно выполняться в одной транзакции с проверкой конфликта и
// вставкой строк услуг.
//
// Нарушение частичного уникального индекса по активной тройке
// (venue_id, slot_id, reservation_date) транслируется в ErrSlotTaken:
// это страховка на случай, когда две конкурентные транзакции прошли
// проверку доступности до коммита любой из них.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"venue_id",
			"slot_id",
			"reservation_date",
			"theme",
			"photo_ref",
			"venue_price",
			"total_price",
			"active",
		).
		Values(
			reservation.UserID,
			reservation.VenueID,
			reservation.SlotID,
			reservation.Date,
			reservation.Theme,
			reservation.PhotoRef,
			reservation.VenuePrice,
			reservation.TotalPrice,
			true,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueSlotViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.Active = true
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// CreateLines создает строки услуг резервации одним запросом.
// Цены строк — снимки на момент бронирования, повторно из каталога не выводятся.
// Вызывается только в транзакции создания/редактирования родительской резервации.
func (r *Repository) CreateLines(ctx context.Context, reservationID int64, lines []domain.ReservationServiceLine) error {
	if len(lines) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_services").
		Columns("reservation_id", "service_id", "price")

	for _, line := range lines {
		insertBuilder = insertBuilder.Values(reservationID, line.ServiceID, line.Price)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateLines - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateLines - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ConflictExists проверяет, занята ли тройка (зал, смена, дата) активной резервацией.
// excludeID исключает собственную строку — используется при обновлении.
//
// Внутри транзакции читает с FOR UPDATE, чтобы блокировка найденных строк
// удерживалась до коммита и последовательность проверка-вставка была атомарна
// относительно конкурентных транзакций.
func (r *Repository) ConflictExists(ctx context.Context, venueID, slotID int64, date time.Time, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("reservations").
		Where(squirrel.Eq{
			"venue_id":         venueID,
			"slot_id":          slotID,
			"reservation_date": date,
			"active":           true,
		})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ConflictExists - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: ConflictExists - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: ConflictExists - rows error: %w", ErrScanRow, err)
	}

	return exists, nil
}

// GetByID получает активную резервацию по ID с данными каталога
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"r.id": id, "r.active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	reservation, err := scanReservation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// GetLines получает строки услуг резервации с описаниями из каталога
func (r *Repository) GetLines(ctx context.Context, reservationID int64) ([]*domain.ReservationServiceLine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"rs.id",
		"rs.reservation_id",
		"rs.service_id",
		"rs.price",
		"s.description",
		"rs.created_at",
		"rs.updated_at",
	).
		From("reservation_services AS rs").
		Join("services AS s ON s.id = rs.service_id").
		Where(squirrel.Eq{"rs.reservation_id": reservationID}).
		OrderBy("rs.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLines - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLines - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]*domain.ReservationServiceLine, 0)
	for rows.Next() {
		var line domain.ReservationServiceLine
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&line.ID,
			&line.ReservationID,
			&line.ServiceID,
			&line.Price,
			&line.ServiceName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetLines - scan row: %w", ErrScanRow, err)
		}

		line.CreatedAt = createdAt.Time
		line.UpdatedAt = updatedAt.Time

		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLines - rows error: %w", ErrScanRow, err)
	}

	return lines, nil
}

// GetByUserID получает список активных резерваций клиента, новые даты первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"r.user_id": userID, "r.active": true}).
		OrderBy("r.reservation_date DESC", "t.slot_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetAll получает все активные резервации, новые даты первыми
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"r.active": true}).
		OrderBy("r.reservation_date DESC", "t.slot_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update перезаписывает изменяемые поля активной резервации.
// Строки услуг не трогает. Нарушение уникального индекса по активной
// тройке транслируется в ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, id int64, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("reservation_date", reservation.Date).
		Set("venue_id", reservation.VenueID).
		Set("slot_id", reservation.SlotID).
		Set("theme", reservation.Theme).
		Set("photo_ref", reservation.PhotoRef).
		Set("venue_price", reservation.VenuePrice).
		Set("total_price", reservation.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueSlotViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SoftDelete снимает флаг активности резервации (мягкое удаление).
// Тройка (зал, смена, дата) немедленно освобождается для новых бронирований,
// так как частичный индекс перестает покрывать строку.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// joinedSelect базовый SELECT резерваций с джойнами каталога
func (r *Repository) joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(reservationColumns...).
		From("reservations AS r").
		Join("venues AS v ON v.id = r.venue_id").
		Join("time_slots AS t ON t.id = r.slot_id")
}

// scanReservation сканирует одну строку результата в резервацию
func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.VenueID,
		&reservation.SlotID,
		&reservation.Date,
		&reservation.Theme,
		&reservation.PhotoRef,
		&reservation.VenuePrice,
		&reservation.TotalPrice,
		&reservation.Active,
		&reservation.VenueTitle,
		&reservation.SlotFrom,
		&reservation.SlotTo,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс резерваций
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// isUniqueSlotViolation проверяет, что ошибка — нарушение уникальности
// активной тройки (зал, смена, дата)
func isUniqueSlotViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) &&
		string(pqErr.Code) == pgUniqueViolation &&
		pqErr.Constraint == uniqueActiveSlotConstraint
}
