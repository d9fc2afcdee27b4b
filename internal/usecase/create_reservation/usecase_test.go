package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/notifier"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// --- Фейки ---

type fakeReservationRepo struct {
	nextID       int64
	reservations map[int64]*domain.Reservation
	lines        map[int64][]*domain.ReservationServiceLine

	createErr      error
	createLinesErr error
	conflictErr    error
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		nextID:       1,
		reservations: make(map[int64]*domain.Reservation),
		lines:        make(map[int64][]*domain.ReservationServiceLine),
	}
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *r
	created.ID = f.nextID
	created.Active = true
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.reservations[created.ID] = &created
	return &created, nil
}

func (f *fakeReservationRepo) CreateLines(_ context.Context, reservationID int64, lines []domain.ReservationServiceLine) error {
	if f.createLinesErr != nil {
		return f.createLinesErr
	}
	for i := range lines {
		line := lines[i]
		line.ID = int64(len(f.lines[reservationID]) + 1)
		line.ReservationID = reservationID
		f.lines[reservationID] = append(f.lines[reservationID], &line)
	}
	return nil
}

func (f *fakeReservationRepo) ConflictExists(_ context.Context, venueID, slotID int64, date time.Time, excludeID *int64) (bool, error) {
	if f.conflictErr != nil {
		return false, f.conflictErr
	}
	for _, r := range f.reservations {
		if excludeID != nil && r.ID == *excludeID {
			continue
		}
		if r.Active && r.VenueID == venueID && r.SlotID == slotID && r.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok || !r.Active {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (f *fakeReservationRepo) GetLines(_ context.Context, reservationID int64) ([]*domain.ReservationServiceLine, error) {
	return f.lines[reservationID], nil
}

func (f *fakeReservationRepo) cancel(id int64) {
	if r, ok := f.reservations[id]; ok {
		r.Active = false
	}
}

type fakeCatalogRepo struct {
	venues   map[int64]*domain.Venue
	slots    map[int64]*domain.TimeSlot
	services map[int64]*domain.Service
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	from, _ := types.NewTimeStringFromString("10:00")
	to, _ := types.NewTimeStringFromString("14:00")
	return &fakeCatalogRepo{
		venues: map[int64]*domain.Venue{
			3: {ID: 3, Title: "Зал Аврора", Price: 50000, Active: true},
		},
		slots: map[int64]*domain.TimeSlot{
			2: {ID: 2, From: from, To: to, Active: true},
		},
		services: map[int64]*domain.Service{
			1: {ID: 1, Description: "Аниматор", Price: 12000, Active: true},
		},
	}
}

func (f *fakeCatalogRepo) GetVenue(_ context.Context, id int64) (*domain.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, catalogRepo.ErrVenueNotFound
	}
	return v, nil
}

func (f *fakeCatalogRepo) GetTimeSlot(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, catalogRepo.ErrTimeSlotNotFound
	}
	return s, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeNotifier struct {
	published []*notifier.ReservationSummary
	err       error
}

func (f *fakeNotifier) Publish(_ context.Context, summary *notifier.ReservationSummary) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, summary)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeReservationRepo, catalog *fakeCatalogRepo, n *fakeNotifier) *UseCase {
	return NewUseCase(repo, catalog, n, fakeTxManager{}, nopLogger{})
}

func validRequest() *Request {
	date, _ := time.Parse(domain.DateFormat, "2025-12-15")
	return &Request{
		UserID:     42,
		VenueID:    3,
		SlotID:     2,
		Date:       date,
		VenuePrice: 50000,
		TotalPrice: 65000,
		Theme:      ptr.Ptr("Супергерои"),
		Services: []ServiceLineInput{
			{ServiceID: 1, Price: 12000},
		},
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := newFakeReservationRepo()
	n := &fakeNotifier{}
	uc := newTestUseCase(repo, newFakeCatalogRepo(), n)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "Зал Аврора", resp.VenueTitle)
	assert.Equal(t, "10:00", resp.SlotFrom.String())
	assert.Equal(t, "14:00", resp.SlotTo.String())
	assert.Equal(t, 50000.0, resp.VenuePrice)
	assert.Equal(t, 65000.0, resp.TotalPrice)
	assert.True(t, resp.Notified)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, int64(1), resp.Lines[0].ServiceID)
	assert.Equal(t, 12000.0, resp.Lines[0].Price)

	// Уведомление содержит плоскую сводку
	require.Len(t, n.published, 1)
	summary := n.published[0]
	assert.Equal(t, resp.ID, summary.ReservationID)
	assert.Equal(t, "2025-12-15", summary.Date)
	assert.Equal(t, "10:00 - 14:00", summary.SlotWindow)
	assert.Equal(t, "Супергерои", summary.Theme)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Вторая резервация той же тройки (зал, смена, дата)
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// В хранилище осталась одна резервация
	assert.Len(t, repo.reservations, 1)
}

func TestExecute_SlotTakenOnInsert(t *testing.T) {
	// Проверка доступности прошла, но вставка уперлась в уникальный индекс:
	// конкурент успел закоммитить ту же тройку
	repo := newFakeReservationRepo()
	repo.createErr = reservationRepo.ErrSlotTaken
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.Empty(t, repo.reservations)
	assert.Empty(t, repo.lines)
}

func TestExecute_CancelThenRecreate(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Отмена освобождает тройку для повторного бронирования
	repo.cancel(first.ID)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_InvalidPricing(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.TotalPrice = req.VenuePrice - 1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPricing)

	// Нарушение инварианта цены не трогает хранилище
	assert.Empty(t, repo.reservations)
}

func TestExecute_VenueNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeReservationRepo(), newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.VenueID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_TimeSlotNotFound(t *testing.T) {
	uc := newTestUseCase(newFakeReservationRepo(), newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.SlotID = 999

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeSlotNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.Services = []ServiceLineInput{{ServiceID: 777, Price: 1000}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// Ни резервации, ни строк услуг
	assert.Empty(t, repo.reservations)
	assert.Empty(t, repo.lines)
}

func TestExecute_NotificationFailureIsAdvisory(t *testing.T) {
	repo := newFakeReservationRepo()
	n := &fakeNotifier{err: errors.New("broker unavailable")}
	uc := newTestUseCase(repo, newFakeCatalogRepo(), n)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Резервация создана, но клиент видит notified=false
	assert.False(t, resp.Notified)
	assert.Len(t, repo.reservations, 1)
}

func TestExecute_NoServices(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := newTestUseCase(repo, newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.Services = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.True(t, resp.Notified)
}

func TestExecute_TotalEqualsVenuePrice(t *testing.T) {
	uc := newTestUseCase(newFakeReservationRepo(), newFakeCatalogRepo(), &fakeNotifier{})

	req := validRequest()
	req.TotalPrice = req.VenuePrice
	req.Services = nil

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
