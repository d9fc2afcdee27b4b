package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/catalog"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// --- Фейки ---

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
}

func newFakeReservationRepo(initial ...*domain.Reservation) *fakeReservationRepo {
	f := &fakeReservationRepo{reservations: make(map[int64]*domain.Reservation)}
	for _, r := range initial {
		f.reservations[r.ID] = r
	}
	return f
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok || !r.Active {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) ConflictExists(_ context.Context, venueID, slotID int64, date time.Time, excludeID *int64) (bool, error) {
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

func (f *fakeReservationRepo) Update(_ context.Context, id int64, updated *domain.Reservation) error {
	r, ok := f.reservations[id]
	if !ok || !r.Active {
		return reservationRepo.ErrReservationNotFound
	}
	r.VenueID = updated.VenueID
	r.SlotID = updated.SlotID
	r.Date = updated.Date
	r.Theme = updated.Theme
	r.PhotoRef = updated.PhotoRef
	r.VenuePrice = updated.VenuePrice
	r.TotalPrice = updated.TotalPrice
	r.UpdatedAt = time.Now()
	return nil
}

type fakeCatalogRepo struct {
	venues map[int64]*domain.Venue
	slots  map[int64]*domain.TimeSlot
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	from, _ := types.NewTimeStringFromString("10:00")
	to, _ := types.NewTimeStringFromString("14:00")
	return &fakeCatalogRepo{
		venues: map[int64]*domain.Venue{
			3: {ID: 3, Title: "Зал Аврора", Price: 50000, Active: true},
			4: {ID: 4, Title: "Зал Вега", Price: 40000, Active: true},
		},
		slots: map[int64]*domain.TimeSlot{
			2: {ID: 2, From: from, To: to, Active: true},
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func existingReservation(t *testing.T, id int64) *domain.Reservation {
	from, _ := types.NewTimeStringFromString("10:00")
	to, _ := types.NewTimeStringFromString("14:00")
	return &domain.Reservation{
		ID:         id,
		UserID:     42,
		VenueID:    3,
		SlotID:     2,
		Date:       mustDate(t, "2025-12-15"),
		VenuePrice: 50000,
		TotalPrice: 65000,
		Active:     true,
		VenueTitle: "Зал Аврора",
		SlotFrom:   from,
		SlotTo:     to,
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		VenueID:    3,
		SlotID:     2,
		Date:       mustDate(t, "2025-12-20"),
		VenuePrice: 50000,
		TotalPrice: 70000,
		Theme:      ptr.Ptr("Пираты"),
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := newFakeReservationRepo(existingReservation(t, 1))
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), 1, validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-12-20", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, 70000.0, resp.TotalPrice)
	require.NotNil(t, resp.Theme)
	assert.Equal(t, "Пираты", *resp.Theme)
}

func TestExecute_NotFound(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 99, validRequest(t))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_CancelledReservationNotFound(t *testing.T) {
	cancelled := existingReservation(t, 1)
	cancelled.Active = false
	repo := newFakeReservationRepo(cancelled)
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 1, validRequest(t))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_SlotTakenByOther(t *testing.T) {
	other := existingReservation(t, 2)
	other.Date = mustDate(t, "2025-12-20")

	repo := newFakeReservationRepo(existingReservation(t, 1), other)
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	// Двигаем первую резервацию на тройку, занятую второй
	_, err := uc.Execute(context.Background(), 1, validRequest(t))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_KeepOwnSlot(t *testing.T) {
	repo := newFakeReservationRepo(existingReservation(t, 1))
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	// Та же тройка, что у самой резервации: собственная строка исключается
	req := validRequest(t)
	req.Date = mustDate(t, "2025-12-15")

	_, err := uc.Execute(context.Background(), 1, req)
	assert.NoError(t, err)
}

func TestExecute_InvalidPricing(t *testing.T) {
	repo := newFakeReservationRepo(existingReservation(t, 1))
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.TotalPrice = req.VenuePrice - 1

	_, err := uc.Execute(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrInvalidPricing)

	// Резервация не изменилась
	stored := repo.reservations[1]
	assert.Equal(t, 65000.0, stored.TotalPrice)
}

func TestExecute_VenueNotFound(t *testing.T) {
	repo := newFakeReservationRepo(existingReservation(t, 1))
	uc := NewUseCase(repo, newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	req := validRequest(t)
	req.VenueID = 999

	_, err := uc.Execute(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestExecute_InvalidID(t *testing.T) {
	uc := NewUseCase(newFakeReservationRepo(), newFakeCatalogRepo(), fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 0, validRequest(t))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
