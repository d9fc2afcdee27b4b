package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeRepo struct {
	reservations map[int64]*domain.Reservation
	lines        map[int64][]*domain.ReservationServiceLine
}

func newFakeRepo(initial ...*domain.Reservation) *fakeRepo {
	f := &fakeRepo{
		reservations: make(map[int64]*domain.Reservation),
		lines:        make(map[int64][]*domain.ReservationServiceLine),
	}
	for _, r := range initial {
		f.reservations[r.ID] = r
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok || !r.Active {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) GetLines(_ context.Context, reservationID int64) ([]*domain.ReservationServiceLine, error) {
	return f.lines[reservationID], nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Active && r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.Active {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id int64) error {
	r, ok := f.reservations[id]
	if !ok || !r.Active {
		return reservationRepo.ErrReservationNotFound
	}
	r.Active = false
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleReservation(id, userID int64) *domain.Reservation {
	from, _ := types.NewTimeStringFromString("10:00")
	to, _ := types.NewTimeStringFromString("14:00")
	date, _ := time.Parse(domain.DateFormat, "2025-12-15")
	return &domain.Reservation{
		ID:         id,
		UserID:     userID,
		VenueID:    3,
		SlotID:     2,
		Date:       date,
		VenuePrice: 50000,
		TotalPrice: 65000,
		Active:     true,
		VenueTitle: "Зал Аврора",
		SlotFrom:   from,
		SlotTo:     to,
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := newFakeRepo(sampleReservation(1, 42))
	repo.lines[1] = []*domain.ReservationServiceLine{
		{ID: 1, ReservationID: 1, ServiceID: 5, Price: 12000, ServiceName: "Аниматор"},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-12-15", resp.Date)
	assert.Equal(t, "Зал Аврора", resp.VenueTitle)
	assert.Equal(t, "10:00", resp.SlotFrom)
	assert.Equal(t, "14:00", resp.SlotTo)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Аниматор", resp.Lines[0].Description)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetUserReservations(t *testing.T) {
	repo := newFakeRepo(
		sampleReservation(1, 42),
		sampleReservation(2, 42),
		sampleReservation(3, 7),
	)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserReservations(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}

func TestGetUserReservations_InvalidID(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetUserReservations(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAll(t *testing.T) {
	cancelled := sampleReservation(3, 7)
	cancelled.Active = false
	repo := newFakeRepo(sampleReservation(1, 42), sampleReservation(2, 7), cancelled)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(sampleReservation(1, 42))
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1))
	assert.False(t, repo.reservations[1].Active)

	// Повторная отмена: резервация уже неактивна
	err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
