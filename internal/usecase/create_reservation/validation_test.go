package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	date, _ := time.Parse(domain.DateFormat, "2025-12-15")

	base := func() *Request {
		return &Request{
			UserID:     1,
			VenueID:    1,
			SlotID:     1,
			Date:       date,
			VenuePrice: 100,
			TotalPrice: 150,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *Request) {},
			wantErr: false,
		},
		{
			name:    "zero user id",
			mutate:  func(r *Request) { r.UserID = 0 },
			wantErr: true,
		},
		{
			name:    "negative venue id",
			mutate:  func(r *Request) { r.VenueID = -1 },
			wantErr: true,
		},
		{
			name:    "zero slot id",
			mutate:  func(r *Request) { r.SlotID = 0 },
			wantErr: true,
		},
		{
			name:    "zero date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: true,
		},
		{
			name:    "negative venue price",
			mutate:  func(r *Request) { r.VenuePrice = -1 },
			wantErr: true,
		},
		{
			name:    "negative total price",
			mutate:  func(r *Request) { r.TotalPrice = -1 },
			wantErr: true,
		},
		{
			name:    "zero prices allowed",
			mutate:  func(r *Request) { r.VenuePrice = 0; r.TotalPrice = 0 },
			wantErr: false,
		},
		{
			name:    "theme too long",
			mutate:  func(r *Request) { r.Theme = ptr.Ptr(strings.Repeat("x", domain.MaxThemeLength+1)) },
			wantErr: true,
		},
		{
			name:    "theme at limit",
			mutate:  func(r *Request) { r.Theme = ptr.Ptr(strings.Repeat("x", domain.MaxThemeLength)) },
			wantErr: false,
		},
		{
			name:    "photo ref too long",
			mutate:  func(r *Request) { r.PhotoRef = ptr.Ptr(strings.Repeat("x", domain.MaxPhotoRefLength+1)) },
			wantErr: true,
		},
		{
			name: "too many service lines",
			mutate: func(r *Request) {
				for i := 0; i <= domain.MaxServiceLines; i++ {
					r.Services = append(r.Services, ServiceLineInput{ServiceID: int64(i + 1), Price: 10})
				}
			},
			wantErr: true,
		},
		{
			name:    "service line with zero id",
			mutate:  func(r *Request) { r.Services = []ServiceLineInput{{ServiceID: 0, Price: 10}} },
			wantErr: true,
		},
		{
			name:    "service line with negative price",
			mutate:  func(r *Request) { r.Services = []ServiceLineInput{{ServiceID: 1, Price: -10}} },
			wantErr: true,
		},
		{
			name:    "service line with zero price allowed",
			mutate:  func(r *Request) { r.Services = []ServiceLineInput{{ServiceID: 1, Price: 0}} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
