package reservation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueSlotViolation(t *testing.T) {
	activeSlotViolation := &pq.Error{
		Code:       "23505",
		Constraint: "uq_reservations_active_slot",
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"active slot index violated", activeSlotViolation, true},
		{
			"wrapped violation",
			fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, activeSlotViolation),
			true,
		},
		{
			"unique violation on another constraint",
			&pq.Error{Code: "23505", Constraint: "reservations_pkey"},
			false,
		},
		{
			"serialization failure",
			&pq.Error{Code: "40001"},
			false,
		},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueSlotViolation(tt.err))
		})
	}
}
