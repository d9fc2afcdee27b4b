package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

type fakeTx struct{}

func (fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeBeginner struct {
	began int
}

func (f *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.began++
	return fakeTx{}, nil
}

// serializationFailure собирает цепочку ошибок так, как её строят
// репозиторий и use case поверх ошибки драйвера
func serializationFailure() error {
	driverErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	repoErr := fmt.Errorf("repository: failed to execute query: Create - execute insert: %w", driverErr)
	return fmt.Errorf("usecase: internal error: failed to create reservation: %w", repoErr)
}

func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{}
	m := NewTransactionManager(beginner)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		// Транзакция должна быть в контексте на каждой попытке
		require.True(t, dbmetrics.IsInTransaction(ctx))
		return serializationFailure()
	})

	require.Error(t, err)
	// Конфликт сериализации внутри транзакции повторяется до исчерпания попыток
	assert.Equal(t, serializableRetries, attempts)
	assert.Equal(t, serializableRetries, beginner.began)
	assert.True(t, IsSerializationFailure(err))
}

func TestDoSerializable_SucceedsAfterRetry(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{})

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return serializationFailure()
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{})

	wantErr := errors.New("boom")
	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, attempts)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"raw 40001", &pq.Error{Code: "40001"}, true},
		{"wrapped through layers", serializationFailure(), true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
