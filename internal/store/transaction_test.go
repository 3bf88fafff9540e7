package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransaction(t *testing.T) {
	fnErr := errors.New("function failed")

	tests := []struct {
		name       string
		setup      func(mock sqlmock.Sqlmock)
		fn         TxFn
		wantErrIs  error
		wantErrMsg string
	}{
		{
			name: "commit on success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx *sql.Tx) error { return nil },
		},
		{
			name: "rollback on function error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs: fnErr,
		},
		{
			name: "begin failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin transaction failed"))
			},
			fn:         func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrMsg: "failed to begin transaction",
		},
		{
			name: "commit failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("commit failed"))
			},
			fn:         func(ctx context.Context, tx *sql.Tx) error { return nil },
			wantErrMsg: "failed to commit transaction",
		},
		{
			name: "rollback failure keeps original error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fn:         func(ctx context.Context, tx *sql.Tx) error { return fnErr },
			wantErrIs:  fnErr,
			wantErrMsg: "error rolling back transaction",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			err := RunInTransaction(context.Background(), db, tc.fn)

			if tc.wantErrIs == nil && tc.wantErrMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				if tc.wantErrIs != nil {
					assert.ErrorIs(t, err, tc.wantErrIs)
				}
				if tc.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tc.wantErrMsg)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_Panic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			panic("test panic")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("item", "save", "failed to save item", cause)

	assert.Equal(t, "save operation on item failed: failed to save item: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("item", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on item failed: no rows", bare.Error())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrItemNotFound))
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(nil))
}
