package repair_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"grainsync-console/internal/repair"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestRepository_CreateUsesCallerTransaction(t *testing.T) {
	gdb, mock := newGormMock(t)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "subtype_repairs"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)

	repo := repair.NewRepository(gdb).WithTx(tx)
	err = repo.Create(ctx, &repair.SubtypeRepair{
		ID:         uuid.New(),
		EmployeeID: 42,
		Kind:       "driver",
		Value:      "LIC-001",
		Status:     repair.StatusPending,
		Attempts:   1,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	gdb, mock := newGormMock(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "employee_id", "kind", "value", "status", "attempts"}).
		AddRow(id.String(), 42, "accountant", "tax", repair.StatusPending, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subtype_repairs" WHERE id = $1`)).WillReturnRows(rows)

	rec, err := repair.NewRepository(gdb).FindByID(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "accountant", rec.Kind)
	assert.Equal(t, 2, rec.Attempts)
}

func TestRepository_FindPendingByEmployeeNotFound(t *testing.T) {
	gdb, mock := newGormMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subtype_repairs" WHERE employee_id = $1 AND status = $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repair.NewRepository(gdb).FindPendingByEmployee(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListByStatus(t *testing.T) {
	gdb, mock := newGormMock(t)

	rows := sqlmock.NewRows([]string{"id", "employee_id", "kind", "status"}).
		AddRow(uuid.NewString(), 1, "driver", repair.StatusPending).
		AddRow(uuid.NewString(), 2, "supervisor", repair.StatusPending)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "subtype_repairs" WHERE status = $1 ORDER BY created_at ASC`)).
		WillReturnRows(rows)

	recs, err := repair.NewRepository(gdb).ListByStatus(context.Background(), repair.StatusPending, 10)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRepository_Claim(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "free pending repair", affected: 1, want: true},
		{name: "resolved or already claimed", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, mock := newGormMock(t)
			id := uuid.NewString()
			now := time.Now().UTC()

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE "subtype_repairs" SET "claimed_until"=$1`)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			claimed, err := repair.NewRepository(gdb).Claim(context.Background(), id, now, now.Add(time.Minute))
			require.NoError(t, err)
			assert.Equal(t, tt.want, claimed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
