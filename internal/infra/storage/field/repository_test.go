package field

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewRepository(dbmetrics.New(sqlDB)), mock
}

func fieldRow(rows *sqlmock.Rows, id int64, name string, maxPlayers interface{}, active bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, name, nil, "football", "grass", maxPlayers, 2500.0, active, now, now)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, name, .* FROM fields WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(fieldRow(sqlmock.NewRows(columns), 1, "Поле 1", int64(22), true))

	f, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Поле 1", f.Name)
	require.NotNil(t, f.MaxPlayers)
	assert.Equal(t, 22, *f.MaxPlayers)
	assert.Equal(t, "grass", *f.SurfaceType)
	assert.True(t, f.IsActive)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`FROM fields WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestList_ActiveOnly(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows(columns)
	fieldRow(rows, 1, "A", nil, true)
	fieldRow(rows, 2, "B", int64(10), true)

	mock.ExpectQuery(`FROM fields WHERE is_active = \$1 ORDER BY name ASC, id ASC`).
		WithArgs(true).
		WillReturnRows(rows)

	fields, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Nil(t, fields[0].MaxPlayers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	maxPlayers := 10

	mock.ExpectQuery(`INSERT INTO fields \(name,description,field_type,surface_type,max_players,hourly_rate,is_active\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING id, created_at, updated_at`).
		WithArgs("Мини-поле", nil, "small", nil, int64(10), 80.0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(4), now, now))

	created, err := repo.Create(context.Background(), &domain.Field{
		Name:       "Мини-поле",
		FieldType:  "small",
		MaxPlayers: &maxPlayers,
		HourlyRate: 80,
		IsActive:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE fields SET .* WHERE id = \$8 RETURNING id, name`).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Update(context.Background(), &domain.Field{ID: 9, Name: "A", FieldType: "full"})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestUpdate_DeactivatesField(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE fields SET .*is_active = \$7, updated_at = NOW\(\) WHERE id = \$8`).
		WillReturnRows(fieldRow(sqlmock.NewRows(columns), 2, "B", nil, false))

	updated, err := repo.Update(context.Background(), &domain.Field{ID: 2, Name: "B", FieldType: "half"})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		execErr      error
		wantErr      error
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, wantErr: ErrFieldNotFound},
		{
			name:    "referenced",
			execErr: &pq.Error{Code: pqForeignKeyViolation, Constraint: "reservations_field_id_fkey"},
			wantErr: ErrFieldInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			exp := mock.ExpectExec(`DELETE FROM fields WHERE id = \$1`).WithArgs(int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			err := repo.Delete(context.Background(), 3)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
