package reservation

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldReservationService/pkg/txmanager"
)

// testDSNEnv строка подключения к отдельной тестовой БД; без нее тест пропускается
const testDSNEnv = "FIELDS_TEST_DSN"

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	schema, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = sqlDB.Exec(string(schema))
	require.NoError(t, err)

	return sqlDB
}

func TestTryInsert_Postgres_ConcurrentOverlapsAdmitOne(t *testing.T) {
	sqlDB := openTestDB(t)
	ctx := context.Background()

	var fieldID int64
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		`INSERT INTO fields (name, field_type, hourly_rate) VALUES ('Интеграционное поле', 'small', 0) RETURNING id`,
	).Scan(&fieldID))
	t.Cleanup(func() {
		_, _ = sqlDB.Exec(`DELETE FROM reservations WHERE field_id = $1`, fieldID)
		_, _ = sqlDB.Exec(`DELETE FROM fields WHERE id = $1`, fieldID)
	})

	db := dbmetrics.New(sqlDB)
	repo := NewRepository(db, txmanager.NewTransactionManager(db))

	start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
	const writers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
		failures  []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(shift time.Duration) {
			defer wg.Done()

			// Все интервалы пересекаются с [10:00, 11:00)
			_, err := repo.TryInsert(ctx, &domain.Reservation{
				FieldID:    fieldID,
				GuestName:  "Гость",
				GuestEmail: "guest@example.com",
				StartTime:  start.Add(shift),
				EndTime:    start.Add(shift + time.Hour),
				Status:     domain.StatusPending,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				failures = append(failures, err)
			}
		}(time.Duration(i) * 5 * time.Minute)
	}
	wg.Wait()

	require.Empty(t, failures)
	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, conflicts)

	var active int
	require.NoError(t, sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE field_id = $1 AND status IN ('pending', 'confirmed')`, fieldID,
	).Scan(&active))
	assert.Equal(t, 1, active)
}
