package create_reservation

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FootSpaReservation/internal/config"
	"github.com/m04kA/SMC-FootSpaReservation/internal/domain"
	"github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/database"
	reservationRepo "github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/ptr"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/txmanager"
)

// newSQLiteUseCase открывает собственный пул соединений к файлу path.
// У каждого use case свой мьютекс, общая только база
func newSQLiteUseCase(t *testing.T, path string) (*UseCase, *reservationRepo.Repository) {
	t.Helper()

	cfg := config.Default().Database
	cfg.Path = path

	db, dialect, err := database.Open(context.Background(), cfg, time.Now().UTC())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	repo := reservationRepo.NewRepository(wrapped, dialect)
	txMgr := txmanager.NewTransactionManager(
		wrapped,
		txmanager.WithSerializableOptions(dialect.SerializableTxOptions()),
	)

	return NewUseCase(repo, txMgr, nil, nopLogger{}, time.UTC, 5), repo
}

func TestUseCase_Execute_TwoWritersOnSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reserve.db")
	first, repo := newSQLiteUseCase(t, path)
	second, _ := newSQLiteUseCase(t, path)

	const perWriter = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
		failures  []error
	)

	for _, uc := range []*UseCase{first, second} {
		for i := 0; i < perWriter; i++ {
			wg.Add(1)
			go func(uc *UseCase) {
				defer wg.Done()
				_, err := uc.Execute(context.Background(), request("Kim", "2024-05-01", "10:00", "11:00", "7"))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					created++
				case errors.Is(err, ErrSeatConflict):
					conflicts++
				default:
					failures = append(failures, err)
				}
			}(uc)
		}
	}
	wg.Wait()

	require.Empty(t, failures)
	assert.Equal(t, 1, created)
	assert.Equal(t, 2*perWriter-1, conflicts)

	date, err := domain.ParseDate("2024-05-01")
	require.NoError(t, err)
	stored, err := repo.List(context.Background(), domain.ReservationsFilter{Date: ptr.Ptr(date)})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
