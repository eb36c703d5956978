package store_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/krongr/adboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("ADBOARD_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test - requires ADBOARD_TEST_DATABASE_URL environment variable")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.Exec(`DROP TABLE IF EXISTS tx_scratch`)
		_ = db.Close()
	})

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS tx_scratch (id bigserial PRIMARY KEY, value text NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`TRUNCATE tx_scratch`)
	require.NoError(t, err)

	return db
}

func countScratchRows(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM tx_scratch`).Scan(&count))
	return count
}

func TestRunInTransactionCommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO tx_scratch (value) VALUES ('committed')`)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countScratchRows(t, db))
}

func TestRunInTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, `INSERT INTO tx_scratch (value) VALUES ('doomed')`); execErr != nil {
			return execErr
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countScratchRows(t, db), "failed transaction must leave no writes behind")
}

func TestRunInTransactionRollsBackOnPanic(t *testing.T) {
	db := openTestDB(t)

	assert.Panics(t, func() {
		_ = store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO tx_scratch (value) VALUES ('doomed')`); err != nil {
				return err
			}
			panic("kaboom")
		})
	})

	assert.Equal(t, 0, countScratchRows(t, db), "panicking transaction must leave no writes behind")
}

func TestRunInTransactionWrapsBeginFailure(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		t.Fatal("unit of work must not run when the transaction cannot begin")
		return nil
	})

	assert.ErrorIs(t, err, store.ErrTransactionFailed)
}
