package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/movement"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func createTestAccount(t *testing.T, store *Storage, number string) {
	t.Helper()
	ctx := context.Background()
	writer, err := store.Write(ctx)
	require.NoError(t, err)
	err = writer.Account.Insert(ctx, &account.AccountCreate{
		Number:        number,
		OwnerDocument: "CC-1002003004",
		OwnerName:     "Ana Morales",
		Secret:        "1234",
	})
	require.NoError(t, err)
	require.NoError(t, writer.Commit())
}

// -- Account table tests --

func TestAccountInsertAndFind(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	createTestAccount(t, store, "100200300")

	acct, err := store.Accounts.FindByNumber(ctx, "100200300")
	assert.NoError(t, err)
	require.NotNil(t, acct)
	assert.Equal(t, "100200300", acct.Number)
	assert.Equal(t, "Ana Morales", acct.OwnerName)
	assert.Equal(t, "1234", acct.Secret)
	assert.True(t, acct.Balance.IsZero())
	assert.False(t, acct.CreatedAt.IsZero())
}

func TestAccountFindByNumber_Missing(t *testing.T) {
	store := newTestStorage(t)

	acct, err := store.Accounts.FindByNumber(context.Background(), "999999999")
	assert.NoError(t, err)
	assert.Nil(t, acct)
}

func TestAccountUpdateBalance(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	createTestAccount(t, store, "100200300")

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	err = writer.Account.UpdateBalance(ctx, "100200300", decimal.RequireFromString("150000.50"))
	require.NoError(t, err)
	require.NoError(t, writer.Commit())

	acct, err := store.Accounts.FindByNumber(ctx, "100200300")
	require.NoError(t, err)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("150000.50")))
}

func TestWriterRollback_LeavesNoTrace(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	err = writer.Account.Insert(ctx, &account.AccountCreate{
		Number:        "100200300",
		OwnerDocument: "CC-1",
		OwnerName:     "Ana",
		Secret:        "1234",
	})
	require.NoError(t, err)
	_, err = writer.Movement.Append(ctx, &movement.MovementCreate{
		AccountNumber: "100200300",
		Category:      movement.CategoryDeposit,
		Amount:        decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())

	acct, err := store.Accounts.FindByNumber(ctx, "100200300")
	assert.NoError(t, err)
	assert.Nil(t, acct)

	movements, err := store.Movements.List(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, movements)
}

// -- Movement table tests --

func appendTestMovement(t *testing.T, store *Storage, number string, createdAt time.Time) int64 {
	t.Helper()
	ctx := context.Background()
	writer, err := store.Write(ctx)
	require.NoError(t, err)
	id, err := writer.Movement.Append(ctx, &movement.MovementCreate{
		AccountNumber: number,
		Category:      movement.CategoryDeposit,
		Amount:        decimal.RequireFromString("10"),
		CreatedAt:     createdAt,
	})
	require.NoError(t, err)
	require.NoError(t, writer.Commit())
	return id
}

func TestMovementAppend_AssignsIncreasingIDs(t *testing.T) {
	store := newTestStorage(t)

	now := time.Now().UTC()
	first := appendTestMovement(t, store, "100200300", now)
	second := appendTestMovement(t, store, "100200300", now)

	assert.Greater(t, second, first)
}

func TestMovementList_NewestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)
	appendTestMovement(t, store, "100200300", t1)
	appendTestMovement(t, store, "100200300", t2)
	appendTestMovement(t, store, "100200300", t3)

	movements, err := store.Movements.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.True(t, movements[0].CreatedAt.Equal(t3))
	assert.True(t, movements[1].CreatedAt.Equal(t2))
	assert.True(t, movements[2].CreatedAt.Equal(t1))
}

func TestMovementList_TimestampTiesNewestInsertedFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	first := appendTestMovement(t, store, "100200300", now)
	second := appendTestMovement(t, store, "100200300", now)

	movements, err := store.Movements.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, second, movements[0].ID)
	assert.Equal(t, first, movements[1].ID)
}

func TestMovementList_FilterByAccount(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	now := time.Now().UTC()
	appendTestMovement(t, store, "100200300", now)
	appendTestMovement(t, store, "400500600", now)

	movements, err := store.Movements.List(ctx, &movement.MovementFilter{AccountNumber: "100200300"})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "100200300", movements[0].AccountNumber)
}

func TestMovementList_AscendingIsInsertionOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Insertion order deliberately disagrees with timestamp order.
	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	first := appendTestMovement(t, store, "100200300", later)
	second := appendTestMovement(t, store, "100200300", earlier)

	movements, err := store.Movements.List(ctx, &movement.MovementFilter{Ascending: true})
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, first, movements[0].ID)
	assert.Equal(t, second, movements[1].ID)
}
