package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sips/internal/domain/ledger"
	apperrors "sips/internal/shared/errors"
)

func TestLedgerRepository_Credit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "ledger-credit")

	tx, err := ledger.NewTransaction(u.ID(), 10, ledger.TypeBonus, "Signup bonus")
	require.NoError(t, err)
	require.NoError(t, repo.Credit(ctx, tx))

	found, err := users.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, found.Tokens())

	sum, err := repo.SumByUser(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, found.Tokens(), sum)
}

func TestLedgerRepository_Credit_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	tx, err := ledger.NewTransaction(999, 10, ledger.TypeBonus, "")
	require.NoError(t, err)

	err = repo.Credit(ctx, tx)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestLedgerRepository_Debit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "ledger-debit")

	credit, err := ledger.NewTransaction(u.ID(), 3, ledger.TypePurchase, "Token pack")
	require.NoError(t, err)
	require.NoError(t, repo.Credit(ctx, credit))

	t.Run("debit within balance", func(t *testing.T) {
		debit, err := ledger.NewTransaction(u.ID(), -1, ledger.TypeUsage, "drink generation")
		require.NoError(t, err)
		require.NoError(t, repo.Debit(ctx, debit))

		found, err := users.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, found.Tokens())
	})

	t.Run("debit down to zero", func(t *testing.T) {
		debit, err := ledger.NewTransaction(u.ID(), -2, ledger.TypeUsage, "drink generation")
		require.NoError(t, err)
		require.NoError(t, repo.Debit(ctx, debit))

		found, err := users.GetByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, found.Tokens())
	})

	t.Run("debit beyond balance is refused", func(t *testing.T) {
		debit, err := ledger.NewTransaction(u.ID(), -1, ledger.TypeUsage, "drink generation")
		require.NoError(t, err)

		err = repo.Debit(ctx, debit)
		require.Error(t, err)
		assert.True(t, apperrors.IsInsufficientBalanceError(err))

		// Refused debits must not leave a ledger entry behind.
		sum, err := repo.SumByUser(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, 0, sum)
	})
}

func TestLedgerRepository_BalanceMatchesLedger(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "ledger-sum")

	entries := []struct {
		amount int
		txType ledger.TransactionType
	}{
		{10, ledger.TypeBonus},
		{50, ledger.TypePurchase},
		{-1, ledger.TypeUsage},
		{-1, ledger.TypeUsage},
		{1, ledger.TypeRefund},
	}

	for _, e := range entries {
		tx, err := ledger.NewTransaction(u.ID(), e.amount, e.txType, "")
		require.NoError(t, err)
		if e.amount > 0 {
			require.NoError(t, repo.Credit(ctx, tx))
		} else {
			require.NoError(t, repo.Debit(ctx, tx))
		}
	}

	found, err := users.GetByID(ctx, u.ID())
	require.NoError(t, err)

	sum, err := repo.SumByUser(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, 59, sum)
	assert.Equal(t, found.Tokens(), sum)
}

func TestLedgerRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "ledger-list")
	other := createTestUser(t, db, "ledger-other")

	for i := 0; i < 5; i++ {
		tx, err := ledger.NewTransaction(u.ID(), 1, ledger.TypeBonus, "")
		require.NoError(t, err)
		require.NoError(t, repo.Credit(ctx, tx))
	}
	otherTx, err := ledger.NewTransaction(other.ID(), 1, ledger.TypeBonus, "")
	require.NoError(t, err)
	require.NoError(t, repo.Credit(ctx, otherTx))

	list, err := repo.ListByUser(ctx, u.ID(), 3)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	for _, entry := range list {
		assert.Equal(t, u.ID(), entry.UserID())
	}

	all, err := repo.ListByUser(ctx, u.ID(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
