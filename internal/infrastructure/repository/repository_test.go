package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	"sips/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.RecipeModel{},
		&models.VoteModel{},
		&models.FavoriteModel{},
		&models.TokenTransactionModel{},
		&models.SupportTicketModel{},
		&models.AICreationModel{},
		&models.AuditLogModel{},
		&models.WebhookEventModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, openID string) *user.User {
	t.Helper()

	u, err := user.NewUser(openID, "Test User", openID+"@example.com", "google")
	require.NoError(t, err)

	repo := NewUserRepository(db)
	require.NoError(t, repo.Save(context.Background(), u))

	return u
}

func creditTokens(t *testing.T, ctx context.Context, repo *LedgerRepository, userID uint, amount int) {
	t.Helper()

	tx, err := ledger.NewTransaction(userID, amount, ledger.TypeBonus, "")
	require.NoError(t, err)
	require.NoError(t, repo.Credit(ctx, tx))
}
