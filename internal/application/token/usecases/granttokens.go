package usecases

import (
	"context"

	"sips/internal/domain/audit"
	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	"sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GrantTokensCommand struct {
	AdminID     uint
	UserID      uint
	Amount      int
	Description string
}

type GrantTokensResult struct {
	NewBalance int
}

// GrantTokensUseCase lets an admin credit bonus tokens to a user.
type GrantTokensUseCase struct {
	userRepo   user.UserRepository
	ledgerRepo ledger.LedgerRepository
	auditRepo  audit.AuditLogRepository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewGrantTokensUseCase(
	userRepo user.UserRepository,
	ledgerRepo ledger.LedgerRepository,
	auditRepo audit.AuditLogRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *GrantTokensUseCase {
	return &GrantTokensUseCase{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *GrantTokensUseCase) Execute(ctx context.Context, cmd GrantTokensCommand) (*GrantTokensResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Amount <= 0 {
		return nil, errors.NewValidationError("amount must be positive")
	}

	description := cmd.Description
	if description == "" {
		description = "Admin grant"
	}

	tx, err := ledger.NewTransaction(cmd.UserID, cmd.Amount, ledger.TypeBonus, description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ledgerRepo.Credit(txCtx, tx)
	})
	if err != nil {
		uc.logger.Errorw("failed to grant tokens", "user_id", cmd.UserID, "amount", cmd.Amount, "error", err)
		return nil, err
	}

	uc.recordAudit(ctx, cmd)

	granted, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("tokens granted", "admin_id", cmd.AdminID, "user_id", cmd.UserID, "amount", cmd.Amount)

	return &GrantTokensResult{NewBalance: granted.Tokens()}, nil
}

func (uc *GrantTokensUseCase) recordAudit(ctx context.Context, cmd GrantTokensCommand) {
	adminID := cmd.AdminID
	recordID := cmd.UserID
	entry, err := audit.NewLogEntry(&adminID, "token.grant", "token_transactions", &recordID, map[string]interface{}{
		"amount":      cmd.Amount,
		"description": cmd.Description,
	})
	if err != nil {
		return
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to save audit log", "action", "token.grant", "error", err)
	}
}
