package usecases

import (
	"context"

	"sips/internal/domain/ledger"
	"sips/internal/domain/user"
	"sips/internal/shared/authorization"
	"sips/internal/shared/constants"
	apperrors "sips/internal/shared/errors"
	"sips/internal/shared/logger"
)

// TokenGenerator signs session tokens.
type TokenGenerator interface {
	Generate(userID uint, openID string, role authorization.UserRole) (string, error)
}

// WelcomeEmailSender greets newly registered users.
type WelcomeEmailSender interface {
	SendWelcomeEmail(to, name string) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SignInCommand struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type SignInResult struct {
	User         *user.User
	SessionToken string
	IsNewUser    bool
}

// SignInUseCase finds or creates the account behind an identity provider
// profile. First sign-ins get the signup bonus credited atomically with the
// account row; the configured owner open id is promoted to admin on creation.
type SignInUseCase struct {
	userRepo    user.UserRepository
	ledgerRepo  ledger.LedgerRepository
	tokens      TokenGenerator
	emailSender WelcomeEmailSender
	txManager   TransactionManager
	ownerOpenID string
	logger      logger.Interface
}

func NewSignInUseCase(
	userRepo user.UserRepository,
	ledgerRepo ledger.LedgerRepository,
	tokens TokenGenerator,
	emailSender WelcomeEmailSender,
	txManager TransactionManager,
	ownerOpenID string,
	logger logger.Interface,
) *SignInUseCase {
	return &SignInUseCase{
		userRepo:    userRepo,
		ledgerRepo:  ledgerRepo,
		tokens:      tokens,
		emailSender: emailSender,
		txManager:   txManager,
		ownerOpenID: ownerOpenID,
		logger:      logger,
	}
}

func (uc *SignInUseCase) Execute(ctx context.Context, cmd SignInCommand) (*SignInResult, error) {
	if cmd.OpenID == "" {
		return nil, apperrors.NewValidationError("open ID is required")
	}

	existing, err := uc.userRepo.GetByOpenID(ctx, cmd.OpenID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return nil, err
	}

	var (
		account *user.User
		isNew   bool
	)
	if existing != nil {
		account, err = uc.signInExisting(ctx, existing, cmd)
	} else {
		account, err = uc.register(ctx, cmd)
		isNew = true
	}
	if err != nil {
		return nil, err
	}

	sessionToken, err := uc.tokens.Generate(account.ID(), account.OpenID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to sign session token", "user_id", account.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to create session")
	}

	return &SignInResult{User: account, SessionToken: sessionToken, IsNewUser: isNew}, nil
}

func (uc *SignInUseCase) signInExisting(ctx context.Context, account *user.User, cmd SignInCommand) (*user.User, error) {
	account.RecordSignIn(cmd.Name, cmd.Email)
	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to record sign-in", "user_id", account.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user signed in", "user_id", account.ID())
	return account, nil
}

func (uc *SignInUseCase) register(ctx context.Context, cmd SignInCommand) (*user.User, error) {
	account, err := user.NewUser(cmd.OpenID, cmd.Name, cmd.Email, cmd.LoginMethod)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if uc.ownerOpenID != "" && cmd.OpenID == uc.ownerOpenID {
		account.PromoteToAdmin()
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, account); err != nil {
			return err
		}

		bonus, err := ledger.NewTransaction(account.ID(), constants.SignupBonusTokens, ledger.TypeBonus, "Signup bonus")
		if err != nil {
			return err
		}
		return uc.ledgerRepo.Credit(txCtx, bonus)
	})
	if err != nil {
		uc.logger.Errorw("failed to register user", "open_id", cmd.OpenID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", account.ID(), "role", account.Role())

	if cmd.Email != "" {
		if err := uc.emailSender.SendWelcomeEmail(cmd.Email, cmd.Name); err != nil {
			uc.logger.Warnw("failed to send welcome email", "user_id", account.ID(), "error", err)
		}
	}

	// The signup bonus was credited directly on the row; reload so the
	// returned entity carries the real balance.
	fresh, err := uc.userRepo.GetByID(ctx, account.ID())
	if err != nil {
		return account, nil
	}
	return fresh, nil
}
