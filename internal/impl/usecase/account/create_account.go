package impl_account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
)

type CreateAccountUsecaseImpl struct {
	repo    port_persistence.AccountRepository
	clock   port_platform.Clock
	metrics *telemetry.Metrics
	log     *slog.Logger
}

func NewCreateAccountUsecaseImpl(
	repo port_persistence.AccountRepository,
	clock port_platform.Clock,
	metrics *telemetry.Metrics,
	log *slog.Logger,
) *CreateAccountUsecaseImpl {
	return &CreateAccountUsecaseImpl{
		repo:    repo,
		clock:   clock,
		metrics: metrics,
		log:     log,
	}
}

func (u *CreateAccountUsecaseImpl) Execute(ctx context.Context, in port_account.CreateAccountInput) (port_account.AccountOutput, error) {
	a, err := domain_account.New(domain_account.NewParams{
		AccountID: in.AccountID,
		Balance:   in.Balance,
		Now:       u.clock.Now(),
	})
	if err != nil {
		return port_account.AccountOutput{}, err
	}

	if err := u.repo.Create(ctx, a); err != nil {
		if errors.Is(err, port_persistence.ErrAlreadyExists) {
			return port_account.AccountOutput{}, fmt.Errorf("%w: account id %s already exists", ErrAccountAlreadyExists, a.ID())
		}
		return port_account.AccountOutput{}, fmt.Errorf("create account %s: %w", a.ID(), err)
	}

	u.metrics.AccountsCreated.Inc()
	u.log.InfoContext(ctx, "account created",
		slog.String("account_id", a.ID()),
		slog.String("balance", in.Balance.String()),
	)

	return toOutput(a), nil
}

func toOutput(a *domain_account.Account) port_account.AccountOutput {
	return port_account.AccountOutput{
		AccountID: a.ID(),
		Balance:   a.Balance(),
		CreatedAt: a.CreatedAt(),
	}
}
