package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/shopspring/decimal"
)

const (
	partySource      = "source"
	partyDestination = "destination"
)

type TransferMoneyUsecaseImpl struct {
	repo     port_persistence.AccountRepository
	notifier messaging.Notifier
	clock    port_platform.Clock
	ids      port_platform.IDGenerator
	metrics  *telemetry.Metrics
	log      *slog.Logger
}

func NewTransferMoneyUsecaseImpl(
	repo port_persistence.AccountRepository,
	notifier messaging.Notifier,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	metrics *telemetry.Metrics,
	log *slog.Logger,
) *TransferMoneyUsecaseImpl {
	return &TransferMoneyUsecaseImpl{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		ids:      ids,
		metrics:  metrics,
		log:      log,
	}
}

func (u *TransferMoneyUsecaseImpl) Execute(ctx context.Context, in port_transfer.TransferMoneyInput) (port_transfer.TransferMoneyOutput, error) {
	start := time.Now()

	from, to, err := u.resolve(ctx, in)
	if err == nil {
		err = domain_transfer.Transfer(from, to, in.Amount)
	}

	u.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	u.metrics.TransfersTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		u.log.WarnContext(ctx, "transfer rejected",
			slog.String("from_account_id", in.FromAccountID),
			slog.String("to_account_id", in.ToAccountID),
			amountAttr(in.Amount),
			slog.String("correlation_id", in.CorrelationID),
			slog.String("error", err.Error()),
		)
		return port_transfer.TransferMoneyOutput{}, err
	}

	correlationID := strings.TrimSpace(in.CorrelationID)
	if correlationID == "" {
		correlationID = u.ids.NewUUID().String()
	}

	ev := domain_transfer.MoneyTransferred{
		At:             u.clock.Now(),
		TransferID:     u.ids.NewUUID(),
		CorrelationID_: correlationID,
		FromAccountID:  from.ID(),
		ToAccountID:    to.ID(),
		Amount:         in.Amount,
	}

	u.log.InfoContext(ctx, "transferred amount",
		slog.String("event", ev.EventName()),
		slog.String("transfer_id", ev.TransferID.String()),
		slog.String("from_account_id", ev.FromAccountID),
		slog.String("to_account_id", ev.ToAccountID),
		slog.String("amount", ev.Amount.String()),
		slog.String("correlation_id", ev.CorrelationID()),
	)

	u.notifyParties(context.WithoutCancel(ctx), ev, from, to)

	return port_transfer.TransferMoneyOutput{
		TransferID:    ev.TransferID.String(),
		FromAccountID: ev.FromAccountID,
		ToAccountID:   ev.ToAccountID,
		Amount:        ev.Amount,
		CorrelationID: ev.CorrelationID(),
		CompletedAt:   ev.OccurredAt(),
	}, nil
}

func (u *TransferMoneyUsecaseImpl) resolve(ctx context.Context, in port_transfer.TransferMoneyInput) (from, to *domain_account.Account, err error) {
	fromID := strings.TrimSpace(in.FromAccountID)
	toID := strings.TrimSpace(in.ToAccountID)
	if fromID == "" || toID == "" {
		return nil, nil, ErrInvalidInput
	}

	if from, err = u.get(ctx, fromID); err != nil {
		return nil, nil, err
	}
	if to, err = u.get(ctx, toID); err != nil {
		return nil, nil, err
	}

	return from, to, nil
}

func (u *TransferMoneyUsecaseImpl) get(ctx context.Context, accountID string) (*domain_account.Account, error) {
	a, err := u.repo.GetByID(ctx, accountID)
	if errors.Is(err, port_persistence.ErrNotFound) {
		return nil, fmt.Errorf("%w: account with id %s does not exist", ErrAccountNotFound, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", accountID, err)
	}
	return a, nil
}

// notifyParties informs both sides of a committed transfer. The two
// notifications are independent and their failures are only logged.
func (u *TransferMoneyUsecaseImpl) notifyParties(ctx context.Context, ev domain_transfer.MoneyTransferred, from, to *domain_account.Account) {
	var wg sync.WaitGroup

	wg.Go(func() { u.notify(ctx, ev, partySource, from, TransferredDescription(ev)) })
	wg.Go(func() { u.notify(ctx, ev, partyDestination, to, ReceivedDescription(ev)) })

	wg.Wait()
}

func (u *TransferMoneyUsecaseImpl) notify(ctx context.Context, ev domain_transfer.DomainEvent, party string, account *domain_account.Account, description string) {
	err := u.safeNotify(ctx, account, description)
	if err == nil {
		return
	}

	u.metrics.NotificationFailures.WithLabelValues(party).Inc()
	u.log.ErrorContext(ctx, "notification error about the transfer",
		slog.String("event", ev.EventName()),
		slog.String("party", party),
		slog.String("account_id", account.ID()),
		slog.String("transfer_id", ev.AggregateID().String()),
		slog.String("correlation_id", ev.CorrelationID()),
		slog.String("error", err.Error()),
	)
}

func (u *TransferMoneyUsecaseImpl) safeNotify(ctx context.Context, account *domain_account.Account, description string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNotifierPanic, r)
		}
	}()

	return u.notifier.NotifyAboutTransfer(ctx, account, description)
}

// amountAttr avoids rendering amounts whose exponent would expand into
// millions of digits.
func amountAttr(d decimal.Decimal) slog.Attr {
	if !domain_account.WithinPrecision(d) {
		return slog.Group("amount", slog.Int("exponent", int(d.Exponent())))
	}
	return slog.String("amount", d.String())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeSuccess
	case errors.Is(err, domain_transfer.ErrInvalidAmount), errors.Is(err, domain_transfer.ErrAmountPrecision):
		return telemetry.OutcomeInvalidAmount
	case errors.Is(err, domain_transfer.ErrInsufficientBalance):
		return telemetry.OutcomeInsufficientBalance
	case errors.Is(err, domain_transfer.ErrSameAccount):
		return telemetry.OutcomeSameAccount
	case errors.Is(err, ErrAccountNotFound):
		return telemetry.OutcomeAccountNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, domain_transfer.ErrInvalidAccount):
		return telemetry.OutcomeInvalidInput
	default:
		return telemetry.OutcomeError
	}
}
