package notification

import (
	"context"
	"log/slog"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"
)

var _ messaging.Notifier = (*LogNotifier)(nil)

// LogNotifier delivers notifications to the service log. It stands in for an
// e-mail or push gateway.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyAboutTransfer(ctx context.Context, account *domain_account.Account, transferDescription string) error {
	n.log.InfoContext(ctx, "notification about transfer",
		slog.String("account_id", account.ID()),
		slog.String("transfer_description", transferDescription),
	)
	return nil
}
