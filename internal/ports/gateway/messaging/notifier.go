package messaging

import (
	"context"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

type Notifier interface {
	NotifyAboutTransfer(ctx context.Context, account *domain_account.Account, transferDescription string) error
}
