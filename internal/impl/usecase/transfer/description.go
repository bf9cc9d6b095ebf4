package impl_transfer

import (
	"fmt"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
)

const (
	transferredAmountMessage = "Transferred amount %s to account %s"
	receivedAmountMessage    = "Received amount %s from account %s"
)

func TransferredDescription(ev domain_transfer.MoneyTransferred) string {
	return fmt.Sprintf(transferredAmountMessage, ev.Amount.String(), ev.ToAccountID)
}

func ReceivedDescription(ev domain_transfer.MoneyTransferred) string {
	return fmt.Sprintf(receivedAmountMessage, ev.Amount.String(), ev.FromAccountID)
}
