package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier_NotifyAboutTransfer(t *testing.T) {
	var buf bytes.Buffer
	n := notification.NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	account, err := domain_account.New(domain_account.NewParams{AccountID: "Id-123"})
	require.NoError(t, err)

	require.NoError(t, n.NotifyAboutTransfer(context.Background(), account, "Received amount 10 from account Id-456"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "notification about transfer", line["msg"])
	assert.Equal(t, "Id-123", line["account_id"])
	assert.Equal(t, "Received amount 10 from account Id-456", line["transfer_description"])
}
