package telemetry_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)

	m.TransfersTotal.WithLabelValues(telemetry.OutcomeSuccess).Inc()
	m.NotificationFailures.WithLabelValues("source").Add(2)
	m.AccountsCreated.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TransfersTotal.WithLabelValues(telemetry.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("source")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountsCreated))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["ledger_transfers_total"])
	assert.True(t, names["ledger_notifications_failed_total"])
	assert.True(t, names["ledger_accounts_created_total"])
}

func TestNewLogger_TagsService(t *testing.T) {
	var buf bytes.Buffer
	logger := telemetry.NewLogger(&buf, "core-bank-ledger-service", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("hello", slog.String("k", "v"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "core-bank-ledger-service", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := telemetry.ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
