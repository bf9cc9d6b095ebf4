package platform

import (
	"time"

	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	"github.com/google/uuid"
)

var (
	_ port_platform.Clock       = SystemClock{}
	_ port_platform.IDGenerator = UUIDGenerator{}
)

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewUUID() uuid.UUID { return uuid.New() }
