// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate go tool mockgen -destination=mock_persistence.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence AccountRepository
//go:generate go tool mockgen -destination=mock_messaging.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging Notifier
//go:generate go tool mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform Clock,IDGenerator
