package command

import (
	"context"

	"github.com/traceright/dataset-service/kafka"
)

// AdminGate checks whether a caller holds the admin privilege. The check
// reads the caller's profile record on every call and fails closed: any
// lookup error means not authorized.
type AdminGate interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

// RunGuard mutually excludes concurrent bulk runs. A nil guard disables
// exclusion, matching the behavior without Redis.
type RunGuard interface {
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// AuditPublisher emits audit events after bulk operations. Publishing is
// best-effort; failures are logged, never surfaced to the caller.
type AuditPublisher interface {
	PublishDatasetSeeded(ctx context.Context, event kafka.DatasetSeededEvent) error
	PublishDatasetCleared(ctx context.Context, event kafka.DatasetClearedEvent) error
}
