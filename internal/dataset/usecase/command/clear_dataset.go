package command

import (
	"context"
	"fmt"

	"github.com/traceright/dataset-service/internal/dataset/bulk"
	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/kafka"
	"github.com/traceright/dataset-service/pkg/apperr"
	"github.com/traceright/dataset-service/pkg/logger"
)

// ClearDatasetCommand represents the command to empty the seeded
// collections. Collections may narrow the sweep; empty means all.
type ClearDatasetCommand struct {
	CallerID         uint
	ConfirmationCode string
	Collections      []string
}

// ClearResult reports documents deleted per collection. A collection whose
// sweep failed reports 0; its siblings are unaffected.
type ClearResult struct {
	Deleted map[string]int `json:"deleted"`
}

// ClearDatasetHandler handles the clear command.
type ClearDatasetHandler struct {
	store     domain.DocumentStore
	gate      AdminGate
	publisher AuditPublisher
}

// NewClearDatasetHandler creates a clear handler. publisher may be nil.
func NewClearDatasetHandler(store domain.DocumentStore, gate AdminGate, publisher AuditPublisher) *ClearDatasetHandler {
	return &ClearDatasetHandler{store: store, gate: gate, publisher: publisher}
}

// Handle executes the clear command. The confirmation code is checked
// before anything touches the store; it is a misuse guard, not a security
// control.
func (h *ClearDatasetHandler) Handle(ctx context.Context, cmd ClearDatasetCommand) (*ClearResult, error) {
	if cmd.ConfirmationCode != domain.ClearConfirmationCode {
		return nil, fmt.Errorf("confirmation code mismatch: %w", apperr.ErrInvalidArgument)
	}
	if cmd.CallerID == 0 {
		return nil, fmt.Errorf("clear requires a caller identity: %w", apperr.ErrUnauthenticated)
	}
	isAdmin, err := h.gate.IsAdmin(ctx, cmd.CallerID)
	if err != nil || !isAdmin {
		return nil, fmt.Errorf("caller %d is not an admin: %w", cmd.CallerID, apperr.ErrPermissionDenied)
	}

	collections := cmd.Collections
	if len(collections) == 0 {
		collections = domain.AllCollections()
	}

	sweeper := bulk.NewSweeper(h.store, domain.DefaultBatchSize)
	deleted := sweeper.Sweep(ctx, collections)

	logger.Info(ctx).
		Interface("deleted", deleted).
		Msg("Clear run completed")

	if h.publisher != nil {
		event := kafka.DatasetClearedEvent{
			TriggeredBy: cmd.CallerID,
			Deleted:     deleted,
		}
		if err := h.publisher.PublishDatasetCleared(ctx, event); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to publish cleared event")
		}
	}

	return &ClearResult{Deleted: deleted}, nil
}
