package domain

import (
	"context"
	"encoding/json"
)

// Document is a single record addressed by collection and id. Data holds
// the JSON-encoded entity payload; the store never inspects it.
type Document struct {
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Data       json.RawMessage `json:"data"`
}

// DocumentStore is the contract for the backing document database. It is
// passed explicitly into the bulk writer and sweeper so both can be tested
// against an in-memory implementation.
type DocumentStore interface {
	// CommitBatch persists the given documents as one atomic request.
	// Callers must respect the store's per-request operation ceiling.
	CommitBatch(ctx context.Context, docs []Document) error

	// FetchPage returns up to limit documents from a collection, in a
	// stable order.
	FetchPage(ctx context.Context, collection string, limit int) ([]Document, error)

	// DeleteBatch removes the identified documents from a collection as
	// one request. Missing ids are not an error.
	DeleteBatch(ctx context.Context, collection string, ids []string) error

	// Count returns the number of documents in a collection.
	Count(ctx context.Context, collection string) (int64, error)
}
