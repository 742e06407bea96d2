// Package store provides DocumentStore implementations: a GORM/PostgreSQL
// store for deployments, an in-memory store for tests and local runs, and
// a tracing decorator.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/traceright/dataset-service/internal/dataset/domain"
)

// documentRow is the persisted shape. One table holds every collection;
// the collection name is part of the primary key.
type documentRow struct {
	Collection string    `gorm:"primaryKey;size:64"`
	DocID      string    `gorm:"primaryKey;size:128;column:doc_id"`
	Data       []byte    `gorm:"type:jsonb"`
	CreatedAt  time.Time `gorm:"index"`
}

func (documentRow) TableName() string {
	return "documents"
}

// GormDocumentStore persists documents in PostgreSQL. Each CommitBatch is
// a single transaction, matching the store's atomic per-request semantics.
type GormDocumentStore struct {
	db *gorm.DB
}

// NewGormDocumentStore creates a store over the given connection.
func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{db: db}
}

// AutoMigrate creates the documents table.
func (s *GormDocumentStore) AutoMigrate() error {
	return s.db.AutoMigrate(&documentRow{})
}

func (s *GormDocumentStore) CommitBatch(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	rows := make([]documentRow, len(docs))
	now := time.Now().UTC()
	for i, doc := range docs {
		rows[i] = documentRow{
			Collection: doc.Collection,
			DocID:      doc.ID,
			Data:       doc.Data,
			CreatedAt:  now,
		}
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

func (s *GormDocumentStore) FetchPage(ctx context.Context, collection string, limit int) ([]domain.Document, error) {
	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("doc_id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, len(rows))
	for i, row := range rows {
		docs[i] = domain.Document{
			Collection: row.Collection,
			ID:         row.DocID,
			Data:       row.Data,
		}
	}
	return docs, nil
}

func (s *GormDocumentStore) DeleteBatch(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("collection = ? AND doc_id IN ?", collection, ids).
		Delete(&documentRow{}).Error
}

func (s *GormDocumentStore) Count(ctx context.Context, collection string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("collection = ?", collection).
		Count(&count).Error
	return count, err
}
