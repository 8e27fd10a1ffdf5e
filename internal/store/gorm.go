package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitedeck/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormStore keeps every collection in the shared documents table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an opened and migrated gorm connection.
func NewGormStore(gdb *gorm.DB) *GormStore {
	return &GormStore{db: gdb}
}

func (s *GormStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var rows []db.Document
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}
	return docs, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	row, err := s.find(ctx, collection, id)
	if err != nil {
		return Document{}, err
	}
	return toDocument(*row), nil
}

func (s *GormStore) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	if err := checkCollection(collection); err != nil {
		return "", err
	}

	row := db.Document{
		Collection: collection,
		Fields:     datatypes.JSONMap(withoutID(fields)),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return row.Key, nil
}

func (s *GormStore) Update(ctx context.Context, collection, id string, fields Fields) error {
	row, err := s.find(ctx, collection, id)
	if err != nil {
		return err
	}

	row.Fields = datatypes.JSONMap(withoutID(fields))
	if err := s.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("collection = ? AND doc_key = ?", collection, id).
		Delete(&db.Document{})
	if result.Error != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks the underlying SQL connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) find(ctx context.Context, collection, id string) (*db.Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var row db.Document
	if err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_key = ?", collection, id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &row, nil
}

func toDocument(row db.Document) Document {
	fields := make(Fields, len(row.Fields))
	for key, value := range row.Fields {
		fields[key] = value
	}
	return Document{ID: row.Key, Fields: fields}
}
