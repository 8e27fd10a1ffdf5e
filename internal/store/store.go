// Package store is the document store the content managers read and write.
// Documents are untyped field maps grouped into named collections; callers
// coerce them into typed records with the Fields helpers.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a document id does not exist in a collection.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidCollection is returned for an empty collection name.
	ErrInvalidCollection = errors.New("collection name is required")
)

// Document is a single stored record.
type Document struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// Store is a collection-scoped CRUD interface over documents.
type Store interface {
	// List returns every document of collection in creation order.
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	// Add stores fields as a new document and returns its id.
	Add(ctx context.Context, collection string, fields Fields) (string, error)
	// Update replaces all fields of an existing document.
	Update(ctx context.Context, collection, id string, fields Fields) error
	Delete(ctx context.Context, collection, id string) error
}

// Pinger is implemented by stores that can report backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

func checkCollection(collection string) error {
	if collection == "" {
		return ErrInvalidCollection
	}
	return nil
}

// withoutID drops identifier keys so they never end up inside the stored fields.
func withoutID(fields Fields) Fields {
	out := make(Fields, len(fields))
	for key, value := range fields {
		if key == "id" || key == "_id" {
			continue
		}
		out[key] = value
	}
	return out
}
