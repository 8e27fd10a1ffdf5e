package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sitedeck/internal/db"
	"github.com/sitedeck/internal/store"
	"gorm.io/gorm/logger"
)

func setupServiceStore(t *testing.T) *store.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate documents: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store.NewGormStore(gdb)
}

var errStoreDown = errors.New("store unavailable")

// flakyStore 在 failReads/failWrites 打开时模拟远端存储故障
type flakyStore struct {
	store.Store
	failReads  bool
	failWrites bool
}

func (s *flakyStore) List(ctx context.Context, collection string) ([]store.Document, error) {
	if s.failReads {
		return nil, errStoreDown
	}
	return s.Store.List(ctx, collection)
}

func (s *flakyStore) Add(ctx context.Context, collection string, fields store.Fields) (string, error) {
	if s.failWrites {
		return "", errStoreDown
	}
	return s.Store.Add(ctx, collection, fields)
}

func (s *flakyStore) Update(ctx context.Context, collection, id string, fields store.Fields) error {
	if s.failWrites {
		return errStoreDown
	}
	return s.Store.Update(ctx, collection, id, fields)
}
