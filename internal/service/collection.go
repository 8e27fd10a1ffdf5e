package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrInvalidInput 在表单校验失败时返回，错误信息会附带具体原因
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 在文档不存在时返回
	ErrNotFound = errors.New("record not found")
)

// 各内容分类对应的集合名称
const (
	CollectionSocialLinks      = "socialLinks"
	CollectionProjects         = "Projects"
	CollectionPricingPlans     = "pricingPlans"
	CollectionParallaxSections = "parallaxSections"
	CollectionContacts         = "contactUs"
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ListResult 是列表接口的返回值
// Stale=true 表示本次读取失败，Items 为上一次成功读取的快照
type ListResult[T any] struct {
	Items []T  `json:"items"`
	Stale bool `json:"stale"`
}

// manager 封装单个集合的通用读写逻辑，并维护最近一次成功读取的本地快照
// refetch=true 时写入后重新拉取整个集合，否则直接在快照上打补丁
type manager[T any] struct {
	collection string
	store      store.Store
	log        *zap.Logger
	decode     func(store.Document) T
	refetch    bool

	mu       sync.Mutex
	snapshot []store.Document
}

func newManager[T any](collection string, st store.Store, log *zap.Logger, decode func(store.Document) T, refetch bool) *manager[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &manager[T]{
		collection: collection,
		store:      st,
		log:        log.With(zap.String("collection", collection)),
		decode:     decode,
		refetch:    refetch,
	}
}

// List 从存储读取集合；读取失败时记录日志并返回旧快照，不重试
func (m *manager[T]) List(ctx context.Context) ListResult[T] {
	docs, err := m.store.List(ctx, m.collection)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.log.Error("fetch collection failed, serving stale snapshot", zap.Error(err))
		return ListResult[T]{Items: m.decodeAll(m.snapshot), Stale: true}
	}

	m.snapshot = docs
	return ListResult[T]{Items: m.decodeAll(docs)}
}

// cached 返回当前本地快照，不访问存储
func (m *manager[T]) cached() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decodeAll(m.snapshot)
}

// Get 根据 ID 读取单条记录
func (m *manager[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := m.store.Get(ctx, m.collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return zero, ErrNotFound
		}
		m.log.Error("get document failed", zap.String("id", id), zap.Error(err))
		return zero, fmt.Errorf("get %s: %w", m.collection, err)
	}
	return m.decode(doc), nil
}

// Delete 删除记录，调用方需在此之前完成确认
func (m *manager[T]) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, m.collection, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		m.log.Error("delete document failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete %s: %w", m.collection, err)
	}

	if m.refetch {
		m.List(ctx)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.snapshot[:0:0]
	for _, doc := range m.snapshot {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	m.snapshot = kept
	return nil
}

func (m *manager[T]) create(ctx context.Context, fields store.Fields) (T, error) {
	var zero T
	id, err := m.store.Add(ctx, m.collection, fields)
	if err != nil {
		m.log.Error("add document failed", zap.Error(err))
		return zero, fmt.Errorf("create %s: %w", m.collection, err)
	}

	doc := store.Document{ID: id, Fields: fields}
	if m.refetch {
		m.List(ctx)
	} else {
		m.mu.Lock()
		m.snapshot = append(m.snapshot, doc)
		m.mu.Unlock()
	}
	return m.decode(doc), nil
}

func (m *manager[T]) update(ctx context.Context, id string, fields store.Fields) (T, error) {
	var zero T
	if err := m.store.Update(ctx, m.collection, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return zero, ErrNotFound
		}
		m.log.Error("update document failed", zap.String("id", id), zap.Error(err))
		return zero, fmt.Errorf("update %s: %w", m.collection, err)
	}

	doc := store.Document{ID: id, Fields: fields}
	if m.refetch {
		m.List(ctx)
	} else {
		m.mu.Lock()
		for i := range m.snapshot {
			if m.snapshot[i].ID == id {
				m.snapshot[i] = doc
			}
		}
		m.mu.Unlock()
	}
	return m.decode(doc), nil
}

func (m *manager[T]) decodeAll(docs []store.Document) []T {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		items = append(items, m.decode(doc))
	}
	return items
}
