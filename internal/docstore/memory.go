package docstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used in tests and offline development.
// Enumeration order is insertion order.
type Memory struct {
	mu      sync.Mutex
	cols    map[string][]Record
	forced  error
	nowFunc func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		cols:    make(map[string][]Record),
		nowFunc: time.Now,
	}
}

// Fail forces every subsequent call to return err until Fail(nil).
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forced = err
}

func (m *Memory) Create(ctx context.Context, collection, key string, doc Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return m.forced
	}
	for _, rec := range m.cols[collection] {
		if rec.Key == key {
			return fmt.Errorf("document %s/%s already exists", collection, key)
		}
	}

	m.cols[collection] = append(m.cols[collection], Record{
		Key:       key,
		Doc:       cloneDoc(doc),
		CreatedAt: m.nowFunc(),
	})
	return nil
}

func (m *Memory) Add(ctx context.Context, collection string, doc Document) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return Record{}, m.forced
	}

	rec := Record{
		Key:       uuid.NewString(),
		Doc:       cloneDoc(doc),
		CreatedAt: m.nowFunc(),
	}
	m.cols[collection] = append(m.cols[collection], rec)
	return Record{Key: rec.Key, Doc: cloneDoc(rec.Doc), CreatedAt: rec.CreatedAt}, nil
}

func (m *Memory) Get(ctx context.Context, collection, key string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return Record{}, m.forced
	}
	for _, rec := range m.cols[collection] {
		if rec.Key == key {
			return Record{Key: rec.Key, Doc: cloneDoc(rec.Doc), CreatedAt: rec.CreatedAt}, nil
		}
	}
	return Record{}, ErrNotFound
}

func (m *Memory) List(ctx context.Context, collection string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return nil, m.forced
	}

	records := make([]Record, 0, len(m.cols[collection]))
	for _, rec := range m.cols[collection] {
		records = append(records, Record{Key: rec.Key, Doc: cloneDoc(rec.Doc), CreatedAt: rec.CreatedAt})
	}
	return records, nil
}

func (m *Memory) Delete(ctx context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return m.forced
	}
	records := m.cols[collection]
	for i, rec := range records {
		if rec.Key == key {
			m.cols[collection] = append(records[:i:i], records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func cloneDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
