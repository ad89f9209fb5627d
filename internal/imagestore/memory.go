package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store for tests. It keeps the same encoded form a
// FileStore would write.
type Memory struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// FailSaves forces subsequent Save calls to fail with err.
func (m *Memory) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Len reports how many images are currently persisted.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

func (m *Memory) Save(ctx context.Context, img image.Image) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return "", m.saveErr
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	key := uuid.NewString() + ".jpg"
	m.files[key] = buf.Bytes()
	return key, nil
}

func (m *Memory) Load(ctx context.Context, key string) (image.Image, error) {
	m.mu.Lock()
	data, ok := m.files[key]
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", key, err)
	}
	return img, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[key]; !ok {
		return ErrNotFound
	}
	delete(m.files, key)
	return nil
}
