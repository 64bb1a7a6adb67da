package storage

import "context"

type MockBackend struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *MockBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return m.GetFunc(ctx, key)
}

func (m *MockBackend) Set(ctx context.Context, key string, value []byte) error {
	return m.SetFunc(ctx, key, value)
}

func (m *MockBackend) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, key)
}

func (m *MockBackend) Close() error { return nil }
