package mocks

import (
	"context"
	"io"

	"planregistry/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (storage.FileInfo, error) {
	args := m.Called(ctx, key, r, size, contentType)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, int64, string) storage.FileInfo); ok {
		return f(ctx, key, r, size, contentType), args.Error(1)
	}
	return args.Get(0).(storage.FileInfo), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, key string) (io.ReadCloser, storage.FileInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.FileInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.FileInfo), args.Error(2)
}

func (m *MockFileStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
