package mocks

import (
	"context"
	"io"

	"planregistry/internal/model"
	"planregistry/internal/service"
	"planregistry/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockMasterPlanService struct {
	mock.Mock
}

func (m *MockMasterPlanService) CheckDocID(ctx context.Context, docID string) (bool, error) {
	args := m.Called(ctx, docID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMasterPlanService) Create(ctx context.Context, req *model.CreateMasterPlanRequest) (*model.MasterPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MasterPlan), args.Error(1)
}

func (m *MockMasterPlanService) List(ctx context.Context) ([]model.MasterPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MasterPlan), args.Error(1)
}

func (m *MockMasterPlanService) Get(ctx context.Context, id int64) (*model.MasterPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MasterPlan), args.Error(1)
}

func (m *MockMasterPlanService) UploadFile(ctx context.Context, in service.UploadInput) (*service.UploadResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockMasterPlanService) DeleteFile(ctx context.Context, filePath, docID string) error {
	args := m.Called(ctx, filePath, docID)
	return args.Error(0)
}

func (m *MockMasterPlanService) DownloadFile(ctx context.Context, docID, fileName string) (io.ReadCloser, storage.FileInfo, error) {
	args := m.Called(ctx, docID, fileName)
	if args.Get(0) == nil {
		return nil, args.Get(1).(storage.FileInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.FileInfo), args.Error(2)
}
