package mocks

import (
	"context"

	"planregistry/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMasterPlanRepository struct {
	mock.Mock
}

func (m *MockMasterPlanRepository) Create(ctx context.Context, doc *model.MasterPlan) (*model.MasterPlan, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MasterPlan), args.Error(1)
}

func (m *MockMasterPlanRepository) FindByID(ctx context.Context, id int64) (*model.MasterPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MasterPlan), args.Error(1)
}

func (m *MockMasterPlanRepository) ExistsByDocID(ctx context.Context, docID string) (bool, error) {
	args := m.Called(ctx, docID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMasterPlanRepository) List(ctx context.Context) ([]model.MasterPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MasterPlan), args.Error(1)
}
