package mocks

import (
	"context"

	"devclub-portal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Members(ctx context.Context) ([]models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Member), args.Error(1)
}

func (m *MockClubRepo) Events(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockClubRepo) StudentRankings(ctx context.Context) ([]models.StudentRanking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentRanking), args.Error(1)
}

func (m *MockClubRepo) BranchRankings(ctx context.Context) ([]models.BranchRanking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BranchRanking), args.Error(1)
}

func (m *MockClubRepo) YearRankings(ctx context.Context) ([]models.YearRanking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.YearRanking), args.Error(1)
}

func (m *MockClubRepo) Highlights(ctx context.Context) (models.Highlights, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Highlights), args.Error(1)
}

func (m *MockClubRepo) Features(ctx context.Context) ([]models.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feature), args.Error(1)
}
