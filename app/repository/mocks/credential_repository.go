package mocks

import (
	"context"

	"devclub-portal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockCredentialRepo struct {
	mock.Mock
}

func (m *MockCredentialRepo) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Credential), args.Error(1)
}
