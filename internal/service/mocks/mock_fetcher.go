package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockFileFetcher struct {
	mock.Mock
}

func (m *MockFileFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
