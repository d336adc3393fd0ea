package testing

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploader is a mock implementation of the drive image upload collaborator.
type MockUploader struct {
	mock.Mock
}

// Upload reads the whole body and passes it to the mock as a string.
func (m *MockUploader) Upload(ctx context.Context, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	args := m.Called(ctx, string(data))
	return args.String(0), args.Error(1)
}
