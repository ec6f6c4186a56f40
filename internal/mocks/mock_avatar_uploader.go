package mocks

import (
	"context"
	"path/filepath"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// MockAvatarUploader implements domain.AvatarUploader interface for testing
type MockAvatarUploader struct {
	UploadFunc func(ctx context.Context, localPath string) (string, error)

	// Uploaded records paths passed in when the default behavior runs
	Uploaded []string
}

// NewMockAvatarUploader creates a new MockAvatarUploader with default behaviors
func NewMockAvatarUploader() *MockAvatarUploader {
	return &MockAvatarUploader{}
}

// Upload uploads a staged file and returns its hosted URL
func (m *MockAvatarUploader) Upload(ctx context.Context, localPath string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, localPath)
	}
	// Default behavior: fabricate a hosted URL from the file name
	m.Uploaded = append(m.Uploaded, localPath)
	return "https://cdn.example.com/avatars/" + filepath.Base(localPath), nil
}

// Compile-time interface compliance verification
var _ domain.AvatarUploader = (*MockAvatarUploader)(nil)
