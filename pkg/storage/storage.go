package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"lifetube/pkg/database"

	"github.com/pkg/errors"
)

// AssetStore durable home for binary assets, either MinIO or the local disk
// depending on deployment mode. Object names are slash separated keys like
// "videos/video-123.mp4".
type AssetStore interface {
	Save(ctx context.Context, objectName, filePath, contentType string) error
	Remove(ctx context.Context, objectName string) error
	PublicURL(objectName string) string
	// ObjectName resolve an object name back from a public URL previously
	// returned by PublicURL. false when the URL is foreign (e.g. the
	// placeholder thumbnail).
	ObjectName(url string) (string, bool)
}

// MinIOStore AssetStore backed by a MinIO bucket
type MinIOStore struct {
	Client *database.MinIOClient
}

// NewMinIOStore create an AssetStore over an existing minio connection
func NewMinIOStore(client *database.MinIOClient) *MinIOStore {
	return &MinIOStore{Client: client}
}

// Save upload the file under objectName
func (s *MinIOStore) Save(ctx context.Context, objectName, filePath, contentType string) error {
	return s.Client.UploadFile(ctx, objectName, filePath, contentType)
}

// Remove delete the object
func (s *MinIOStore) Remove(ctx context.Context, objectName string) error {
	return s.Client.RemoveFile(ctx, objectName)
}

// PublicURL resolve the object's public URL
func (s *MinIOStore) PublicURL(objectName string) string {
	return s.Client.PublicURL(objectName)
}

// ObjectName strip scheme, host and bucket from one of our URLs
func (s *MinIOStore) ObjectName(url string) (string, bool) {
	prefix := s.Client.PublicURL("")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// LocalStore AssetStore over a directory served as static files
type LocalStore struct {
	BaseDir   string
	URLPrefix string
}

// NewLocalStore create a disk backed AssetStore rooted at baseDir,
// public URLs resolve under urlPrefix (e.g. "/uploads")
func NewLocalStore(baseDir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.WithMessage(err, "create storage dir failed")
	}
	return &LocalStore{BaseDir: baseDir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Save copy the file under baseDir/objectName
func (s *LocalStore) Save(ctx context.Context, objectName, filePath, contentType string) error {
	destPath := filepath.Join(s.BaseDir, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return errors.WithMessage(err, "create asset dir failed")
	}

	src, err := os.Open(filePath)
	if err != nil {
		return errors.WithMessage(err, "open source file failed")
	}
	defer src.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return errors.WithMessage(err, "create asset file failed")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.WithMessage(err, "copy asset file failed")
	}
	return nil
}

// Remove delete the file
func (s *LocalStore) Remove(ctx context.Context, objectName string) error {
	return os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(objectName)))
}

// PublicURL resolve the static URL for the object
func (s *LocalStore) PublicURL(objectName string) string {
	return s.URLPrefix + "/" + path.Clean(objectName)
}

// ObjectName strip the static prefix from one of our URLs
func (s *LocalStore) ObjectName(url string) (string, bool) {
	prefix := s.URLPrefix + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
