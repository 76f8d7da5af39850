package reviewapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxUploadBytes is the largest file the client will send.
	MaxUploadBytes = 1 << 20
	// FileField is the multipart field name the service reads.
	FileField = "code_file"
)

// Upload is a file selected for review.
type Upload struct {
	Name    string
	Size    int64
	Content []byte
}

func NewUpload(name string, content []byte) Upload {
	return Upload{Name: name, Size: int64(len(content)), Content: content}
}

// LoadUpload reads the file at path. Oversized files are rejected from
// their stat size without being read.
func LoadUpload(path string) (Upload, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Upload{}, ErrNoFile
	}
	info, err := os.Stat(path)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrNoFile, err)
	}
	if info.IsDir() {
		return Upload{}, fmt.Errorf("%w: %s is a directory", ErrNoFile, path)
	}
	if info.Size() > MaxUploadBytes {
		return Upload{}, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrNoFile, err)
	}
	upload := NewUpload(filepath.Base(path), content)
	return upload, upload.Validate()
}

func (u Upload) Validate() error {
	if u.Name == "" {
		return ErrNoFile
	}
	if u.Size > MaxUploadBytes || int64(len(u.Content)) > MaxUploadBytes {
		return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, u.Name, u.Size)
	}
	return nil
}
