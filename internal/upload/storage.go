package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/DhavalSuthar-24/skillswap/pkg/utils"
	"github.com/google/uuid"
)

// PublicPrefix is where the router serves the upload directory from.
const PublicPrefix = "/static/uploads"

// LocalStore writes uploads to a directory on disk under random names.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{Dir: dir}
}

// Save copies the uploaded file to <uuid><ext> and returns the stored name.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if err := utils.EnsureDir(s.Dir); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return name, nil
}

// URL returns the public path of a stored file.
func (s *LocalStore) URL(name string) string {
	return PublicPrefix + "/" + name
}
