package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// allowedImageExts lists the accepted upload extensions, matched
// case-sensitively against the substring after the final dot.
var allowedImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// AllowedImageExt reports whether filename carries an accepted image extension.
func AllowedImageExt(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	return allowedImageExts[filename[idx+1:]]
}

// LocalStore persists uploaded binary content under root/<subfolder>/,
// generating collision-resistant names.
type LocalStore struct {
	root string
	log  *logrus.Logger
}

func NewLocalStore(root string, log *logrus.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &LocalStore{root: root, log: log}, nil
}

// Save writes content under root/subfolder and returns the generated
// filename (not the full path).
func (s *LocalStore) Save(content []byte, originalName, subfolder string) (string, error) {
	folder := filepath.Join(s.root, subfolderOrDefault(subfolder))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	name := generateUniqueFilename(originalName)
	path := filepath.Join(folder, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.log.Infof("File saved at: %s", path)
	return name, nil
}

// Delete removes the file if present; a missing file is a silent no-op.
func (s *LocalStore) Delete(name, subfolder string) error {
	path := filepath.Join(s.root, subfolderOrDefault(subfolder), name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	s.log.Infof("File deleted: %s", path)
	return nil
}

// Read returns the stored bytes; a missing file surfaces as os.ErrNotExist.
func (s *LocalStore) Read(name, subfolder string) ([]byte, error) {
	path := filepath.Join(s.root, subfolderOrDefault(subfolder), name)
	return os.ReadFile(path)
}

// Root returns the on-disk storage root, used to serve /uploads statically.
func (s *LocalStore) Root() string {
	return s.root
}

func subfolderOrDefault(subfolder string) string {
	subfolder = strings.TrimSpace(subfolder)
	if subfolder == "" {
		return "default"
	}
	return subfolder
}

// generateUniqueFilename combines a millisecond timestamp, a random UUID and
// the original extension, e.g. 1735689600000_9f0c…d2.png
func generateUniqueFilename(originalName string) string {
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), filepath.Ext(originalName))
}
