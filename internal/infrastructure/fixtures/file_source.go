// Package fixtures loads the startup data set from JSON files.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storefront/storefront-api/internal/core/ports"
)

const (
	brandsFile   = "brands.json"
	productsFile = "products.json"
	usersFile    = "users.json"
)

// FileSource reads brands.json, products.json and users.json from Dir.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

// Load fails if any of the three files is missing or malformed.
func (s *FileSource) Load(_ context.Context) (*ports.Fixtures, error) {
	var f ports.Fixtures
	if err := s.read(brandsFile, &f.Brands); err != nil {
		return nil, err
	}
	if err := s.read(productsFile, &f.Products); err != nil {
		return nil, err
	}
	if err := s.read(usersFile, &f.Users); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FileSource) read(name string, v any) error {
	path := filepath.Join(s.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
