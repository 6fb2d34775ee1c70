package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/speclint/speclint/internal/domain"
)

const fileName = ".speclint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .speclint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .speclint.yaml from root. A missing file yields the defaults.
func (l *YAMLLoader) Load(root string) (domain.RepoConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.RepoConfig{}, err
	}

	var cfg domain.RepoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RepoConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.RepoConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
