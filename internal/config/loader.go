package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadTetra loads the game configuration.
// Search order: customPath -> ~/.tetra/configs/tetra.yaml -> ./configs/tetra.yaml -> embedded default.
// Files are decoded on top of DefaultTetraConfig, so partial files are fine.
func LoadTetra(customPath string) (TetraConfig, Source, error) {
	if customPath != "" {
		cfg, err := readTetra(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, cfg.Validate()
	}

	if userCfgPath := userConfigPath("tetra.yaml"); userCfgPath != "" {
		if cfg, err := readTetra(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := readTetra(filepath.Join("configs", "tetra.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, SourceLocal, nil
	}

	cfg := DefaultTetraConfig()
	if err := yaml.Unmarshal(defaultTetraYAML, &cfg); err != nil {
		return DefaultTetraConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// ParseTetra decodes YAML on top of the defaults.
func ParseTetra(data []byte) (TetraConfig, error) {
	cfg := DefaultTetraConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readTetra(path string) (TetraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetraConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseTetra(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetra", "configs", filename)
}
