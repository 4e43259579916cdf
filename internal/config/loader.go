package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "platformer.yaml"

// Load loads the tuning file.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Only an explicit customPath can produce an error; broken files further
// down the search order are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := readConfig(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readConfig(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return parseDefault(), nil
}

func parseDefault() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default()
	}
	return cfg
}

// readConfig decodes path on top of the defaults, so a partial file only
// overrides the keys it sets.
func readConfig(path string) (Config, error) {
	cfg := parseDefault()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (ScenarioFile, error) {
	var s ScenarioFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadScenario reads a scenario file from disk.
func LoadScenario(path string) (ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioFile{}, fmt.Errorf("config: failed to read scenario %s: %w", path, err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes a tuning file as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// MarshalScenario encodes a scenario as YAML.
func MarshalScenario(s ScenarioFile) ([]byte, error) {
	return yaml.Marshal(s)
}

// DataDir returns ~/.platformer, or "" when the home directory is unknown.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer")
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
