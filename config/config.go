package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Graph         GraphConfig         `yaml:"graph"`
	Submission    SubmissionConfig    `yaml:"submission"`
	DistanceCache DistanceCacheConfig `yaml:"distance_cache"`
	Snapshot      SnapshotConfig      `yaml:"snapshot"`
	Cluster       ClusterConfig       `yaml:"cluster"`
	Chain         ChainConfig         `yaml:"chain"`
	Logging       Logging             `yaml:"logging"`
}

type GraphConfig struct {
	Path        string `yaml:"path"`
	IDAttribute string `yaml:"id_attribute"`
	StringIDs   bool   `yaml:"string_ids"`
}

type SubmissionConfig struct {
	Path        string `yaml:"path"`
	Compressed  bool   `yaml:"compressed"`
	TilesColumn string `yaml:"tiles_column"`
}

type DistanceCacheConfig struct {
	Path string `yaml:"path"`
}

type SnapshotConfig struct {
	Path string `yaml:"path"`
}

// ClusterConfig holds the cut parameters for the two cluster-extraction
// operators: Count selects CutByCount when positive, otherwise Height
// selects CutByHeight.
type ClusterConfig struct {
	Count  int     `yaml:"count"`
	Height float64 `yaml:"height"`
}

type ChainConfig struct {
	Beta   float64 `yaml:"beta"`
	Length int     `yaml:"length"`
	Seed   int64   `yaml:"seed"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for coianalysis.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "coianalysis")
}

// DataDir returns the XDG data directory for coianalysis.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "coianalysis")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/coianalysis/config.yaml > ./config.yaml
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}

		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", fmt.Errorf(
		"no config file found; searched:\n  %s\n  ./config.yaml\n\nRun 'coianalysis init' to create a default config",
		xdgConfig,
	)
}

// Load reads and parses a config YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults first.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Graph: GraphConfig{
			IDAttribute: "GEOID10",
			StringIDs:   true,
		},
		Submission: SubmissionConfig{
			TilesColumn: "tiles",
		},
		Snapshot: SnapshotConfig{
			Path: "coi-analysis.db",
		},
		Chain: ChainConfig{
			Beta:   1.0,
			Length: 1000,
			Seed:   1,
		},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// GetDistanceCachePath returns the effective distance-cache path from
// config or the XDG data directory default.
func (c *Config) GetDistanceCachePath() string {
	if c.DistanceCache.Path != "" {
		return c.DistanceCache.Path
	}

	return filepath.Join(DataDir(), "distances.csv")
}

// homeDir falls back to the working directory on platforms or sandboxes
// where the home directory can't be determined, rather than failing outright.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return home
}
