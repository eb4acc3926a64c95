// Package config loads YAML configuration for the coianalysis CLI,
// following TobiSchelling-AICrawler's internal/config (embedded default,
// XDG path resolution, defaulted parse).
package config
