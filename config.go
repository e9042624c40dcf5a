package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type ListDepsConfig struct {
	ConfigVersion      string   `json:"configVersion,omitempty" yaml:"configVersion,omitempty"`
	Extensions         []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	IgnoreDependencies []string `json:"ignoreDependencies,omitempty" yaml:"ignoreDependencies,omitempty"`
	IgnoreSkipped      []string `json:"ignoreSkipped,omitempty" yaml:"ignoreSkipped,omitempty"`
}

// Looked up in this order when a directory is given
var configFileNames = []string{
	".list-deps.jsonc",
	"list-deps.config.json",
	".list-deps.yaml",
	".list-deps.yml",
}

const supportedConfigVersions = "~1"

var supportedConfigConstraint = mustConstraint(supportedConfigVersions)

func mustConstraint(constraint string) *semver.Constraints {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		panic(fmt.Sprintf("invalid semver constraint '%s': %v", constraint, err))
	}
	return c
}

// FindConfigFile returns the first known config file in dir, or "" if there is none
func FindConfigFile(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// LoadConfig loads list-deps configuration from configPath.
// configPath can be a config file or a directory containing one of configFileNames.
func LoadConfig(configPath string) (ListDepsConfig, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return ListDepsConfig{}, err
	}

	actualPath := configPath
	if fileInfo.IsDir() {
		actualPath = FindConfigFile(configPath)
		if actualPath == "" {
			return ListDepsConfig{}, fmt.Errorf("no config file found in %s (looked for %s)", configPath, strings.Join(configFileNames, ", "))
		}
	}

	content, err := os.ReadFile(actualPath)
	if err != nil {
		return ListDepsConfig{}, err
	}

	config, err := ParseConfig(content, filepath.Ext(actualPath))
	if err != nil {
		return ListDepsConfig{}, fmt.Errorf("%s: %w", actualPath, err)
	}
	return config, nil
}

// ParseConfig parses config content. YAML is used for .yaml/.yml, JSON with
// comments for anything else.
func ParseConfig(content []byte, ext string) (ListDepsConfig, error) {
	var config ListDepsConfig

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &config); err != nil {
			return ListDepsConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(content), &config); err != nil {
			return ListDepsConfig{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := validateConfig(config); err != nil {
		return ListDepsConfig{}, err
	}
	return config, nil
}

func validateConfig(config ListDepsConfig) error {
	if config.ConfigVersion != "" {
		version, err := semver.NewVersion(config.ConfigVersion)
		if err != nil {
			return fmt.Errorf("configVersion: invalid version '%s': %w", config.ConfigVersion, err)
		}
		if !supportedConfigConstraint.Check(version) {
			return fmt.Errorf("configVersion: unsupported configVersion '%s', expected %s", config.ConfigVersion, supportedConfigVersions)
		}
	}

	for i, ext := range config.Extensions {
		if ext == "" {
			return fmt.Errorf("extensions[%d]: empty extension", i)
		}
		if strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extensions[%d]: extension '%s' must not start with '.'", i, ext)
		}
	}

	for i, pattern := range config.IgnoreDependencies {
		if err := validatePattern(pattern); err != nil {
			return fmt.Errorf("ignoreDependencies[%d]: %w", i, err)
		}
	}
	for i, pattern := range config.IgnoreSkipped {
		if err := validatePattern(pattern); err != nil {
			return fmt.Errorf("ignoreSkipped[%d]: %w", i, err)
		}
	}
	return nil
}
