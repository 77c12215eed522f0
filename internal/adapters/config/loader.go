// Package config provides the exclusion-rules loader for fixdep.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/fixdep/internal/core/domain"
	"go.trai.ch/fixdep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RulesLoader = (*FileRulesLoader)(nil)

// Rulesfile represents the structure of the optional fixdep.yaml rules file.
type Rulesfile struct {
	Version        string   `yaml:"version"`
	ConfigHeader   string   `yaml:"config_header"`
	IgnoreSuffixes []string `yaml:"ignore_suffixes"`
}

// FileRulesLoader implements ports.RulesLoader using a YAML file.
// The file is optional: the kernel defaults apply when it is absent, and any
// field left empty keeps its default.
type FileRulesLoader struct{}

// NewLoader creates a new FileRulesLoader.
func NewLoader() *FileRulesLoader {
	return &FileRulesLoader{}
}

// Load reads the rules file at path.
func (l *FileRulesLoader) Load(path string) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return rules, nil
	}
	if err != nil {
		return domain.Rules{}, zerr.With(zerr.Wrap(err, "failed to read rules file"), "path", path)
	}

	var rf Rulesfile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return domain.Rules{}, zerr.With(zerr.Wrap(err, "failed to parse rules file"), "path", path)
	}

	if rf.ConfigHeader != "" {
		rules.ConfigHeader = rf.ConfigHeader
	}
	if rf.IgnoreSuffixes != nil {
		rules.IgnoredSuffixes = rf.IgnoreSuffixes
	}
	return rules, nil
}
