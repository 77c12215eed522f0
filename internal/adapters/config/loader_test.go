package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixdep/internal/adapters/config"
	"go.trai.ch/fixdep/internal/core/domain"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixdep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_EmptyPathYieldsDefaults(t *testing.T) {
	rules, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRules(), rules)
}

func TestLoader_MissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yaml")

	rules, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRules(), rules)
}

func TestLoader_Overrides(t *testing.T) {
	path := writeRules(t, `version: "1"
config_header: out/gen/config.h
ignore_suffixes:
  - .tmp
  - .gen.o
`)

	rules, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/gen/config.h", rules.ConfigHeader)
	assert.Equal(t, []string{".tmp", ".gen.o"}, rules.IgnoredSuffixes)
}

func TestLoader_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeRules(t, `version: "1"
config_header: out/gen/config.h
`)

	rules, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/gen/config.h", rules.ConfigHeader)
	assert.Equal(t, domain.DefaultRules().IgnoredSuffixes, rules.IgnoredSuffixes)
}

func TestLoader_MalformedYAML(t *testing.T) {
	path := writeRules(t, "config_header: [not a scalar\n")

	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}
