package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := Load(fsys, ".")
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fsys, "/etc/bash-mini/config.yaml", []byte(`prompt: "test$ "`), 0600))

	cfg, err := Load(fsys, "/etc/bash-mini")
	require.Nil(t, err)
	assert.Equal(t, "test$ ", cfg.Prompt)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, Default().HistoryFile, cfg.HistoryFile)
}

func TestLoadFilePath(t *testing.T) {
	// Giving the path to the config.yaml itself works too.
	fsys := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fsys, "/etc/bash-mini/config.yaml", []byte(`history_file: /tmp/history`), 0600))

	cfg, err := Load(fsys, "/etc/bash-mini/config.yaml")
	require.Nil(t, err)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fsys, "config.yaml", []byte(`search_path: /sbin`), 0600))

	_, err := Load(fsys, ".")
	assert.NotNil(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fsys, "config.yaml", []byte(`prompt: ""`), 0600))

	_, err := Load(fsys, ".")
	assert.NotNil(t, err)
}
