package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileLifecycle(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	path, err := CreateEmptyConfig("Dune")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = CreateEmptyConfig("Dune")
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, SwitchConfig("Dune"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "Dune", label)

	require.NoError(t, RenameConfig("Dune", "Arrakis"))
	label, _ = CurrentLabel()
	assert.Equal(t, "Arrakis", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Arrakis", list[0].Label)
	assert.True(t, list[0].Active)
	assert.Equal(t, "Star Wars", list[0].Franchise)
	assert.Equal(t, "WWW1", list[0].Output)
	assert.Equal(t, "Default", list[1].Label)

	require.NoError(t, RemoveConfig("Arrakis"))
	label, _ = CurrentLabel()
	assert.Equal(t, "Default", label)

	assert.ErrorContains(t, RemoveConfig("Default"), "cannot remove")
}

func TestAddConfigCopiesFile(t *testing.T) {
	isolate(t)

	src := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(src, []byte("franchise: Star Trek\n"), 0644))

	require.NoError(t, AddConfig("Trek", src))

	path, err := ConfigPathByLabel("Trek")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "franchise: Star Trek\n", string(b))

	_, err = ConfigPathByLabel("Missing")
	assert.ErrorContains(t, err, "does not exist")
}

func TestNoActiveConfig(t *testing.T) {
	isolate(t)

	_, err := ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestInitDefaultConfigTwice(t *testing.T) {
	isolate(t)

	first, err := InitDefaultConfig()
	require.NoError(t, err)

	second, err := InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Equal(t, first, second)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero values", Config{}, ""},
		{"defaults", *DefaultConfig(), ""},
		{"relative catalog url", Config{CatalogURL: "top-15.html"}, "catalog_url"},
		{"ftp catalog url", Config{CatalogURL: "ftp://example.org/list"}, "catalog_url"},
		{"blank section", Config{Sections: []string{"Movies", " "}}, "sections[1] is empty"},
		{"negative workers", Config{Workers: -2}, "workers must not be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestSwitchRefusesInvalidProfile(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	path, err := CreateEmptyConfig("Broken")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("catalog_url: not a url\nsections: [\"\"]\n"), 0644))

	err = SwitchConfig("Broken")
	assert.ErrorContains(t, err, "catalog_url")
	assert.ErrorContains(t, err, "sections[0] is empty")

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "Default", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Broken", list[0].Label)
	assert.Error(t, list[0].Err)
	assert.Empty(t, list[0].Franchise)
	assert.NoError(t, list[1].Err)
}

func TestAddConfigRejectsInvalidSource(t *testing.T) {
	isolate(t)

	src := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(src, []byte("workers: -1\n"), 0644))

	assert.ErrorContains(t, AddConfig("Bad", src), "workers must not be negative")
	_, err := ConfigPathByLabel("Bad")
	assert.ErrorContains(t, err, "does not exist")
}

func TestLabelsArePlainNames(t *testing.T) {
	isolate(t)

	_, err := CreateEmptyConfig("../escape")
	assert.ErrorContains(t, err, "invalid label")

	_, err = CreateEmptyConfig("  ")
	assert.ErrorContains(t, err, "label cannot be empty")
}
