package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NotEmpty(t, cfg.Include)
	require.NotEmpty(t, cfg.Exclude)
	require.Equal(t, ".mdc", cfg.MarkerExt)
	require.Equal(t, "origin", cfg.Remote)
	require.Contains(t, cfg.SkipBranches, "main")
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `{
  "include": ["rules/shared.mdc"],
  "protect": ["project.mdc"],
  "markerExt": ".rules",
  "remote": "upstream"
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, []string{"rules/shared.mdc"}, cfg.Include)
	require.Equal(t, []string{"project.mdc"}, cfg.Protect)
	require.Equal(t, ".rules", cfg.MarkerExt)
	require.Equal(t, "upstream", cfg.Remote)

	// Unset fields fall back to defaults
	require.Equal(t, Default().Exclude, cfg.Exclude)
	require.Equal(t, Default().SkipBranches, cfg.SkipBranches)
}

func TestLoad_InvalidJSONFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0600))

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), ConfigFileName)
}

func TestMarkerFile(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, "my-feature.mdc", cfg.MarkerFile("my-feature"))
}

func TestIsProtected(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Protect = []string{"project.mdc"}

	// The target's marker file is always protected
	require.True(t, cfg.IsProtected("my-feature.mdc", "my-feature"))

	// Another branch's marker is not protected by the convention
	require.False(t, cfg.IsProtected("other.mdc", "my-feature"))

	// Entries on the protect list are protected for every target
	require.True(t, cfg.IsProtected("project.mdc", "my-feature"))
	require.True(t, cfg.IsProtected("project.mdc", "other"))

	require.False(t, cfg.IsProtected("rules/general.mdc", "my-feature"))
}

func TestIsSkipped(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.True(t, cfg.IsSkipped("main"))
	require.False(t, cfg.IsSkipped("my-feature"))
}
