package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := GlobalConfigPath(), "/custom/config/swu/config.yml"; got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	if got, want := GlobalConfigPath(), filepath.Join(home, ".config", "swu", "config.yml"); got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, GlobalConfigDir), 0755); err != nil {
		t.Fatal(err)
	}
	if content != "" {
		path := filepath.Join(dir, GlobalConfigDir, GlobalConfigFile)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func TestLoad_NotFound(t *testing.T) {
	ResetCache()
	defer ResetCache()
	writeConfig(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	ResetCache()
	defer ResetCache()
	writeConfig(t, "site_name: Test Units\nprecompress: true\ngzip_level: best\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SiteName != "Test Units" {
		t.Errorf("SiteName = %q, want Test Units", cfg.SiteName)
	}
	if !cfg.Precompress || cfg.GzipLevel != "best" {
		t.Errorf("Precompress = %v, GzipLevel = %q", cfg.Precompress, cfg.GzipLevel)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	ResetCache()
	defer ResetCache()
	writeConfig(t, "base_url: https://file.example.com\nout_dir: site\n")
	t.Setenv("SWU_BASE_URL", "https://env.example.com")
	t.Setenv("SWU_DAY_FIRST", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env value", cfg.BaseURL)
	}
	if cfg.OutDir != "site" {
		t.Errorf("OutDir = %q, want site", cfg.OutDir)
	}
	if !cfg.DayFirst {
		t.Error("DayFirst = false, want true from SWU_DAY_FIRST")
	}
}

func TestLoad_Cached(t *testing.T) {
	ResetCache()
	defer ResetCache()
	writeConfig(t, "site_name: First\n")

	first, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	writeConfig(t, "site_name: Second\n")
	second, _ := Load()
	if first != second || second.SiteName != "First" {
		t.Errorf("Load() not cached: %q", second.SiteName)
	}

	ResetCache()
	third, _ := Load()
	if third.SiteName != "Second" {
		t.Errorf("after ResetCache, SiteName = %q, want Second", third.SiteName)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "site_name: [unterminated\n"},
		{"bad url", "base_url: not-a-url\n"},
		{"bad gzip", "gzip_level: ultra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetCache()
			defer ResetCache()
			writeConfig(t, tt.content)

			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}
