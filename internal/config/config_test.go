package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"http url", func(c *Config) { c.BaseURL = "http://localhost:8080" }, false},
		{"ftp url", func(c *Config) { c.BaseURL = "ftp://example.com" }, true},
		{"no host", func(c *Config) { c.BaseURL = "https://" }, true},
		{"relative url", func(c *Config) { c.BaseURL = "example.com" }, true},
		{"best gzip", func(c *Config) { c.GzipLevel = "best" }, false},
		{"bad gzip", func(c *Config) { c.GzipLevel = "max" }, true},
		{"debug log", func(c *Config) { c.LogLevel = "debug" }, false},
		{"bad log", func(c *Config) { c.LogLevel = "chatty" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()
	for _, key := range Keys {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}

	if err := cfg.Set("site_name", "Units Test"); err != nil {
		t.Fatal(err)
	}
	if got, _ := cfg.Get("site_name"); got != "Units Test" {
		t.Errorf("Get(site_name) = %q", got)
	}

	if err := cfg.Set("precompress", "true"); err != nil {
		t.Fatal(err)
	}
	if !cfg.Precompress {
		t.Error("Precompress = false after Set(precompress, true)")
	}
	if err := cfg.Set("day_first", "maybe"); err == nil {
		t.Error("Set(day_first, maybe) error = nil")
	}
	if err := cfg.Set("nope", "x"); err == nil {
		t.Error("Set(nope) error = nil")
	}
	if _, err := cfg.Get("nope"); err == nil {
		t.Error("Get(nope) error = nil")
	}
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"https://www.swapunits.online", "/length/", "https://www.swapunits.online/length/"},
		{"https://www.swapunits.online/", "length/", "https://www.swapunits.online/length/"},
		{"https://example.com", "", "https://example.com/"},
	}
	for _, tt := range tests {
		cfg := &Config{BaseURL: tt.base}
		if got := cfg.SiteURL(tt.path); got != tt.want {
			t.Errorf("SiteURL(%q) with base %q = %q, want %q", tt.path, tt.base, got, tt.want)
		}
	}
}

func TestResolvedIndexPath(t *testing.T) {
	cfg := Default()
	if got, want := cfg.ResolvedIndexPath(), filepath.Join("public", "pages.db"); got != want {
		t.Errorf("ResolvedIndexPath() = %q, want %q", got, want)
	}
	cfg.IndexPath = "/tmp/idx.db"
	if got := cfg.ResolvedIndexPath(); got != "/tmp/idx.db" {
		t.Errorf("ResolvedIndexPath() = %q, want /tmp/idx.db", got)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := Default()
	cfg.AdsensePubID = "ca-pub-123"
	cfg.Precompress = true

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *got != *cfg {
		t.Errorf("LoadFile() = %+v, want %+v", got, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/site", filepath.Join(home, "site")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	if err != nil {
		t.Fatalf("NewLogger(debug) error = %v", err)
	}
	logger.Debug("test message")
	_ = logger.Sync()

	if _, err := NewLogger("loud"); err == nil {
		t.Error("NewLogger(loud) error = nil")
	}
}
