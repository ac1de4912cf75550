//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/openimg/internal/gallery"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/openimg.log",
			expected: filepath.Join(home, "openimg.log"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.cache/openimg/debug.log",
			expected: filepath.Join(home, ".cache", "openimg", "debug.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/tmp/openimg.log",
			expected: "/tmp/openimg.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/openimg.log",
			expected: "logs/openimg.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "openimg", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestHasAPIConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected bool
	}{
		{
			name:     "client id set",
			config:   Config{API: APIConfig{ClientID: "abc123"}},
			expected: true,
		},
		{
			name:     "only base URL set",
			config:   Config{API: APIConfig{BaseURL: "http://localhost:8080"}},
			expected: false,
		},
		{
			name:     "empty config",
			config:   Config{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasAPIConfig(); got != tt.expected {
				t.Errorf("HasAPIConfig() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetAPIConfig_DefaultBaseURL(t *testing.T) {
	cfg := Config{API: APIConfig{ClientID: "abc"}}
	if got := cfg.GetAPIConfig().BaseURL; got != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", got, DefaultBaseURL)
	}

	cfg.API.BaseURL = "http://localhost:9000"
	if got := cfg.GetAPIConfig().BaseURL; got != "http://localhost:9000" {
		t.Errorf("BaseURL = %q, want custom value", got)
	}
}

func TestGetGalleryConfig_Defaults(t *testing.T) {
	cfg := Config{}
	g := cfg.GetGalleryConfig()

	if g.Section != DefaultSection {
		t.Errorf("Section = %q, want %q", g.Section, DefaultSection)
	}
	if g.Sort != DefaultSort {
		t.Errorf("Sort = %q, want %q", g.Sort, DefaultSort)
	}
	if g.WindowSize != gallery.MaxItems {
		t.Errorf("WindowSize = %d, want %d", g.WindowSize, gallery.MaxItems)
	}
	if g.AllowNSFWThumbnails == nil || *g.AllowNSFWThumbnails {
		t.Errorf("AllowNSFWThumbnails = %v, want false", g.AllowNSFWThumbnails)
	}
	if g.ThumbnailSize != "b" {
		t.Errorf("ThumbnailSize = %q, want %q", g.ThumbnailSize, "b")
	}
}

func TestGetGalleryConfig_CustomValues(t *testing.T) {
	allow := true
	cfg := Config{
		Gallery: GalleryConfig{
			Section:             "/r/aww/",
			Sort:                "top",
			WindowSize:          50,
			AllowNSFWThumbnails: &allow,
			ThumbnailSize:       "m",
		},
	}
	g := cfg.GetGalleryConfig()

	if g.Section != "r/aww" {
		t.Errorf("Section = %q, want %q", g.Section, "r/aww")
	}
	if g.Sort != "top" {
		t.Errorf("Sort = %q, want %q", g.Sort, "top")
	}
	if g.WindowSize != 50 {
		t.Errorf("WindowSize = %d, want 50", g.WindowSize)
	}
	if !*g.AllowNSFWThumbnails {
		t.Error("AllowNSFWThumbnails = false, want true")
	}
	if g.ThumbnailSize != "m" {
		t.Errorf("ThumbnailSize = %q, want %q", g.ThumbnailSize, "m")
	}
}

func TestGetGalleryConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		windowSize int
		thumbSize  string
	}{
		{name: "negative window", windowSize: -4, thumbSize: "x"},
		{name: "odd window", windowSize: 51, thumbSize: "big"},
		{name: "window above max", windowSize: gallery.MaxItems + 2, thumbSize: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Gallery: GalleryConfig{WindowSize: tt.windowSize, ThumbnailSize: tt.thumbSize}}
			g := cfg.GetGalleryConfig()
			if g.WindowSize != gallery.MaxItems {
				t.Errorf("WindowSize = %d, want %d", g.WindowSize, gallery.MaxItems)
			}
			if g.ThumbnailSize != "b" {
				t.Errorf("ThumbnailSize = %q, want %q", g.ThumbnailSize, "b")
			}
		})
	}
}

func TestGetCommentsConfig(t *testing.T) {
	if got := (&Config{}).GetCommentsConfig().Sort; got != DefaultCommentsSort {
		t.Errorf("Sort = %q, want %q", got, DefaultCommentsSort)
	}
	cfg := Config{Comments: CommentsConfig{Sort: "new"}}
	if got := cfg.GetCommentsConfig().Sort; got != "new" {
		t.Errorf("Sort = %q, want %q", got, "new")
	}
}

func TestGetNotificationsConfig_Defaults(t *testing.T) {
	n := (&Config{}).GetNotificationsConfig()
	if n.Enabled == nil || !*n.Enabled {
		t.Error("Enabled should default to true")
	}
	if n.Timeout != DefaultNotifyTimeout {
		t.Errorf("Timeout = %d, want %d", n.Timeout, DefaultNotifyTimeout)
	}
}

func chdirTemp(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	// Keep a user config from leaking into the test.
	t.Setenv("HOME", tmpDir)
}

func TestLoad_EmptyConfig(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte(""), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HasAPIConfig() {
		t.Error("HasAPIConfig() = true for empty config")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_BasicConfig(t *testing.T) {
	chdirTemp(t)

	configContent := `
log_file = "~/openimg.log"

[api]
client_id = " abc123 "
base_url = "http://localhost:8080/3/"

[gallery]
section = "top"
sort = "time"
window_size = 100
allow_nsfw_thumbnails = true
thumbnail_size = "t"

[comments]
sort = "new"

[notifications]
enabled = false
timeout = 2000
`
	if err := os.WriteFile("config.toml", []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.ClientID != "abc123" {
		t.Errorf("API.ClientID = %q, want %q", cfg.API.ClientID, "abc123")
	}
	if cfg.API.BaseURL != "http://localhost:8080/3" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:8080/3")
	}

	home, _ := os.UserHomeDir()
	if cfg.LogFile != filepath.Join(home, "openimg.log") {
		t.Errorf("LogFile = %q, want expanded path", cfg.LogFile)
	}

	g := cfg.GetGalleryConfig()
	if g.Section != "top" || g.Sort != "time" || g.WindowSize != 100 || g.ThumbnailSize != "t" {
		t.Errorf("unexpected gallery config: %+v", g)
	}
	if !*g.AllowNSFWThumbnails {
		t.Error("AllowNSFWThumbnails = false, want true")
	}
	if cfg.GetCommentsConfig().Sort != "new" {
		t.Errorf("Comments.Sort = %q, want %q", cfg.Comments.Sort, "new")
	}
	n := cfg.GetNotificationsConfig()
	if *n.Enabled || n.Timeout != 2000 {
		t.Errorf("unexpected notifications config: enabled=%v timeout=%d", *n.Enabled, n.Timeout)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	chdirTemp(t)

	if err := os.WriteFile("config.toml", []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GetGalleryConfig().Section != DefaultSection {
		t.Errorf("Section = %q, want default", cfg.GetGalleryConfig().Section)
	}
}
