package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/openimg/internal/gallery"
)

const (
	DefaultBaseURL       = "https://api.imgur.com/3"
	DefaultSection       = "hot"
	DefaultSort          = "viral"
	DefaultCommentsSort  = "best"
	DefaultThumbnailSize = gallery.ThumbGallery
	DefaultNotifyTimeout = 5000
)

type Config struct {
	LogFile string `koanf:"log_file"` // empty disables logging
	Icons   string `koanf:"icons"`    // "nerd", "unicode" or "none" (default)

	// API access (gallery browsing requires a client id)
	API APIConfig `koanf:"api"`

	// Gallery browsing settings
	Gallery GalleryConfig `koanf:"gallery"`

	// Comments settings
	Comments CommentsConfig `koanf:"comments"`

	// Desktop notifications for finished uploads
	Notifications NotificationsConfig `koanf:"notifications"`
}

// APIConfig holds the image host API settings.
type APIConfig struct {
	ClientID string `koanf:"client_id"`
	BaseURL  string `koanf:"base_url"` // default: https://api.imgur.com/3
}

// GalleryConfig holds gallery browsing settings.
type GalleryConfig struct {
	Section             string `koanf:"section"`               // "hot", "top", "user" or "r/<subreddit>"
	Sort                string `koanf:"sort"`                  // "viral", "top", "time", "rising"
	WindowSize          int    `koanf:"window_size"`           // posts handed to the detail view (even, default: 200)
	AllowNSFWThumbnails *bool  `koanf:"allow_nsfw_thumbnails"` // initial value, the preference overrides it once toggled
	ThumbnailSize       string `koanf:"thumbnail_size"`        // s, b, t, m, l, h (default: b)
}

// CommentsConfig holds comment list settings.
type CommentsConfig struct {
	Sort string `koanf:"sort"` // "best", "top", "new" (default: best)
}

// NotificationsConfig holds desktop notification settings.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
	Timeout int   `koanf:"timeout"` // ms, default: 5000
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	// Normalize API URL (remove trailing slash)
	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	cfg.API.ClientID = strings.TrimSpace(cfg.API.ClientID)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/openimg/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "openimg", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAPIConfig returns true if a client id is configured.
func (c *Config) HasAPIConfig() bool {
	return c.API.ClientID != ""
}

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// GetGalleryConfig returns the gallery configuration with defaults applied.
func (c *Config) GetGalleryConfig() GalleryConfig {
	cfg := c.Gallery

	cfg.Section = strings.Trim(strings.TrimSpace(cfg.Section), "/")
	if cfg.Section == "" {
		cfg.Section = DefaultSection
	}
	if cfg.Sort == "" {
		cfg.Sort = DefaultSort
	}
	// The window is centred on the selected post, half on each side.
	if cfg.WindowSize <= 0 || cfg.WindowSize%2 != 0 || cfg.WindowSize > gallery.MaxItems {
		cfg.WindowSize = gallery.MaxItems
	}
	if cfg.AllowNSFWThumbnails == nil {
		allow := false
		cfg.AllowNSFWThumbnails = &allow
	}
	if _, ok := gallery.ParseThumbnailSize(cfg.ThumbnailSize); !ok {
		cfg.ThumbnailSize = string(DefaultThumbnailSize)
	}

	return cfg
}

// GetCommentsConfig returns the comments configuration with defaults applied.
func (c *Config) GetCommentsConfig() CommentsConfig {
	cfg := c.Comments
	if cfg.Sort == "" {
		cfg.Sort = DefaultCommentsSort
	}
	return cfg
}

// GetNotificationsConfig returns the notification configuration with defaults applied.
func (c *Config) GetNotificationsConfig() NotificationsConfig {
	cfg := c.Notifications
	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultNotifyTimeout
	}
	return cfg
}
