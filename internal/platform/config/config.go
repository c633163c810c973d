package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFileName    = "folio.yaml"
	TUILogFileName     = "tui.log"
	DefaultHTTPTimeout = 10 * time.Second
)

type Config struct {
	SiteRoot    string        `yaml:"site_root" env:"FOLIO_SITE"`
	DBPath      string        `yaml:"db_path" env:"FOLIO_DB"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"FOLIO_HTTP_TIMEOUT"`
	Logging     LoggingConfig `yaml:"logging"`
	Pages       []PageConfig  `yaml:"pages" env:"-"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" env:"FOLIO_LOG_LEVEL"`
	Destination string `yaml:"destination,omitempty" env:"FOLIO_LOG_FILE"`
}

type PageConfig struct {
	Name          string           `yaml:"name"`
	Kind          string           `yaml:"kind"`
	Title         string           `yaml:"title"`
	Layout        string           `yaml:"layout"`
	CategoryGroup string           `yaml:"category_group"`
	Sources       []string         `yaml:"sources"`
	Base          string           `yaml:"base,omitempty"`
	AssetPrefix   string           `yaml:"asset_prefix,omitempty"`
	Featured      bool             `yaml:"featured"`
	EmptyText     string           `yaml:"empty_text"`
	ErrorText     string           `yaml:"error_text"`
	Categories    []CategoryConfig `yaml:"categories"`
}

type CategoryConfig struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Class string `yaml:"class,omitempty"`
}

// New returns the built-in configuration rooted at siteRoot.
func New(siteRoot string) (Config, error) {
	if strings.TrimSpace(siteRoot) == "" {
		return Config{}, fmt.Errorf("site root is required")
	}
	return Config{
		SiteRoot:    siteRoot,
		DBPath:      filepath.Join(siteRoot, ".folio", "folio.db"),
		HTTPTimeout: DefaultHTTPTimeout,
		Logging:     LoggingConfig{Level: "normal"},
		Pages:       DefaultPages(),
	}, nil
}

// Load layers an optional YAML file and FOLIO_* environment variables over
// the defaults. An empty path falls back to <siteRoot>/folio.yaml when it
// exists.
func Load(siteRoot, path string) (Config, error) {
	cfg, err := New(siteRoot)
	if err != nil {
		return Config{}, err
	}

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = filepath.Join(siteRoot, DefaultFileName)
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.Pages) == 0 {
		cfg.Pages = DefaultPages()
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join(cfg.SiteRoot, ".folio", "folio.db")
	}
	return cfg, nil
}

// InteractiveLogging keeps log lines off a terminal owned by a full-screen
// program: an unset destination becomes a file under .folio.
func (c Config) InteractiveLogging() Config {
	if strings.TrimSpace(c.Logging.Destination) == "" {
		c.Logging.Destination = filepath.Join(c.SiteRoot, ".folio", TUILogFileName)
	}
	return c
}

// Page returns the page configuration called name.
func (c Config) Page(name string) (PageConfig, bool) {
	for _, p := range c.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return PageConfig{}, false
}

func DefaultPages() []PageConfig {
	return []PageConfig{
		{
			Name:          "events",
			Kind:          "event",
			Title:         "Events",
			Layout:        "timeline",
			CategoryGroup: "type",
			Sources:       []string{"/data/events.json"},
			EmptyText:     "No events match the current filters.",
			ErrorText:     "Failed to load events.",
			Categories: []CategoryConfig{
				{Value: "launch", Label: "Launch", Class: "timeline__type--launch"},
				{Value: "project", Label: "Project"},
				{Value: "hackathon", Label: "Competition", Class: "timeline__type--hackathon"},
				{Value: "talk", Label: "Talk"},
				{Value: "award", Label: "Award"},
			},
		},
		{
			Name:          "projects",
			Kind:          "project",
			Title:         "Projects",
			Layout:        "cards",
			CategoryGroup: "status",
			Sources: []string{
				"../data/projects.json",
				"data/projects.json",
				"/data/projects.json",
				"https://nirvaankohli.com/data/projects.json",
			},
			Base:        "/projects/",
			AssetPrefix: "../",
			Featured:    true,
			EmptyText:   "No projects match the current filters.",
			ErrorText:   "Unable to load projects.",
			Categories: []CategoryConfig{
				{Value: "research", Label: "Research", Class: "status--research"},
				{Value: "wip", Label: "In Progress", Class: "status--wip"},
				{Value: "shipped", Label: "Shipped", Class: "status--shipped"},
			},
		},
	}
}
