// Package config loads demo configuration: marker class names, the default
// tab, and the page definition rendered by the TUI host.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"tabctl/internal/tabs"
)

// Config holds application configuration.
type Config struct {
	ClassNames ClassNamesConfig `mapstructure:"class_names"`
	Defaults   DefaultsConfig   `mapstructure:"defaults"`
	Page       []PageTab        `mapstructure:"page"`
}

// ClassNamesConfig mirrors tabs.ClassNames with config-file field names.
type ClassNamesConfig struct {
	Container string `mapstructure:"container"`
	Tab       string `mapstructure:"tab"`
	Active    string `mapstructure:"active"`
	Inactive  string `mapstructure:"inactive"`
	Hide      string `mapstructure:"hide"`
	Show      string `mapstructure:"show"`
}

// DefaultsConfig holds initial-state settings.
type DefaultsConfig struct {
	ActiveTab int `mapstructure:"active_tab"`
}

// PageTab describes one tab of the demo page: a header and the panels bound
// to it by sharing its ID as a class name.
type PageTab struct {
	ID     string   `mapstructure:"id"`
	Label  string   `mapstructure:"label"`
	Panels []string `mapstructure:"panels"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// TABCTL_. An explicit path wins over TABCTL_CONFIG, which wins over
// ~/.config/tabctl/config.toml. A missing file is fine: defaults apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("class_names.container", "")
	v.SetDefault("class_names.tab", "")
	v.SetDefault("class_names.active", "")
	v.SetDefault("class_names.inactive", "")
	v.SetDefault("class_names.hide", "")
	v.SetDefault("class_names.show", "")
	v.SetDefault("defaults.active_tab", 0)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("TABCTL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabctl"))
		v.SetConfigName("config")
		// optional when not explicitly requested
		_ = v.ReadInConfig()
	}

	v.SetEnvPrefix("TABCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Page) == 0 {
		c.Page = DefaultPage()
	}
	return c, nil
}

// TabOptions converts the loaded class names and defaults to controller
// options. Empty fields fall back inside the controller's own merge.
func (c Config) TabOptions() tabs.Options {
	return tabs.Options{
		ClassNames: tabs.ClassNames{
			Container: c.ClassNames.Container,
			Tab:       c.ClassNames.Tab,
			Active:    c.ClassNames.Active,
			Inactive:  c.ClassNames.Inactive,
			Hide:      c.ClassNames.Hide,
			Show:      c.ClassNames.Show,
		},
		Defaults: tabs.Defaults{ActiveTab: c.Defaults.ActiveTab},
	}
}

// DefaultPage is the built-in demo content used when no page is configured.
func DefaultPage() []PageTab {
	return []PageTab{
		{ID: "overview", Label: "Overview", Panels: []string{
			"Welcome to the tabctl demo.",
			"Use number keys, arrows, or the mouse to switch tabs.",
		}},
		{ID: "details", Label: "Details", Panels: []string{
			"Each tab header is a node carrying the tab marker class.",
			"Panels link to a header by sharing its id as a class name.",
		}},
		{ID: "about", Label: "About", Panels: []string{
			"State lives in the document: active/inactive on headers, visible/hidden on panels.",
		}},
	}
}
