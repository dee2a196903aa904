package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/px2vw"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".px2vw.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PX2VW_* prefix)
	if err := k.Load(env.Provider("PX2VW_", ".", func(s string) string {
		// PX2VW_VIEWPORT_WIDTH -> viewport-width
		// PX2VW_QUIET -> quiet
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PX2VW_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOptionSets constructs the conversion option sets from koanf state.
// A config file may define an "options" list for multiple independent
// sets; otherwise a single set is built from the flat keys.
func buildOptionSets() ([]px2vw.Options, error) {
	if k.Exists("options") {
		subs := k.Slices("options")
		if len(subs) == 0 {
			return nil, fmt.Errorf("options must be a list of option maps")
		}
		sets := make([]px2vw.Options, 0, len(subs))
		for i, sub := range subs {
			o, err := optionsFrom(sub)
			if err != nil {
				return nil, fmt.Errorf("options[%d]: %w", i, err)
			}
			sets = append(sets, o)
		}
		return sets, nil
	}

	o, err := optionsFrom(k)
	if err != nil {
		return nil, err
	}
	return []px2vw.Options{o}, nil
}

// optionsFrom builds one option set on top of the library defaults. Only
// keys present in the config override a default.
func optionsFrom(c *koanf.Koanf) (px2vw.Options, error) {
	o := px2vw.DefaultOptions()

	if c.Exists("unit") {
		o.UnitToConvert = c.String("unit")
	}
	if c.Exists("viewport-width") {
		o.ViewportWidth = c.Float64("viewport-width")
	}
	if c.Exists("unit-precision") {
		o.UnitPrecision = c.Int("unit-precision")
	}
	if c.Exists("viewport-unit") {
		o.ViewportUnit = c.String("viewport-unit")
	}
	if c.Exists("font-viewport-unit") {
		o.FontViewportUnit = c.String("font-viewport-unit")
	}
	if c.Exists("min-pixel-value") {
		o.MinPixelValue = c.Float64("min-pixel-value")
	}
	if c.Exists("media-query") {
		o.MediaQuery = c.Bool("media-query")
	}
	if c.Exists("replace") {
		o.Replace = c.Bool("replace")
	}
	if c.Exists("landscape") {
		o.Landscape = c.Bool("landscape")
	}
	if c.Exists("landscape-unit") {
		o.LandscapeUnit = c.String("landscape-unit")
	}
	if c.Exists("landscape-width") {
		o.LandscapeWidth = c.Float64("landscape-width")
	}
	if props := c.Strings("prop-list"); len(props) > 0 {
		o.PropList = props
	}

	var err error
	if o.SelectorBlackList, err = px2vw.ParseMatchers(c.Get("selector-blacklist")); err != nil {
		return o, fmt.Errorf("selector-blacklist: %w", err)
	}
	if o.Include, err = px2vw.ParseMatchers(c.Get("include")); err != nil {
		return o, fmt.Errorf("include: %w", err)
	}
	if o.Exclude, err = px2vw.ParseMatchers(c.Get("exclude")); err != nil {
		return o, fmt.Errorf("exclude: %w", err)
	}
	return o, nil
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}
