// Package siteconfig loads the site-wide settings document.
//
// Settings are read once per process. A load failure is logged and
// replaced by hard-coded defaults, so callers never observe an
// unconfigured state after the first load attempt.
package siteconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the site-wide settings.
type Config struct {
	Reading ReadingConfig `yaml:"reading" json:"reading"`
	Images  ImagesConfig  `yaml:"images" json:"images"`
	Content ContentConfig `yaml:"content" json:"content"`
}

type ReadingConfig struct {
	WordsPerMinute         int  `yaml:"words_per_minute" json:"wordsPerMinute"`
	IncludeCodeInWordCount bool `yaml:"include_code_in_word_count" json:"includeCodeInWordCount"`
}

type ImagesConfig struct {
	Quality      int      `yaml:"quality" json:"quality"`
	DefaultWidth int      `yaml:"default_width" json:"defaultWidth"`
	Formats      []string `yaml:"formats" json:"formats"`
}

type ContentConfig struct {
	DefaultAuthor string `yaml:"default_author" json:"defaultAuthor"`
}

// Default returns the hard-coded fallback configuration.
func Default() Config {
	return Config{
		Reading: ReadingConfig{
			WordsPerMinute:         200,
			IncludeCodeInWordCount: false,
		},
		Images: ImagesConfig{
			Quality:      80,
			DefaultWidth: 1200,
			Formats:      []string{"avif", "webp", "jpg"},
		},
		Content: ContentConfig{
			DefaultAuthor: "David Asaf",
		},
	}
}

// Validate checks the loaded values for out-of-range settings.
func (c Config) Validate() error {
	var problems []string

	if c.Reading.WordsPerMinute <= 0 {
		problems = append(problems, "reading.words_per_minute must be positive")
	}
	if c.Images.Quality < 0 || c.Images.Quality > 100 {
		problems = append(problems, "images.quality must be between 0 and 100")
	}
	if c.Images.DefaultWidth <= 0 {
		problems = append(problems, "images.default_width must be positive")
	}
	for _, f := range c.Images.Formats {
		if strings.TrimSpace(f) == "" {
			problems = append(problems, "images.formats must not contain empty entries")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid site configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Load reads and validates the configuration file at path. Fields not
// present in the file keep their Default() values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse site configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
