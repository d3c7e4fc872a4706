package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"exam-generator/internal/domain"
	"exam-generator/internal/i18n"
)

// Config describes one exam: header fields, grading value, and the answer
// key password.
type Config struct {
	Institute string `yaml:"institute"`
	Course    string `yaml:"course"`
	Class     string `yaml:"class"`
	Professor string `yaml:"professor"`

	// Optional header fields; left blank they render as fill-in lines.
	Student string `yaml:"student"`
	Section string `yaml:"section"`
	Period  string `yaml:"period"`

	TotalPoints int    `yaml:"total_points"`
	Password    string `yaml:"password"`
	LogoPath    string `yaml:"logo"`
	Year        int    `yaml:"year"`
	Language    string `yaml:"language"`
}

// Load reads YAML config from path and applies defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
	if c.Language == "" {
		c.Language = string(i18n.English)
	}
	if c.TotalPoints == 0 {
		c.TotalPoints = 100
	}
	if c.Period == "" {
		if c.Lang() == i18n.Spanish {
			c.Period = fmt.Sprintf("I Parcial %d", c.Year)
		} else {
			c.Period = fmt.Sprintf("Midterm Exam %d", c.Year)
		}
	}
}

// Validate checks the fields every exam needs.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"institute", c.Institute},
		{"course", c.Course},
		{"class", c.Class},
		{"professor", c.Professor},
		{"password", c.Password},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%s is required: %w", field.name, domain.ErrInvalidConfig)
		}
	}
	if c.TotalPoints <= 0 {
		return fmt.Errorf("total_points must be positive: %w", domain.ErrInvalidConfig)
	}
	if c.LogoPath != "" {
		if _, err := os.Stat(c.LogoPath); err != nil {
			return fmt.Errorf("logo %q: %v: %w", c.LogoPath, err, domain.ErrInvalidConfig)
		}
	}
	return nil
}

// Lang returns the configured language, defaulting to English.
func (c *Config) Lang() i18n.Language {
	switch i18n.Language(c.Language) {
	case i18n.Spanish:
		return i18n.Spanish
	default:
		return i18n.English
	}
}
