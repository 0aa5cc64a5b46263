package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tradeview/analytics"
)

// Config is the complete analysis configuration: where the trade log lives,
// the date range under study, the time-of-day windows and the daily stop
// thresholds.
type Config struct {
	Data    DataConfig      `json:"data" yaml:"data"`
	Range   RangeConfig     `json:"range,omitempty" yaml:"range,omitempty"`
	Windows [3]WindowConfig `json:"windows" yaml:"windows"`
	Stops   StopsConfig     `json:"stops" yaml:"stops"`
}

// DataConfig points at the trade log. Exactly one source is used: a CSV
// export, or a SQLite file produced by a previous import.
type DataConfig struct {
	CSVPath string `json:"csv_path,omitempty" yaml:"csv_path,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// RangeConfig bounds the analysis by entry calendar date, inclusive at both
// ends. Empty bounds leave that side open.
type RangeConfig struct {
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`
}

// WindowConfig is one time-of-day window in "HH:MM" clock terms. The first
// window is always treated as active.
type WindowConfig struct {
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
	Active bool   `json:"active" yaml:"active"`
}

// StopsConfig holds the daily stop thresholds in points.
type StopsConfig struct {
	LossLimit            float64 `json:"loss_limit" yaml:"loss_limit"`
	GainTarget           float64 `json:"gain_target" yaml:"gain_target"`
	MaxConsecutiveLosses int     `json:"max_consecutive_losses" yaml:"max_consecutive_losses"`
}

// LoadFromFile loads configuration from a file (YAML first, JSON fallback).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration at the boundary; the analytics core
// assumes values it receives are already well-formed.
func (c *Config) Validate() error {
	if c.Data.CSVPath == "" && c.Data.DBPath == "" {
		return fmt.Errorf("data.csv_path or data.db_path is required")
	}
	if c.Data.CSVPath != "" && c.Data.DBPath != "" {
		return fmt.Errorf("data.csv_path and data.db_path are mutually exclusive")
	}

	if c.Range.From != "" {
		if _, err := time.Parse("2006-01-02", c.Range.From); err != nil {
			return fmt.Errorf("range.from must be YYYY-MM-DD: %w", err)
		}
	}
	if c.Range.To != "" {
		if _, err := time.Parse("2006-01-02", c.Range.To); err != nil {
			return fmt.Errorf("range.to must be YYYY-MM-DD: %w", err)
		}
	}

	if _, _, err := c.Windows[0].minutes(); err != nil {
		return fmt.Errorf("windows[0] (mandatory): %w", err)
	}
	for i := 1; i < len(c.Windows); i++ {
		if !c.Windows[i].Active {
			continue
		}
		if _, _, err := c.Windows[i].minutes(); err != nil {
			return fmt.Errorf("windows[%d]: %w", i, err)
		}
	}

	if c.Stops.LossLimit < 0 {
		return fmt.Errorf("stops.loss_limit must be >= 0")
	}
	if c.Stops.GainTarget < 0 {
		return fmt.Errorf("stops.gain_target must be >= 0")
	}
	if c.Stops.MaxConsecutiveLosses < 1 {
		return fmt.Errorf("stops.max_consecutive_losses must be >= 1")
	}
	return nil
}

// RunConfig converts the validated configuration into the analytics form.
func (c *Config) RunConfig() analytics.RunConfig {
	var windows []analytics.Window
	for i, wc := range c.Windows {
		start, end, err := wc.minutes()
		if err != nil {
			continue
		}
		windows = append(windows, analytics.Window{
			StartMin: start,
			EndMin:   end,
			Active:   wc.Active || i == 0,
		})
	}

	return analytics.RunConfig{
		Windows: windows,
		Stops: analytics.StopConfig{
			LossLimit:            c.Stops.LossLimit,
			GainTarget:           c.Stops.GainTarget,
			MaxConsecutiveLosses: c.Stops.MaxConsecutiveLosses,
		},
	}
}

// DateRange returns the parsed range bounds. ok is false when neither bound
// is set. An open side defaults to the far past or far future respectively.
func (c *Config) DateRange() (from, to time.Time, ok bool) {
	if c.Range.From == "" && c.Range.To == "" {
		return time.Time{}, time.Time{}, false
	}

	from = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(9998, 12, 31, 0, 0, 0, 0, time.UTC)
	if c.Range.From != "" {
		from, _ = time.Parse("2006-01-02", c.Range.From)
	}
	if c.Range.To != "" {
		to, _ = time.Parse("2006-01-02", c.Range.To)
	}
	return from, to, true
}

func (w WindowConfig) minutes() (start, end int, err error) {
	start, err = clockMinutes(w.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	end, err = clockMinutes(w.End)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}

func clockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return 0, fmt.Errorf("bad clock value %q", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Default returns a configuration with the dashboard's historical defaults.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			CSVPath: "./trades.csv",
		},
		Windows: [3]WindowConfig{
			{Start: "09:00", End: "10:45", Active: true},
			{Start: "13:30", End: "15:30", Active: true},
			{Start: "17:00", End: "17:45", Active: true},
		},
		Stops: StopsConfig{
			LossLimit:            1000,
			GainTarget:           1100,
			MaxConsecutiveLosses: 10,
		},
	}
}
