package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/worklens/worklens/internal/analyzer"
	"github.com/worklens/worklens/internal/dispatch"
)

// Config is the top-level worklens configuration.
type Config struct {
	Goals      Goals      `mapstructure:"goals"`
	Thresholds Thresholds `mapstructure:"thresholds"`
	Dispatch   Dispatch   `mapstructure:"dispatch"`
	Output     Output     `mapstructure:"output"`
}

// Goals defines the user's daily targets.
type Goals struct {
	DailyEarnings float64 `mapstructure:"daily_earnings"`
	DailyHours    float64 `mapstructure:"daily_hours"`
}

// Thresholds defines the analyzer tunables. Every value has a documented
// default; the config file only needs the ones being overridden.
type Thresholds struct {
	TrendWindowDays         int     `mapstructure:"trend_window_days"`
	TrendMinSessions        int     `mapstructure:"trend_min_sessions"`
	TrendThresholdPercent   float64 `mapstructure:"trend_threshold_percent"`
	AnomalyBaselineDays     int     `mapstructure:"anomaly_baseline_days"`
	AnomalyMinBaselineDays  int     `mapstructure:"anomaly_min_baseline_days"`
	AnomalyThresholdPercent float64 `mapstructure:"anomaly_threshold_percent"`
	PeakWindowHours         int     `mapstructure:"peak_window_hours"`
	BreakCeilingHours       float64 `mapstructure:"break_ceiling_hours"`
	ScoreWindowDays         int     `mapstructure:"score_window_days"`
}

// Dispatch defines the computation dispatch settings.
type Dispatch struct {
	SyncThreshold   int `mapstructure:"sync_threshold"`
	CacheSize       int `mapstructure:"cache_size"`
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("goals.daily_earnings", DefaultGoals.DailyEarnings)
	v.SetDefault("goals.daily_hours", DefaultGoals.DailyHours)
	v.SetDefault("thresholds.trend_window_days", DefaultThresholds.TrendWindowDays)
	v.SetDefault("thresholds.trend_min_sessions", DefaultThresholds.TrendMinSessions)
	v.SetDefault("thresholds.trend_threshold_percent", DefaultThresholds.TrendThresholdPercent)
	v.SetDefault("thresholds.anomaly_baseline_days", DefaultThresholds.AnomalyBaselineDays)
	v.SetDefault("thresholds.anomaly_min_baseline_days", DefaultThresholds.AnomalyMinBaselineDays)
	v.SetDefault("thresholds.anomaly_threshold_percent", DefaultThresholds.AnomalyThresholdPercent)
	v.SetDefault("thresholds.peak_window_hours", DefaultThresholds.PeakWindowHours)
	v.SetDefault("thresholds.break_ceiling_hours", DefaultThresholds.BreakCeilingHours)
	v.SetDefault("thresholds.score_window_days", DefaultThresholds.ScoreWindowDays)
	v.SetDefault("dispatch.sync_threshold", DefaultDispatch.SyncThreshold)
	v.SetDefault("dispatch.cache_size", DefaultDispatch.CacheSize)
	v.SetDefault("dispatch.cache_ttl_minutes", DefaultDispatch.CacheTTLMinutes)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Params maps the loaded configuration onto the pipeline tunables relative
// to now.
func (c *Config) Params(now time.Time) dispatch.Params {
	return dispatch.Params{
		DailyGoal:           c.Goals.DailyEarnings,
		BreakCeilingMinutes: c.Thresholds.BreakCeilingHours * 60,
		ScoreWindowDays:     c.Thresholds.ScoreWindowDays,
		Insights: analyzer.InsightParams{
			Now:                     now,
			PeakWindowHours:         c.Thresholds.PeakWindowHours,
			TrendWindowDays:         c.Thresholds.TrendWindowDays,
			TrendMinSessions:        c.Thresholds.TrendMinSessions,
			TrendThresholdPercent:   c.Thresholds.TrendThresholdPercent,
			AnomalyBaselineDays:     c.Thresholds.AnomalyBaselineDays,
			AnomalyMinBaselineDays:  c.Thresholds.AnomalyMinBaselineDays,
			AnomalyThresholdPercent: c.Thresholds.AnomalyThresholdPercent,
		},
	}
}

// Dispatcher builds a dispatcher from the configured dispatch settings.
func (c *Config) Dispatcher() *dispatch.Dispatcher {
	return dispatch.New(
		dispatch.WithSyncThreshold(c.Dispatch.SyncThreshold),
		dispatch.WithCache(c.Dispatch.CacheSize, time.Duration(c.Dispatch.CacheTTLMinutes)*time.Minute),
	)
}

// DBPath returns the full path to the SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
