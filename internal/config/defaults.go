// Package config provides configuration loading and defaults for worklens.
package config

// DefaultConfigDir is the default location for worklens configuration.
const DefaultConfigDir = "~/.config/worklens"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "worklens.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultGoals holds the default daily targets.
var DefaultGoals = Goals{
	DailyEarnings: 400,
	DailyHours:    8,
}

// DefaultThresholds holds the default analyzer tunables.
var DefaultThresholds = Thresholds{
	TrendWindowDays:         30,
	TrendMinSessions:        10,
	TrendThresholdPercent:   5,
	AnomalyBaselineDays:     30,
	AnomalyMinBaselineDays:  5,
	AnomalyThresholdPercent: 40,
	PeakWindowHours:         3,
	BreakCeilingHours:       12,
	ScoreWindowDays:         30,
}

// DefaultDispatch holds the default computation dispatch settings.
var DefaultDispatch = Dispatch{
	SyncThreshold:   500,
	CacheSize:       64,
	CacheTTLMinutes: 5,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
