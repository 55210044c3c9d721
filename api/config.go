package api

import (
	"sync"
	"time"

	"github.com/alex-pricope/feedback-arcade/logging"
	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverDynamo = "dynamodb"
)

type Config struct {
	StorageConfig
	ServerConfig
	GameConfig
	FormConfig
	SessionConfig
	LogLevel string
}

type StorageConfig struct {
	Driver              string
	TableNameBestScores string
	Endpoint            string
	SQLitePath          string
}

type ServerConfig struct {
	Port    int
	GinMode string
}

type GameConfig struct {
	MismatchDelay time.Duration
	TickInterval  time.Duration
}

type FormConfig struct {
	PopupDuration time.Duration
}

// SessionConfig controls how long unused form and game sessions live.
type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

var settingsOnce sync.Once

func ReadConfig() *Config {
	var conf = &Config{
		StorageConfig: StorageConfig{
			Driver:              getStringOrDefault("storage.driver", DriverMemory),
			TableNameBestScores: getStringOrDefault("storage.TableNameBestScores", "BestScores"),
			Endpoint:            getStringOrDefault("storage.endpoint", ""),
			SQLitePath:          getStringOrDefault("storage.sqlitePath", "scores.db"),
		},
		ServerConfig: ServerConfig{
			Port:    getIntOrDefault("server.port", 8080),
			GinMode: getStringOrDefault("server.ginMode", "debug"),
		},
		GameConfig: GameConfig{
			MismatchDelay: getDurationOrDefault("game.mismatchDelay", 800*time.Millisecond),
			TickInterval:  getDurationOrDefault("game.tickInterval", time.Second),
		},
		FormConfig: FormConfig{
			PopupDuration: getDurationOrDefault("form.popupDuration", 2500*time.Millisecond),
		},
		SessionConfig: SessionConfig{
			IdleTimeout:   getDurationOrDefault("sessions.idleTimeout", 30*time.Minute),
			SweepInterval: getDurationOrDefault("sessions.sweepInterval", time.Minute),
		},
		LogLevel: getStringOrDefault("log.level", "debug"),
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getDurationOrDefault(name string, def time.Duration) time.Duration {
	if viper.IsSet(name) {
		v := viper.GetDuration(name)
		if v <= 0 {
			logging.Log.Warnf("'%s' must be positive, got %v! Returning default", name, v)
			return def
		}
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
