package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		setDefaults()

		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			if err = viper.MergeInConfig(); err != nil {
				GetLogger().Errorw("Error merging test config file", "error", err)
			}
		}
	})
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_header_timeout", "15s")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.idle_timeout", "30s")
	viper.SetDefault("weatherapi.api_url", "https://api.weatherapi.com/v1/forecast.json")
	viper.SetDefault("weatherapi.days", 7)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("storage.driver", "redis")
	viper.SetDefault("storage.sqlite_path", "weather_widget.db")
	viper.SetDefault("storage.key", "savedLocation")
	viper.SetDefault("session.cookie_name", "widget_session")
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetWeatherApiUrl() string {
	initConfig()
	return viper.GetString("weatherapi.api_url")
}

// GetWeatherApiKey reads the WeatherAPI key from the environment, loading .env first.
func GetWeatherApiKey() string {
	_ = godotenv.Load()
	return os.Getenv("WEATHERAPI_API_KEY")
}

// GetForecastDays returns the forecast window requested from the provider. Defaults to 7.
func GetForecastDays() int {
	initConfig()
	days := viper.GetInt("weatherapi.days")
	if days <= 0 {
		return 7
	}
	return days
}

func GetRedisAddr() string {
	initConfig()
	return viper.GetString("redis.addr")
}

func GetServerPort() string {
	initConfig()
	return viper.GetString("server.port")
}

// GetServerTimeout returns the named server timeout, e.g. "read_header_timeout".
func GetServerTimeout(key string) time.Duration {
	initConfig()
	dur, err := time.ParseDuration(viper.GetString("server." + key))
	if err != nil {
		return 15 * time.Second
	}
	return dur
}

// GetStorageDriver returns the session store backend: "redis" or "sqlite".
func GetStorageDriver() string {
	initConfig()
	return viper.GetString("storage.driver")
}

func GetSQLitePath() string {
	initConfig()
	return viper.GetString("storage.sqlite_path")
}

// GetStorageKey returns the fixed name the last searched location is stored under.
func GetStorageKey() string {
	initConfig()
	return viper.GetString("storage.key")
}

func GetSessionCookieName() string {
	initConfig()
	return viper.GetString("session.cookie_name")
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
