package config

import "time"

// Config is a snapshot of every setting the widget needs. Constructors take
// it (or a part of it) explicitly instead of calling the getters themselves.
type Config struct {
	WeatherAPI WeatherAPIConfig
	Server     ServerConfig
	Storage    StorageConfig
	Session    SessionConfig
}

type WeatherAPIConfig struct {
	URL    string
	APIKey string
	Days   int
}

type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

type StorageConfig struct {
	Driver     string
	RedisAddr  string
	SQLitePath string
	Key        string
}

type SessionConfig struct {
	CookieName string
}

// Load assembles a Config from config.yaml, config_test.yaml (under go test) and the environment.
func Load() Config {
	return Config{
		WeatherAPI: WeatherAPIConfig{
			URL:    GetWeatherApiUrl(),
			APIKey: GetWeatherApiKey(),
			Days:   GetForecastDays(),
		},
		Server: ServerConfig{
			Port:              GetServerPort(),
			ReadHeaderTimeout: GetServerTimeout("read_header_timeout"),
			ReadTimeout:       GetServerTimeout("read_timeout"),
			WriteTimeout:      GetServerTimeout("write_timeout"),
			IdleTimeout:       GetServerTimeout("idle_timeout"),
		},
		Storage: StorageConfig{
			Driver:     GetStorageDriver(),
			RedisAddr:  GetRedisAddr(),
			SQLitePath: GetSQLitePath(),
			Key:        GetStorageKey(),
		},
		Session: SessionConfig{
			CookieName: GetSessionCookieName(),
		},
	}
}
