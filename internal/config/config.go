package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Admin    *AdminConfig    `mapstructure:"admin"`
	Session  *SessionConfig  `mapstructure:"session"`
	Redis    *RedisConfig    `mapstructure:"redis"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	WatchConfig        bool     `mapstructure:"watch_config"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AdminConfig holds the single shared back-office credential.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SessionConfig struct {
	SigningKey   string        `mapstructure:"signing_key"`
	CookieName   string        `mapstructure:"cookie_name"`
	TTL          time.Duration `mapstructure:"ttl"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
	CSRFKey      string        `mapstructure:"csrf_key"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DSN builds a libpq style connection string.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, sslMode)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("session.cookie_name", "admin_session")
	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows about.
	_ = v.BindEnv("admin.username", "ADMIN_USERNAME")
	_ = v.BindEnv("admin.password", "ADMIN_PASSWORD")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("session.signing_key", "SESSION_SIGNING_KEY")
	_ = v.BindEnv("session.csrf_key", "SESSION_CSRF_KEY")

	return v
}

// MinKeyLength is the shortest accepted session or CSRF key, in bytes.
const MinKeyLength = 32

var (
	ErrKeyMissing     = errors.New("key is required")
	ErrKeyPlaceholder = errors.New("key is a placeholder value")
	ErrKeyTooShort    = errors.New("key is too short")
)

// placeholderKeys are sample values that must never sign anything.
var placeholderKeys = []string{
	"change-me",
	"change-me-too",
	"change-me-in-production",
	"changeme",
	"secret",
}

func checkKey(name, key string) error {
	if key == "" {
		return fmt.Errorf("%s: %w", name, ErrKeyMissing)
	}
	for _, p := range placeholderKeys {
		if strings.EqualFold(key, p) {
			return fmt.Errorf("%s: %w", name, ErrKeyPlaceholder)
		}
	}
	if len(key) < MinKeyLength {
		return fmt.Errorf("%s must be at least %d bytes: %w", name, MinKeyLength, ErrKeyTooShort)
	}

	return nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := checkKey("session.signing_key", conf.Session.SigningKey); err != nil {
		return nil, err
	}
	if conf.Session.CSRFKey != "" {
		if err := checkKey("session.csrf_key", conf.Session.CSRFKey); err != nil {
			return nil, err
		}
	}

	return conf, nil
}

func Load(path string) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return decode(v)
}

// Watch loads the config at path and calls onChange with the freshly decoded
// config every time the file is written. Decoding failures are passed to onErr
// and the previous config stays in effect.
func Watch(path string, onChange func(*AppConfig), onErr func(error)) (*AppConfig, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		updated, err := decode(v)
		if err != nil {
			onErr(fmt.Errorf("reload %s -> %w", e.Name, err))
			return
		}

		onChange(updated)
	})
	v.WatchConfig()

	return conf, nil
}
