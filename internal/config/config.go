package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Auth credential policies. PolicyToken issues signed 1-hour JWTs;
// PolicySharedSecret compares against a static pre-shared value and exists
// only for compatibility with legacy deployments.
const (
	PolicyToken        = "token"
	PolicySharedSecret = "shared-secret"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Mail      MailConfig      `mapstructure:"mail"`
	Site      SiteConfig      `mapstructure:"site"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig holds login and credential configuration
type AuthConfig struct {
	// Policy selects how credentials are issued and checked:
	// "token" (signed JWT, default) or "shared-secret" (legacy).
	Policy string `mapstructure:"policy"`
	// SigningSecret signs access tokens under the token policy.
	SigningSecret string `mapstructure:"signing_secret"`
	// TokenTTL is the access token lifetime under the token policy.
	TokenTTL time.Duration `mapstructure:"token_ttl"`
	// SharedToken is the static credential under the shared-secret policy.
	SharedToken string `mapstructure:"shared_token"`
	// Issuer is the JWT issuer claim.
	Issuer string `mapstructure:"issuer"`
}

// MailConfig holds Gmail API and broadcast configuration
type MailConfig struct {
	// ClientID / ClientSecret / RedirectURL identify the OAuth2 client.
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	// RefreshToken is the long-lived credential exchanged for access
	// tokens, one exchange per send session.
	RefreshToken string `mapstructure:"refresh_token"`
	// OwnerEmail receives contact and meeting notifications and is the
	// sending address for broadcasts.
	OwnerEmail string `mapstructure:"owner_email"`
	// SenderName is the display name on outgoing mail.
	SenderName string `mapstructure:"sender_name"`
	// BroadcastConcurrency bounds the parallel sends during a broadcast.
	BroadcastConcurrency int `mapstructure:"broadcast_concurrency"`
	// BroadcastTimeout bounds the total duration of a broadcast.
	BroadcastTimeout time.Duration `mapstructure:"broadcast_timeout"`
}

// SiteConfig holds public-facing URL configuration
type SiteConfig struct {
	// PublicBaseURL is the base URL used to build unsubscribe links.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/growwitup")

	setDefaults(v)

	// Config file is optional, env vars cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("GROWWITUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Auth.Policy {
	case PolicyToken:
		if c.Auth.SigningSecret == "" {
			return fmt.Errorf("auth.signing_secret is required under the token policy")
		}
	case PolicySharedSecret:
		if c.Auth.SharedToken == "" {
			return fmt.Errorf("auth.shared_token is required under the shared-secret policy")
		}
	default:
		return fmt.Errorf("unknown auth.policy %q", c.Auth.Policy)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "growwitup")
	v.SetDefault("database.user", "growwitup")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 25)

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Auth defaults
	v.SetDefault("auth.policy", PolicyToken)
	v.SetDefault("auth.token_ttl", "1h")
	v.SetDefault("auth.issuer", "growwitup")

	// Mail defaults
	v.SetDefault("mail.sender_name", "Growwitup Agency")
	v.SetDefault("mail.broadcast_concurrency", 4)
	v.SetDefault("mail.broadcast_timeout", "5m")

	// Site defaults
	v.SetDefault("site.public_base_url", "http://localhost:3000")

	// Rate limiting defaults
	v.SetDefault("rate_limit.enabled", true)
}
