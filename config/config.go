package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Source   SourceConfig   `mapstructure:"source"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Relay    RelayConfig    `mapstructure:"relay"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the ops listener (health + metrics).
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KafkaConfig struct {
	Brokers []string      `mapstructure:"brokers"`
	Topic   string        `mapstructure:"topic"` // paid-invoice stream
	MaxWait time.Duration `mapstructure:"max_wait"`
}

// SourceConfig selects where paid-invoice events come from.
type SourceConfig struct {
	Driver string `mapstructure:"driver"` // redis, kafka
	Topic  string `mapstructure:"topic"`  // listener label registered with the host
}

type WebhookConfig struct {
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxResponseBytes int64         `mapstructure:"max_response_bytes"` // 0 stores bodies in full
}

// RelayConfig configures zap receipt publishing. PrivateKey is hex encoded.
type RelayConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	URL                string        `mapstructure:"url"`
	PrivateKey         string        `mapstructure:"private_key"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	DialTimeout        time.Duration `mapstructure:"dial_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: LNW_.
// Nested keys use underscore: LNW_DATABASE_HOST, LNW_RELAY_PRIVATE_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9102)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "lnbits")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "invoices.paid")
	v.SetDefault("kafka.max_wait", "500ms")
	v.SetDefault("source.driver", "redis")
	v.SetDefault("source.topic", "lnurlp")
	v.SetDefault("webhook.timeout", "40s")
	v.SetDefault("webhook.max_response_bytes", 0)
	v.SetDefault("relay.enabled", false)
	v.SetDefault("relay.url", "wss://localhost:5000/nostrclient/api/v1/relay")
	v.SetDefault("relay.private_key", "")
	v.SetDefault("relay.insecure_skip_verify", false)
	v.SetDefault("relay.dial_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LNW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("LNW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the consumer cannot start with.
func (c *Config) Validate() error {
	switch c.Source.Driver {
	case "redis", "kafka":
	default:
		return fmt.Errorf("unknown source driver %q", c.Source.Driver)
	}
	if c.Source.Topic == "" {
		return fmt.Errorf("source topic must not be empty")
	}
	if c.Webhook.Timeout <= 0 {
		return fmt.Errorf("webhook timeout must be positive")
	}
	if c.Relay.Enabled && c.Relay.PrivateKey == "" {
		return fmt.Errorf("relay enabled without a private key")
	}
	return nil
}
