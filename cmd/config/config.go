package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Mail        MailConfig
	Order       OrderConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	GRPCPort     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     time.Duration
	SessionExpTime    time.Duration
	InternalAPIKey    string
	BootstrapName     string
	BootstrapEmail    string
	BootstrapPhone    string
	BootstrapPassword string
}

// MailConfig configures the Resend notification sink. An empty NotifyEmail disables sending.
type MailConfig struct {
	APIKey        string
	APIURL        string
	FromEmail     string
	NotifyEmail   string
	PublicBaseURL string
	Timeout       time.Duration
}

type OrderConfig struct {
	NotificationTimeout time.Duration
	IdempotencyTTL      time.Duration
	CartTTL             time.Duration
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	// TrustedProxies lists proxy CIDRs whose X-Forwarded-For is honoured.
	TrustedProxies []string
}

// Load reads configuration from the environment, loading a .env file first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			GRPCPort:     getEnv("GRPC_PORT", ""),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "storefront"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:     getEnvDuration("JWT_EXPIRATION", 12*time.Hour),
			SessionExpTime:    getEnvDuration("SESSION_EXPIRATION", 12*time.Hour),
			InternalAPIKey:    getEnv("INTERNAL_API_KEY", ""),
			BootstrapName:     getEnv("ADMIN_BOOTSTRAP_NAME", "Store Admin"),
			BootstrapEmail:    getEnv("ADMIN_BOOTSTRAP_EMAIL", ""),
			BootstrapPhone:    getEnv("ADMIN_BOOTSTRAP_PHONE", ""),
			BootstrapPassword: getEnv("ADMIN_BOOTSTRAP_PASSWORD", ""),
		},
		Mail: MailConfig{
			APIKey:        getEnv("RESEND_API_KEY", ""),
			APIURL:        getEnv("RESEND_API_URL", "https://api.resend.com/emails"),
			FromEmail:     getEnv("FROM_EMAIL", "orders@resend.dev"),
			NotifyEmail:   getEnv("NOTIFY_EMAIL", ""),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
			Timeout:       getEnvDuration("MAIL_TIMEOUT", 10*time.Second),
		},
		Order: OrderConfig{
			NotificationTimeout: getEnvDuration("ORDER_NOTIFICATION_TIMEOUT", 8*time.Second),
			IdempotencyTTL:      getEnvDuration("ORDER_IDEMPOTENCY_TTL", 24*time.Hour),
			CartTTL:             getEnvDuration("CART_TTL", 30*24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Requests:       getEnvInt("RATE_LIMIT_REQUESTS", 10),
			Window:         getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		},
	}
}

// GetDSN builds the MySQL DSN; parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnvDuration accepts Go duration strings ("30s", "12h").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
