package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
		fmt.Println("Continuing with environment variables...")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", 8080),
			Mode:           getEnv("GIN_MODE", "debug"),
			AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			GracefulStop:   getEnvInt("SERVER_GRACEFUL_STOP", 15),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "memory")),
			DSN:             getEnv("DB_DSN", getEnv("POSTGRES_URL", "")),
			Seed:            getEnvBool("DB_SEED", true),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 300),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Security: SecurityConfig{
			JWTSecret:          getEnv("JWT_SECRET", ""),
			JWTExpirationMn:    getEnvInt("JWT_EXPIRATION_MINUTES", 60),
			DemoAuth:           getEnvBool("DEMO_AUTH", false),
			SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", ""),
			RateLimitEnabled:   getEnvBool("RATE_LIMIT_ENABLED", true),
			RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
			RateLimitBurstSize: getEnvInt("RATE_LIMIT_BURST_SIZE", 5),
		},
		AI: AIConfig{
			Provider:          strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
			GeminiAPIKey:      getEnv("API_KEY", getEnv("GEMINI_API_KEY", "")),
			GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature:       getEnvFloat32("AI_TEMPERATURE", 0.7),
			TopK:              int32(getEnvInt("AI_TOP_K", 40)),
			TopP:              getEnvFloat32("AI_TOP_P", 0.95),
			EmbeddingProvider: strings.ToLower(getEnv("EMBEDDING_PROVIDER", "hash")),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		},
		Mail: MailConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			From:       getEnv("SMTP_FROM", "no-reply@wildlifesafari.rw"),
			FromName:   getEnv("SMTP_FROM_NAME", "Wildlife Safari Rwanda"),
			AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:5173"),
		},
		Telegram: TelegramConfig{
			BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
			AdminChatID: int64(getEnvInt("TELEGRAM_ADMIN_CHAT_ID", 0)),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE_PATH", "logs/wildsafari.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Jobs: JobsConfig{
			ManifestDir:          getEnv("MANIFEST_DIR", ""),
			ManifestSchedule:     getEnv("MANIFEST_SCHEDULE", "0 6 * * *"),
			SessionPurgeSchedule: getEnv("SESSION_PURGE_SCHEDULE", "@every 10m"),
		},
		Planner: PlannerConfig{
			SessionTTL: getEnvDuration("PLANNER_SESSION_TTL", 2*time.Hour),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validateConfig checks required fields. Missing AI keys are not an error here:
// the planner reports them when it is used.
func validateConfig(config *Config) error {
	if config.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch config.Database.Driver {
	case "memory":
	case "postgres", "sqlite":
		if config.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for driver %q", config.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q: use memory, postgres or sqlite", config.Database.Driver)
	}

	switch config.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q: use gemini or openai", config.AI.Provider)
	}

	switch config.AI.EmbeddingProvider {
	case "hash", "openai":
	default:
		return fmt.Errorf("unsupported EMBEDDING_PROVIDER %q: use hash or openai", config.AI.EmbeddingProvider)
	}

	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func (c *ServerConfig) ServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// APIKey returns the key of the configured generation provider.
func (c *AIConfig) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(parsed)
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}
