package config

import "time"

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Security SecurityConfig `json:"security"`
	AI       AIConfig       `json:"ai"`
	Mail     MailConfig     `json:"mail"`
	Telegram TelegramConfig `json:"telegram"`
	Logging  LoggingConfig  `json:"logging"`
	Jobs     JobsConfig     `json:"jobs"`
	Planner  PlannerConfig  `json:"planner"`
}

type ServerConfig struct {
	Port           int      `json:"port" default:"8080"`
	Mode           string   `json:"mode" default:"debug"` // gin mode: debug, release, test
	AllowedOrigins []string `json:"allowed_origins"`
	GracefulStop   int      `json:"graceful_stop" default:"15"` // seconds
}

type DatabaseConfig struct {
	Driver string `json:"driver" default:"memory"` // memory, postgres, sqlite
	DSN    string `json:"dsn"`
	Seed   bool   `json:"seed" default:"true"`

	MaxOpenConns    int `json:"max_open_conns" default:"25"`
	MaxIdleConns    int `json:"max_idle_conns" default:"5"`
	ConnMaxLifetime int `json:"conn_max_lifetime" default:"300"` // seconds
}

type RedisConfig struct {
	Addr     string `json:"addr"` // empty disables redis
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type SecurityConfig struct {
	JWTSecret       string `json:"jwt_secret"`
	JWTExpirationMn int    `json:"jwt_expiration_minutes" default:"60"`

	// DemoAuth exposes the passwordless lookup-or-create login. Never enable in production.
	DemoAuth bool `json:"demo_auth" default:"false"`

	SeedAdminPassword string `json:"-"`

	RateLimitEnabled   bool `json:"rate_limit_enabled" default:"true"`
	RateLimitPerMinute int  `json:"rate_limit_per_minute" default:"30"`
	RateLimitBurstSize int  `json:"rate_limit_burst_size" default:"5"`
}

type AIConfig struct {
	Provider string `json:"provider" default:"gemini"` // gemini, openai

	GeminiAPIKey string `json:"-"`
	GeminiModel  string `json:"gemini_model" default:"gemini-1.5-flash"`

	OpenAIAPIKey  string `json:"-"`
	OpenAIModel   string `json:"openai_model" default:"gpt-4o-mini"`
	OpenAIBaseURL string `json:"openai_base_url"`

	Temperature float32 `json:"temperature" default:"0.7"`
	TopK        int32   `json:"top_k" default:"40"`
	TopP        float32 `json:"top_p" default:"0.95"`

	EmbeddingProvider string `json:"embedding_provider" default:"hash"` // hash, openai
	EmbeddingModel    string `json:"embedding_model" default:"text-embedding-3-small"`
}

type MailConfig struct {
	Host       string `json:"host"` // empty disables outgoing mail
	Port       int    `json:"port" default:"587"`
	Username   string `json:"username"`
	Password   string `json:"-"`
	From       string `json:"from"`
	FromName   string `json:"from_name" default:"Wildlife Safari Rwanda"`
	AppBaseURL string `json:"app_base_url"`
}

type TelegramConfig struct {
	BotToken    string `json:"-"`
	AdminChatID int64  `json:"admin_chat_id"`
}

type LoggingConfig struct {
	Level      string `json:"level" default:"info"`
	Format     string `json:"format" default:"json"`   // json, text
	Output     string `json:"output" default:"stdout"` // stdout, file
	FilePath   string `json:"file_path" default:"logs/wildsafari.log"`
	MaxSize    int    `json:"max_size" default:"100"` // megabytes
	MaxBackups int    `json:"max_backups" default:"3"`
	MaxAge     int    `json:"max_age" default:"28"` // days
	Compress   bool   `json:"compress" default:"true"`
}

type JobsConfig struct {
	ManifestDir          string `json:"manifest_dir"` // empty disables the daily manifest
	ManifestSchedule     string `json:"manifest_schedule" default:"0 6 * * *"`
	SessionPurgeSchedule string `json:"session_purge_schedule" default:"@every 10m"`
}

type PlannerConfig struct {
	SessionTTL time.Duration `json:"session_ttl" default:"2h"`
}
