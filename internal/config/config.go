package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Providers     ProvidersConfig     `yaml:"providers"`
	Recognition   RecognitionConfig   `yaml:"recognition"`
	Pronunciation PronunciationConfig `yaml:"pronunciation"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes bounds request bodies; identify payloads carry a base64 image.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"16777216"`
}

// DatabaseConfig holds vocabulary store connection settings.
// Driver selects the adapter: "postgres" (pgx pool) or "sqlite" (go-sqlite3).
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds bearer token verification settings. Tokens are issued by
// the external identity provider and signed with its shared HS256 secret.
type AuthConfig struct {
	JWTSecret    string `yaml:"jwt_secret"    env:"AUTH_JWT_SECRET"`
	JWTIssuer    string `yaml:"jwt_issuer"    env:"AUTH_JWT_ISSUER"`
	JWTAudience  string `yaml:"jwt_audience"  env:"AUTH_JWT_AUDIENCE"  env-default:"authenticated"`
	RequireToken bool   `yaml:"require_token" env:"AUTH_REQUIRE_TOKEN" env-default:"false"`
}

// ProvidersConfig holds credentials and resilience settings shared by the model providers.
type ProvidersConfig struct {
	GeminiAPIKey       string        `yaml:"gemini_api_key"       env:"GEMINI_API_KEY"`
	OpenAIAPIKey       string        `yaml:"openai_api_key"       env:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `yaml:"openai_base_url"      env:"OPENAI_BASE_URL"`
	RequestTimeout     time.Duration `yaml:"request_timeout"      env:"PROVIDER_REQUEST_TIMEOUT"      env-default:"45s"`
	BreakerMaxFailures uint32        `yaml:"breaker_max_failures" env:"PROVIDER_BREAKER_MAX_FAILURES" env-default:"5"`
	BreakerOpenTimeout time.Duration `yaml:"breaker_open_timeout" env:"PROVIDER_BREAKER_OPEN_TIMEOUT" env-default:"30s"`
}

// RecognitionConfig holds object identification settings.
type RecognitionConfig struct {
	Provider      string `yaml:"provider"        env:"RECOGNITION_PROVIDER"        env-default:"gemini"`
	Fallback      string `yaml:"fallback"        env:"RECOGNITION_FALLBACK"`
	GeminiModel   string `yaml:"gemini_model"    env:"RECOGNITION_GEMINI_MODEL"    env-default:"gemini-2.5-flash"`
	OpenAIModel   string `yaml:"openai_model"    env:"RECOGNITION_OPENAI_MODEL"    env-default:"gpt-4o-mini"`
	MaxImageBytes int    `yaml:"max_image_bytes" env:"RECOGNITION_MAX_IMAGE_BYTES" env-default:"10485760"`
}

// PronunciationConfig holds speech synthesis settings.
type PronunciationConfig struct {
	Provider    string        `yaml:"provider"     env:"PRONUNCIATION_PROVIDER"     env-default:"gemini"`
	Fallback    string        `yaml:"fallback"     env:"PRONUNCIATION_FALLBACK"`
	GeminiModel string        `yaml:"gemini_model" env:"PRONUNCIATION_GEMINI_MODEL" env-default:"gemini-2.5-flash-preview-tts"`
	OpenAIModel string        `yaml:"openai_model" env:"PRONUNCIATION_OPENAI_MODEL" env-default:"gpt-4o-mini-tts"`
	OpenAIVoice string        `yaml:"openai_voice" env:"PRONUNCIATION_OPENAI_VOICE" env-default:"alloy"`
	CacheSize   int           `yaml:"cache_size"   env:"PRONUNCIATION_CACHE_SIZE"   env-default:"512"`
	CacheTTL    time.Duration `yaml:"cache_ttl"    env:"PRONUNCIATION_CACHE_TTL"    env-default:"24h"`
	BatchWait   time.Duration `yaml:"batch_wait"   env:"PRONUNCIATION_BATCH_WAIT"   env-default:"5ms"`
}

// RateLimitConfig holds per-IP limits for the model-backed endpoints.
type RateLimitConfig struct {
	IdentifyPerMinute      int           `yaml:"identify_per_minute"      env:"RATE_LIMIT_IDENTIFY"         env-default:"20"`
	PronunciationPerMinute int           `yaml:"pronunciation_per_minute" env:"RATE_LIMIT_PRONUNCIATION"    env-default:"60"`
	CleanupInterval        time.Duration `yaml:"cleanup_interval"         env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TokenVerificationEnabled reports whether bearer tokens can be verified.
func (c AuthConfig) TokenVerificationEnabled() bool {
	return c.JWTSecret != ""
}
