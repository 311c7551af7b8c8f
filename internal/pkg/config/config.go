package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,            default=8080"`
	Env           string `env:"ENV,             default=development"`
	JWTSecret     string `env:"JWT_SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS, default=168"`
	LogLevel      string `env:"LOG_LEVEL,       default=info"`

	SeedMemberPassword string `env:"SEED_MEMBER_PASSWORD, default=gevp"`
	SeedStaffPassword  string `env:"SEED_STAFF_PASSWORD,  default=fisico"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gevp"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ThrottleConfig struct {
	LoginLimit  int `env:"LOGIN_ATTEMPT_LIMIT,      default=10"`
	WindowSecs  int `env:"LOGIN_ATTEMPT_WINDOW_SEC, default=60"`
}

// AllowedOrigins returns the CORS origins for the running environment. The
// frontend is served from Vercel in production and from Vite/CRA dev servers
// locally; both need credentialed requests for the session cookie.
func (c *Config) AllowedOrigins() []string {
	if c.Env == "production" {
		return []string{"https://gevp-front.vercel.app"}
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
