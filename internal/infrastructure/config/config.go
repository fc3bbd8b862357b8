package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie token. Required outside development.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`

	Mongo MongoConfig
	Redis RedisConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=barangay_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AdminConfig seeds the initial admin account when the user collection is
// empty, so a fresh deployment is reachable.
type AdminConfig struct {
	Email     string `env:"ADMIN_EMAIL"`
	Password  string `env:"ADMIN_PASSWORD"`
	FirstName string `env:"ADMIN_FIRST_NAME, default=System"`
	LastName  string `env:"ADMIN_LAST_NAME,  default=Administrator"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
