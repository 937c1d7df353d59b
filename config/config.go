package config

import (
	"time"

	"notebuddy/utils"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port         string
	MaxBodyBytes int64
	CacheMaxAge  string
}

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// AdminConfig holds the static admin credentials. The token is a shared
// secret with no expiry; see DESIGN.md for the trust boundary caveats.
type AdminConfig struct {
	Username string
	Password string
	Token    string
}

// Load reads the configuration from the environment. Every setting has a
// fixed default so the server can start with nothing set.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:         utils.GetEnvAsString("PORT", "8000"),
			MaxBodyBytes: utils.GetEnvAsInt64("MAX_BODY_BYTES", 1<<20),
			CacheMaxAge:  utils.GetEnvAsString("CACHE_MAX_AGE", "60"),
		},
		Database: DatabaseConfig{
			URI:             utils.GetEnvAsString("DATABASE_URL", "mongodb://localhost:27017"),
			DatabaseName:    utils.GetEnvAsString("DATABASE_NAME", "notebuddy"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
		},
		Admin: AdminConfig{
			Username: utils.GetEnvAsString("ADMIN_USER", "buddy"),
			Password: utils.GetEnvAsString("ADMIN_PASS", "buddy_mukesh123@"),
			Token:    utils.GetEnvAsString("ADMIN_TOKEN", "admin-token"),
		},
	}
}
