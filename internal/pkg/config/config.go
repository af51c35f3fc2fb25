package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend identifiers for the pluggable stores.
const (
	BackendFile  = "file"
	BackendMongo = "mongo"
	BackendRedis = "redis"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// AllowedOrigins restricts CORS. Deliberately not a wildcard default.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:5173,http://localhost:3000"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type StoreConfig struct {
	// DataDir holds users.json, roles.json, and activity_logs.json.
	DataDir string `env:"DATA_DIR, default=./data"`
	// UserBackend selects the credential store: file or mongo.
	UserBackend string `env:"USER_BACKEND, default=file"`
	// ActivityBackend selects the activity log store: file, redis, or mongo.
	ActivityBackend string `env:"ACTIVITY_BACKEND, default=file"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=rbac_demo"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// UsersFile returns the path of the JSON user store.
func (s StoreConfig) UsersFile() string { return filepath.Join(s.DataDir, "users.json") }

// RolesFile returns the path of the role→permission mapping.
func (s StoreConfig) RolesFile() string { return filepath.Join(s.DataDir, "roles.json") }

// ActivityFile returns the path of the JSON activity log.
func (s StoreConfig) ActivityFile() string { return filepath.Join(s.DataDir, "activity_logs.json") }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
