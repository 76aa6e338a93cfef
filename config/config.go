package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"hotel-reservation/utils"
)

const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
	BackendRedis = "redis"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	MySQL   MySQLConfig   `yaml:"mysql"`
	Redis   RedisConfig   `yaml:"redis"`
	HTTP    HTTPConfig    `yaml:"http"`
}

type AppConfig struct {
	Name string `yaml:"name"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

type MySQLConfig struct {
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type HTTPConfig struct {
	Port        string   `yaml:"port"`
	CorsOrigins []string `yaml:"cors_origins"`
	APIKey      string   `yaml:"api_key"`
}

func defaults() Config {
	return Config{
		App:     AppConfig{Name: "hotel-reservation"},
		Storage: StorageConfig{Backend: BackendFile, DataDir: "data"},
		MySQL: MySQLConfig{
			User:     "root",
			Host:     "127.0.0.1",
			Port:     "3306",
			Name:     "hotel_db",
			LogLevel: "warn",
		},
		Redis: RedisConfig{Address: "127.0.0.1:6379", Prefix: "hotel-reservation:"},
		HTTP:  HTTPConfig{Port: "8080"},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and finally environment variables (a .env file is read first
// when present).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Storage.Backend = strings.ToLower(utils.EnvOrDefault("STORAGE_BACKEND", c.Storage.Backend))
	c.Storage.DataDir = utils.EnvOrDefault("DATA_DIR", c.Storage.DataDir)

	c.MySQL.URL = utils.EnvOrDefault("MYSQL_URL", utils.EnvOrDefault("DATABASE_URL", c.MySQL.URL))
	c.MySQL.User = utils.EnvOrDefault("DB_USER", c.MySQL.User)
	c.MySQL.Password = utils.EnvOrDefault("DB_PASS", c.MySQL.Password)
	c.MySQL.Host = utils.EnvOrDefault("DB_HOST", c.MySQL.Host)
	c.MySQL.Port = utils.EnvOrDefault("DB_PORT", c.MySQL.Port)
	c.MySQL.Name = utils.EnvOrDefault("DB_NAME", c.MySQL.Name)
	c.MySQL.LogLevel = utils.EnvOrDefault("DB_LOG_LEVEL", c.MySQL.LogLevel)

	c.Redis.Address = utils.EnvOrDefault("REDIS_ADDR", c.Redis.Address)
	c.Redis.Password = utils.EnvOrDefault("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.Prefix = utils.EnvOrDefault("REDIS_PREFIX", c.Redis.Prefix)
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("REDIS_DB must be a number: %w", err)
		}
		c.Redis.DB = db
	}

	c.HTTP.Port = utils.EnvOrDefault("PORT", c.HTTP.Port)
	c.HTTP.APIKey = utils.EnvOrDefault("API_KEY", c.HTTP.APIKey)
	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		c.HTTP.CorsOrigins = utils.SplitList(raw)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("storage data_dir is empty")
		}
	case BackendMySQL, BackendRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
