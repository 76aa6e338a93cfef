package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gorm.io/gorm/logger"
)

// clearEnv blanks every variable Load reads so the host environment does not
// leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "STORAGE_BACKEND", "DATA_DIR",
		"MYSQL_URL", "DATABASE_URL", "DB_USER", "DB_PASS", "DB_HOST", "DB_PORT", "DB_NAME", "DB_LOG_LEVEL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_PREFIX", "REDIS_DB",
		"PORT", "API_KEY", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendFile || cfg.Storage.DataDir != "data" {
		t.Fatalf("unexpected storage config: %+v", cfg.Storage)
	}
	if cfg.HTTP.Port != "8080" || cfg.HTTP.APIKey != "" || len(cfg.HTTP.CorsOrigins) != 0 {
		t.Fatalf("unexpected http config: %+v", cfg.HTTP)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
storage:
  backend: redis
  data_dir: /var/lib/hotels
redis:
  address: cache:6379
  db: 2
http:
  port: "9000"
  cors_origins: ["https://a.example"]
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("CORS_ORIGINS", "https://b.example, https://c.example")
	t.Setenv("REDIS_DB", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != BackendRedis || cfg.Storage.DataDir != "/var/lib/hotels" {
		t.Fatalf("file values not applied: %+v", cfg.Storage)
	}
	if cfg.Redis.Address != "cache:6379" || cfg.Redis.DB != 5 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.HTTP.Port != "9100" {
		t.Fatalf("env should override file, got port %q", cfg.HTTP.Port)
	}
	if !slices.Equal(cfg.HTTP.CorsOrigins, []string{"https://b.example", "https://c.example"}) {
		t.Fatalf("unexpected origins: %v", cfg.HTTP.CorsOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown backend": {"STORAGE_BACKEND", "postgres"},
		"non numeric db":  {"REDIS_DB", "two"},
		"missing yaml":    {"CONFIG_FILE", "/does/not/exist.yaml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestResolveDSN(t *testing.T) {
	dsn, err := ResolveDSN(MySQLConfig{URL: "mysql://app:pw@db:3307/hotels"})
	if err != nil {
		t.Fatalf("ResolveDSN: %v", err)
	}
	if want := "app:pw@tcp(db:3307)/hotels?charset=utf8mb4&loc=Local&parseTime=True"; dsn != want {
		t.Fatalf("got %q, want %q", dsn, want)
	}

	dsn, err = ResolveDSN(defaults().MySQL)
	if err != nil {
		t.Fatalf("ResolveDSN: %v", err)
	}
	if want := "root:@tcp(127.0.0.1:3306)/hotel_db?charset=utf8mb4&parseTime=True&loc=Local"; dsn != want {
		t.Fatalf("got %q, want %q", dsn, want)
	}

	if _, err := ResolveDSN(MySQLConfig{URL: "mysql://app:pw@db/"}); err == nil {
		t.Fatal("expected an error for a url without database")
	}
	if _, err := ResolveDSN(MySQLConfig{URL: "not a dsn"}); err == nil {
		t.Fatal("expected an error for an invalid dsn")
	}
}

func TestGormLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		" info ": logger.Info,
		"":       logger.Warn,
	}
	for in, want := range cases {
		if got := gormLogLevel(in); got != want {
			t.Errorf("gormLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
