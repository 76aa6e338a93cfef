package storage

import (
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservation/models"
)

// exercise runs the same save/load cycle against any backend.
func exercise(t *testing.T, backend Backend, name string) {
	t.Helper()
	customers := NewCollection[models.Customer](backend, name)

	want := []models.Customer{models.NewCustomer("C1", "Jane", "jane@x.com", "555")}
	if err := customers.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := customers.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := customers.Save([]models.Customer{}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = customers.Load()
	if len(got) != 0 {
		t.Fatalf("expected overwrite to empty the collection, got %+v", got)
	}
}

func TestGormBackend(t *testing.T) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if testing.Short() || dsn == "" {
		t.Skip("set TEST_MYSQL_DSN to run against MySQL")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	backend, err := NewGormBackend(db)
	if err != nil {
		t.Fatalf("backend: %v", err)
	}

	exercise(t, backend, "test_customers")
	db.Where("name = ?", "test_customers").Delete(&models.CollectionDocument{})
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if testing.Short() || addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run against Redis")
	}
	backend, err := NewRedisBackend(NewRedisClient(RedisOptions{Address: addr}), "hotel-reservation-test:")
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	defer backend.Close()

	exercise(t, backend, "customers")

	ctx, cancel := backend.context()
	defer cancel()
	backend.Client.Del(ctx, backend.key("customers"))
}

func TestRedisBackendMissingKeyIsEmpty(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if testing.Short() || addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run against Redis")
	}
	backend, err := NewRedisBackend(NewRedisClient(RedisOptions{Address: addr}), "hotel-reservation-test-missing:")
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	defer backend.Close()

	data, err := backend.Load("nothing-here")
	if err != nil || data != nil {
		t.Fatalf("expected (nil, nil), got (%q, %v)", data, err)
	}
}
