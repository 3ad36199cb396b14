package data

import (
	"context"
	"strings"
	"testing"
)

// Mock driver for testing
type mockDatabaseDriver struct {
	name string
}

func (d *mockDatabaseDriver) Name() string    { return d.name }
func (d *mockDatabaseDriver) Dialect() string { return "sqlite3" }
func (d *mockDatabaseDriver) Connect(ctx context.Context, cfg any) (any, error) {
	return "mock-connection", nil
}
func (d *mockDatabaseDriver) Close(conn any) error                     { return nil }
func (d *mockDatabaseDriver) Ping(ctx context.Context, conn any) error { return nil }

// withCleanRegistry empties the registries for the duration of the test.
func withCleanRegistry(t *testing.T) {
	t.Helper()

	databaseDriversMu.Lock()
	savedDB := databaseDrivers
	databaseDrivers = make(map[string]DatabaseDriver)
	databaseDriversMu.Unlock()

	cacheDriversMu.Lock()
	savedCache := cacheDrivers
	cacheDrivers = make(map[string]CacheDriver)
	cacheDriversMu.Unlock()

	t.Cleanup(func() {
		databaseDriversMu.Lock()
		databaseDrivers = savedDB
		databaseDriversMu.Unlock()

		cacheDriversMu.Lock()
		cacheDrivers = savedCache
		cacheDriversMu.Unlock()
	})
}

func TestRegisterDatabaseDriver(t *testing.T) {
	withCleanRegistry(t)

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "test-db"})

	retrieved, err := GetDatabaseDriver("test-db")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if retrieved.Name() != "test-db" {
		t.Errorf("expected driver name 'test-db', got %q", retrieved.Name())
	}
}

func TestRegisterDatabaseDriverPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering nil driver")
		}
	}()

	RegisterDatabaseDriver(nil)
}

func TestRegisterDatabaseDriverPanicsOnDuplicate(t *testing.T) {
	withCleanRegistry(t)

	driver := &mockDatabaseDriver{name: "duplicate"}
	RegisterDatabaseDriver(driver)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering duplicate driver")
		}
	}()

	RegisterDatabaseDriver(driver)
}

func TestGetDatabaseDriverNotFound(t *testing.T) {
	withCleanRegistry(t)
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "postgres"})

	_, err := GetDatabaseDriver("nonexistent")
	if err == nil {
		t.Fatal("expected error when getting non-existent driver")
	}

	msg := err.Error()
	if !strings.Contains(msg, "data/nonexistent") || !strings.Contains(msg, "postgres") {
		t.Errorf("error should name the import path and available drivers, got %q", msg)
	}
}

func TestListRegisteredDrivers(t *testing.T) {
	withCleanRegistry(t)

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "postgres"})
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mysql"})

	drivers := ListRegisteredDrivers()

	got := drivers["database"]
	if len(got) != 2 || got[0] != "mysql" || got[1] != "postgres" {
		t.Errorf("database drivers = %v, want [mysql postgres]", got)
	}
	if len(drivers["cache"]) != 0 {
		t.Errorf("cache drivers = %v, want none", drivers["cache"])
	}
}

func TestDriverConcurrentAccess(t *testing.T) {
	withCleanRegistry(t)

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "concurrent-test"})

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := GetDatabaseDriver("concurrent-test")
			if err != nil {
				t.Errorf("concurrent access failed: %v", err)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
