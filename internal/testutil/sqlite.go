package testutil

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sipradi/pvbu/core"
)

// Migrate creates every table the access layer reads or writes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&core.Resource{},
		&core.ResourceAction{},
		&core.ActionCondition{},
		&core.AccessPolicy{},
		&core.AccessRule{},
		&core.Owner{},
		&core.Driver{},
		&core.Passenger{},
	)
}

// CreateSQLite opens a private in-memory database with the schema applied.
// It is the default backend for repository tests; CreateDB is used when PVBU_DOCKER_TEST is set.
func CreateSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open sqlite: %s", err)
	}

	err = Migrate(db)
	if err != nil {
		t.Fatalf("could not migrate sqlite: %s", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql.DB: %s", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// OpenDB returns a postgres container database when PVBU_DOCKER_TEST is set and sqlite otherwise
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	if os.Getenv("PVBU_DOCKER_TEST") == "" {
		return CreateSQLite(t)
	}

	log.Printf("using postgres container for %s", t.Name())
	db, cleanup := CreateDB()
	t.Cleanup(cleanup)
	return db
}

// NewPrincipal builds an account row with a random id
func NewPrincipal(email string, policyID *uint) core.Principal {
	return core.Principal{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: email,
		PolicyID:    policyID,
	}
}
