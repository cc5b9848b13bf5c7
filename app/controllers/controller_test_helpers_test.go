package controllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/codevine/trainhub/app/models"
	"github.com/codevine/trainhub/app/repository"
	"github.com/codevine/trainhub/internal/pkg/config"
	"github.com/codevine/trainhub/internal/pkg/database"
	"github.com/codevine/trainhub/internal/pkg/revalidate"
)

// memoryInvalidator stands in for the redis-backed page cache in tests.
type memoryInvalidator struct {
	invalidated [][]string
	err         error
}

func (m *memoryInvalidator) Invalidate(paths ...string) error {
	if m.err != nil {
		return m.err
	}
	m.invalidated = append(m.invalidated, paths)
	return nil
}

// setupTest wires an in-memory database and an in-memory invalidator behind
// the controllers. Returns the invalidator for assertions.
func setupTest(t *testing.T) *memoryInvalidator {
	t.Helper()

	// One shared in-memory database per test; a plain :memory: DSN would give
	// every pooled connection its own database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TrainingEvent{},
		&models.Registration{},
		&models.ClickEvent{},
		&models.PaymentTransaction{},
	))

	database.SetDB(db)
	repository.InitializeFactory(db)

	InitializeControllers(&config.AppConfig{
		BaseURL:     "http://localhost:4000",
		Environment: "test",
		Version:     "test",
	})

	inv := &memoryInvalidator{}
	SetDispatcher(revalidate.NewDispatcher(inv))
	return inv
}
