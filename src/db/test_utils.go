package db

import (
	"fmt"
	"sync/atomic"

	"onboarding/src/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// CreateTestDB opens a private in-memory database with every table migrated.
func CreateTestDB() *gorm.DB {
	counter := atomic.AddInt64(&testDBCounter, 1)
	dbName := fmt.Sprintf("file:onboarding_test_%d?mode=memory&cache=shared", counter)

	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.All()...); err != nil {
		panic(err)
	}
	return db
}
