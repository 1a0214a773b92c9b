package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blogapi/internal/models"
)

// A statement that cannot acquire a pool connection within the bound must
// fail with a store error instead of queueing indefinitely.
func TestPoolAcquireTimeout(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:pool_timeout?mode=memory&cache=shared&_fk=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Hold the pool's only connection so the repository call has to wait.
	conn, err := sqlDB.Conn(context.Background())
	assert.NoError(t, err)
	defer conn.Close()

	oldTimeout := poolAcquireTimeout
	poolAcquireTimeout = 50 * time.Millisecond
	defer func() { poolAcquireTimeout = oldTimeout }()

	repo := NewGORMUserRepository(db)

	start := time.Now()
	_, err = repo.GetByID(1)
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Less(t, elapsed, 5*time.Second)

	// With the connection released the same call succeeds in reporting
	// not-found, so the failure above was the acquire bound, not the query.
	assert.NoError(t, conn.Close())
	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, ErrNotFound)
}
