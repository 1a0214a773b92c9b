package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/schemas"
)

// setupDB opens a fresh in-memory SQLite database with foreign keys on and
// the schema migrated.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Post{})
	assert.NoError(t, err)

	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		Username:     "testuser",
		PasswordHash: "digest",
		IsActive:     true,
	}
	assert.NoError(t, repo.Create(user))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := createUser(t, repo, "test@example.com")
	assert.Greater(t, user.ID, uint(0))
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", found.Email)

	found, err = repo.GetByEmail("test@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	createUser(t, repo, "test@example.com")

	err := repo.Create(&models.User{
		Email:        "test@example.com",
		Username:     "otheruser",
		PasswordHash: "digest",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestUserRepository_PaginationAndOrdering(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		user := &models.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			Username:     "testuser",
			PasswordHash: "digest",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, repo.Create(user))
	}

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)

	// Newest first, at most limit items per page.
	page1, err := repo.GetAll(1, 2)
	assert.NoError(t, err)
	assert.Len(t, page1, 2)
	assert.Equal(t, "user4@example.com", page1[0].Email)
	assert.Equal(t, "user3@example.com", page1[1].Email)

	page2, err := repo.GetAll(2, 2)
	assert.NoError(t, err)
	assert.Len(t, page2, 2)
	assert.Equal(t, "user2@example.com", page2[0].Email)

	page3, err := repo.GetAll(3, 2)
	assert.NoError(t, err)
	assert.Len(t, page3, 1)

	page4, err := repo.GetAll(4, 2)
	assert.NoError(t, err)
	assert.Len(t, page4, 0)
}

func TestUserRepository_PartialUpdate(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := createUser(t, repo, "test@example.com")

	username := "renamed"
	updated, err := repo.Update(user.ID, &schemas.UpdateUserRequest{Username: &username})
	assert.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	// Absent fields keep their prior value.
	assert.Equal(t, "test@example.com", updated.Email)
	assert.True(t, updated.IsActive)

	inactive := false
	updated, err = repo.Update(user.ID, &schemas.UpdateUserRequest{IsActive: &inactive})
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "renamed", updated.Username)

	_, err = repo.Update(9999, &schemas.UpdateUserRequest{Username: &username})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := createUser(t, repo, "test@example.com")

	deleted, err := repo.Delete(user.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(user.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting a missing row is a non-error outcome.
	deleted, err = repo.Delete(user.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_DeleteCascadesPosts(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)

	user := createUser(t, userRepo, "test@example.com")

	post := &models.Post{Title: "A", Content: "B", UserID: user.ID}
	assert.NoError(t, postRepo.Create(post))

	deleted, err := userRepo.Delete(user.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = postRepo.GetByID(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPostRepository_CRUD(t *testing.T) {
	db := setupDB(t)
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)

	user := createUser(t, userRepo, "test@example.com")

	post := &models.Post{Title: "A", Content: "B", UserID: user.ID}
	assert.NoError(t, postRepo.Create(post))
	assert.Greater(t, post.ID, uint(0))
	assert.False(t, post.IsPublished)

	found, err := postRepo.GetByID(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, "A", found.Title)

	title := "new"
	updated, err := postRepo.Update(post.ID, &schemas.UpdatePostRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "B", updated.Content)

	published := true
	updated, err = postRepo.Update(post.ID, &schemas.UpdatePostRequest{IsPublished: &published})
	assert.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "new", updated.Title)

	count, err := postRepo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := postRepo.Delete(post.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = postRepo.Delete(post.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
