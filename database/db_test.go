package database

import (
	"path/filepath"
	"testing"

	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/util/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestInitDBIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "folio.db")

	db, err := InitDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, Bootstrap(db))
	require.NoError(t, CloseDB(db))

	db, err = InitDB(dbPath)
	require.NoError(t, err)
	defer CloseDB(db)

	assert.EqualValues(t, 1, count(t, db, &model.User{}))
	assert.EqualValues(t, 1, count(t, db, &model.Profile{}))
	assert.EqualValues(t, 1, count(t, db, &model.Experience{}))
	assert.EqualValues(t, 1, count(t, db, &model.Project{}))
	assert.EqualValues(t, 1, count(t, db, &model.Technology{}))
	assert.EqualValues(t, 0, count(t, db, &model.Education{}))
	assert.EqualValues(t, 0, count(t, db, &model.Achievement{}))
}

func TestDefaultAdminPasswordIsHashed(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer CloseDB(db)

	user := &model.User{}
	require.NoError(t, db.First(user).Error)
	assert.Equal(t, "admin", user.Username)
	assert.NotEqual(t, "admin123", user.PasswordHash)
	assert.True(t, crypto.CheckPasswordHash(user.PasswordHash, "admin123"))
	assert.False(t, user.CreatedAt.IsZero())
}

func TestSeededProfileUsesFixedId(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer CloseDB(db)

	profile := &model.Profile{}
	require.NoError(t, db.First(profile, model.ProfileID).Error)
	assert.Equal(t, "Your Name", profile.Name)
}

func TestSampleContentSkipsFilledCollections(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer CloseDB(db)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Create(&model.Technology{Name: "Rust", OrderIndex: 3}).Error)
	require.NoError(t, db.Create(&model.Technology{Name: "Zig", OrderIndex: 4}).Error)
	require.NoError(t, EnsureSampleContent(db))

	assert.EqualValues(t, 2, count(t, db, &model.Technology{}))
	assert.EqualValues(t, 1, count(t, db, &model.Experience{}))
}

func TestEnsureAdminAccountKeepsExisting(t *testing.T) {
	db, err := InitDB(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer CloseDB(db)

	require.NoError(t, EnsureAdminAccount(db, "other", "pass"))
	assert.EqualValues(t, 1, count(t, db, &model.User{}))

	err = db.First(&model.User{}, "username = ?", "other").Error
	assert.True(t, IsNotFound(err))
}
