package admin

import (
	"fmt"
	"sync/atomic"
	"testing"

	"shipment-portal/internal/config"
	"shipment-portal/internal/database"
	"shipment-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:admintest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
}

func bootstrapConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "root@x.com",
		AdminPassword: "bootstrap-secret",
	}
}

func adminCount(t *testing.T, email string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.DB.Model(&models.User{}).
		Where("email = ? AND role = ?", email, models.RoleAdmin).
		Count(&count).Error)
	return count
}

func TestEnsureDefaultAdmin_CreatesHashedAccount(t *testing.T) {
	setupDB(t)
	cfg := bootstrapConfig()

	require.NoError(t, EnsureDefaultAdmin(cfg))
	require.Equal(t, int64(1), adminCount(t, cfg.AdminEmail))

	var admin models.User
	require.NoError(t, database.DB.Where("email = ?", cfg.AdminEmail).First(&admin).Error)
	assert.Equal(t, "Admin", admin.Name)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, cfg.AdminPassword, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(cfg.AdminPassword)))
}

// A mixed-case ADMIN_EMAIL must be stored in the normalized form the login
// lookup uses, and stay idempotent across restarts with the same value.
func TestEnsureDefaultAdmin_NormalizesEmailCase(t *testing.T) {
	setupDB(t)
	cfg := &config.Config{
		AdminEmail:    " Root@X.com ",
		AdminPassword: "bootstrap-secret",
	}

	require.NoError(t, EnsureDefaultAdmin(cfg))

	var admin models.User
	require.NoError(t, database.DB.Where("email = ?", "root@x.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	require.NoError(t, EnsureDefaultAdmin(cfg))
	require.Equal(t, int64(1), adminCount(t, "root@x.com"))
}

func TestEnsureDefaultAdmin_Idempotent(t *testing.T) {
	setupDB(t)
	cfg := bootstrapConfig()

	require.NoError(t, EnsureDefaultAdmin(cfg))

	var first models.User
	require.NoError(t, database.DB.Where("email = ?", cfg.AdminEmail).First(&first).Error)

	require.NoError(t, EnsureDefaultAdmin(cfg))
	require.Equal(t, int64(1), adminCount(t, cfg.AdminEmail))

	// The existing account is untouched, not re-created with a new hash.
	var second models.User
	require.NoError(t, database.DB.Where("email = ?", cfg.AdminEmail).First(&second).Error)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.PasswordHash, second.PasswordHash)
}
