package auth

import (
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"shipment-portal/internal/database"
	"shipment-portal/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// setupDB points the package-global store at a fresh in-memory database.
// Tests that touch the store must not run in parallel.
func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
}

func seedUser(t *testing.T, email, password string, role models.UserRole) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func cookieByName(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
