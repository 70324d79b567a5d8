package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5, cfg.App.MaxUploadSizeMB)
	assert.Equal(t, 30, cfg.JWT.AccessTokenExpiryMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.App.SuperuserEmails)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "12")
	t.Setenv("SUPERUSER_EMAILS", " Admin@Example.com, ,ops@example.com ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.DB.SQLitePath)
	assert.Equal(t, 12, cfg.App.MaxUploadSizeMB)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, cfg.App.SuperuserEmails)
	assert.True(t, cfg.IsSuperuserEmail("ADMIN@example.com"))
	assert.False(t, cfg.IsSuperuserEmail("someone@example.com"))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric upload size", key: "MAX_UPLOAD_SIZE_MB", value: "lots"},
		{name: "non numeric expiry", key: "JWT_ACCESS_TOKEN_EXPIRY_MINUTES", value: "soon"},
		{name: "non numeric bcrypt cost", key: "BCRYPT_COST", value: "high"},
		{name: "unknown driver", key: "DB_DRIVER", value: "oracle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestDialector(t *testing.T) {
	var cfg Config
	cfg.DB.Driver = DriverPostgres
	assert.Equal(t, "postgres", Dialector(cfg).Name())

	cfg.DB.Driver = DriverSQLite
	cfg.DB.SQLitePath = ":memory:"
	assert.Equal(t, "sqlite", Dialector(cfg).Name())
}

func TestConnectDBSQLite(t *testing.T) {
	var cfg Config
	cfg.App.Env = "test"
	cfg.DB.Driver = DriverSQLite
	cfg.DB.SQLitePath = fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := ConnectDB(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Same(t, db, DB)
}
