package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App struct {
		Env             string   `env:"APP_ENV" envDefault:"development"`
		Port            string   `env:"PORT"    envDefault:"8088"`
		FrontendURL     string   `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		UploadDir       string   `env:"UPLOAD_DIR"   envDefault:"./static/uploads"`
		MaxUploadSizeMB int      `env:"MAX_UPLOAD_SIZE_MB" envDefault:"5"`
		SuperuserEmails []string `env:"SUPERUSER_EMAILS"`
	}
	DB struct {
		Driver     string `env:"DB_DRIVER"   envDefault:"postgres"`
		Host       string `env:"DB_HOST"     envDefault:"localhost"`
		Port       string `env:"DB_PORT"     envDefault:"5432"`
		User       string `env:"DB_USER"     envDefault:"postgres"`
		Password   string `env:"DB_PASSWORD" envDefault:"password"`
		Name       string `env:"DB_NAME"     envDefault:"skillswap_db"`
		SSLMode    string `env:"DB_SSLMODE"  envDefault:"disable"`
		SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"skillswap.db"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"  envDefault:"supersecret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"30"`
		RefreshTokenSecret       string `env:"JWT_REFRESH_TOKEN_SECRET" envDefault:"supersecretrefresh"`
		RefreshTokenExpiryDays   int    `env:"JWT_REFRESH_TOKEN_EXPIRY_DAYS"   envDefault:"7"`
	}
	Auth struct {
		BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// A missing .env is fine, production sets the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./static/uploads")
	cfg.App.SuperuserEmails = getEnvAsList("SUPERUSER_EMAILS")

	var err error
	cfg.App.MaxUploadSizeMB, err = getEnvAsInt("MAX_UPLOAD_SIZE_MB", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}

	// --- Database Configuration ---
	cfg.DB.Driver = strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "skillswap_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.SQLitePath = getEnv("DB_SQLITE_PATH", "skillswap.db")
	if cfg.DB.Driver != DriverPostgres && cfg.DB.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	// --- JWT Configuration ---
	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", "your-very-strong-access-secret")
	cfg.JWT.RefreshTokenSecret = getEnv("JWT_REFRESH_TOKEN_SECRET", "your-very-strong-refresh-secret")

	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}
	cfg.JWT.RefreshTokenExpiryDays, err = getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRY_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_EXPIRY_DAYS: %w", err)
	}

	// --- Auth Configuration ---
	cfg.Auth.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	if cfg.JWT.AccessTokenSecret == "your-very-strong-access-secret" || cfg.JWT.RefreshTokenSecret == "your-very-strong-refresh-secret" {
		log.Println("WARNING: Using default JWT secrets. Please set JWT_ACCESS_TOKEN_SECRET and JWT_REFRESH_TOKEN_SECRET environment variables for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" && cfg.DB.Driver == DriverPostgres {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// Dialector picks the GORM driver for the configured DB_DRIVER.
func Dialector(dbCfg Config) gorm.Dialector {
	if dbCfg.DB.Driver == DriverSQLite {
		return sqlite.Open(dbCfg.DB.SQLitePath)
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
	)
	return postgres.Open(dsn)
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(Dialector(dbCfg), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dbCfg.DB.Driver == DriverSQLite {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		// sqlite allows a single writer; one connection keeps transactions from tripping over locks.
		sqlDB.SetMaxOpenConns(1)
	}

	DB = gormDB
	log.Printf("Successfully connected to %s database!", dbCfg.DB.Driver)
	return gormDB, nil
}

// Initialize loads all configurations and connects to the database.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		_, err = ConnectDB(*appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

// IsSuperuserEmail reports whether email is listed in SUPERUSER_EMAILS.
func (c *Config) IsSuperuserEmail(email string) bool {
	for _, e := range c.App.SuperuserEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
