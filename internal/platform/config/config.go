package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DataDir      string
	IsProduction bool

	// TLS material; the server runs plain HTTP when the key or cert is
	// absent.
	SSLKeyPath  string
	SSLCertPath string
	SSLCAPath   string

	// Rate limit for the login endpoint, in ulule/limiter format
	// ("10-M" = ten per minute).
	LoginRateLimit string

	// Cron schedule for state snapshots; empty disables backups.
	BackupSchedule string
	BackupKeep     int
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SSL_DIR", "/etc/letsencrypt/live/finance-backend")
	viper.SetDefault("SSL_KEY_PATH", "")
	viper.SetDefault("SSL_CERT_PATH", "")
	viper.SetDefault("SSL_CA_PATH", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("BACKUP_SCHEDULE", "")
	viper.SetDefault("BACKUP_KEEP", 10)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		DataDir:        viper.GetString("DATA_DIR"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		LoginRateLimit: viper.GetString("LOGIN_RATE_LIMIT"),
		BackupSchedule: viper.GetString("BACKUP_SCHEDULE"),
		BackupKeep:     viper.GetInt("BACKUP_KEEP"),
	}

	// Explicit paths win; otherwise derive the Let's Encrypt layout from
	// SSL_DIR.
	sslDir := viper.GetString("SSL_DIR")
	cfg.SSLKeyPath = viper.GetString("SSL_KEY_PATH")
	if cfg.SSLKeyPath == "" {
		cfg.SSLKeyPath = filepath.Join(sslDir, "privkey.pem")
	}
	cfg.SSLCertPath = viper.GetString("SSL_CERT_PATH")
	if cfg.SSLCertPath == "" {
		cfg.SSLCertPath = filepath.Join(sslDir, "fullchain.pem")
	}
	cfg.SSLCAPath = viper.GetString("SSL_CA_PATH")
	if cfg.SSLCAPath == "" {
		cfg.SSLCAPath = filepath.Join(sslDir, "chain.pem")
	}

	return cfg, nil
}
