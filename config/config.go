package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration settings for the application.
type Config struct {
	// Server settings
	ListenAddress string
	ListenPort    string

	// Database settings
	DbFilePath   string
	EnableBackup bool

	// Session token settings
	JwtSecret     string // The actual secret key
	JwtSecretFile string // Path to the file containing the secret
	TokenLifetime time.Duration
}

const (
	defaultAddress       = "0.0.0.0"
	defaultPort          = "5000"
	defaultDbFile        = "./database.json" // Relative to working dir
	defaultEnableBackup  = true
	defaultJwtSecretFile = ""              // No default file
	defaultJwtKeyFile    = "./connect.key" // Default file if we generate a key
	defaultTokenLifetime = 1 * time.Hour
)

// LoadConfig loads configuration from defaults, a .env file, environment
// variables, and command-line flags. Flags take precedence over environment
// variables, which take precedence over .env entries and defaults.
func LoadConfig() (*Config, error) {
	// A .env file in the working directory seeds the environment before any
	// lookups. Missing file is the normal case outside local development.
	if err := godotenv.Load(); err == nil {
		log.Printf("INFO: Loaded environment from .env file")
	}

	cfg := &Config{}

	// Use CONNECT_ prefix for environment variables to avoid conflicts.
	flag.StringVar(&cfg.ListenAddress, "address", getEnv("CONNECT_LISTEN_ADDRESS", defaultAddress), "Server listen address (Env: CONNECT_LISTEN_ADDRESS)")
	flag.StringVar(&cfg.ListenPort, "port", defaultPort, "Server listen port (Env: CONNECT_LISTEN_PORT)")
	flag.StringVar(&cfg.DbFilePath, "db-file", getEnv("CONNECT_DB_FILE_PATH", defaultDbFile), "Path to the JSON database file (Env: CONNECT_DB_FILE_PATH)")
	flag.BoolVar(&cfg.EnableBackup, "enable-backup", getEnvBool("CONNECT_ENABLE_BACKUP", defaultEnableBackup), "Keep a .bak copy of the database before each save (Env: CONNECT_ENABLE_BACKUP)")
	flag.StringVar(&cfg.JwtSecretFile, "jwt-secret-file", getEnv("CONNECT_JWT_SECRET_FILE", defaultJwtSecretFile), "Path to file containing the session token secret (Env: CONNECT_JWT_SECRET_FILE)")

	cfg.TokenLifetime = defaultTokenLifetime

	flag.Parse()

	// Environment variables override remaining defaults when the flag was not
	// explicitly provided.
	envPort := getEnv("CONNECT_LISTEN_PORT", "")
	if cfg.ListenPort == defaultPort && envPort != "" {
		cfg.ListenPort = envPort
	}
	envDbFile := getEnv("CONNECT_DB_FILE_PATH", "")
	if cfg.DbFilePath == defaultDbFile && envDbFile != "" {
		cfg.DbFilePath = envDbFile
	}
	envJwtSecretFile := getEnv("CONNECT_JWT_SECRET_FILE", "")
	if cfg.JwtSecretFile == defaultJwtSecretFile && envJwtSecretFile != "" {
		cfg.JwtSecretFile = envJwtSecretFile
	}

	// --- Session secret handling ---
	// Priority: File (CLI/Env) > Env Var > Default Key File > Generate
	var secretSource string

	if cfg.JwtSecretFile != "" {
		secretBytes, err := os.ReadFile(cfg.JwtSecretFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded session secret from specified file: %s", cfg.JwtSecretFile)
				secretSource = fmt.Sprintf("File (%s)", cfg.JwtSecretFile)
			} else {
				log.Printf("WARN: Specified session secret file '%s' is empty or contains only whitespace. Ignoring.", cfg.JwtSecretFile)
			}
		} else {
			log.Printf("WARN: Failed to read specified session secret file '%s': %v. Checking other sources.", cfg.JwtSecretFile, err)
		}
	}

	if cfg.JwtSecret == "" {
		envSecret := strings.TrimSpace(getEnv("CONNECT_JWT_SECRET", ""))
		if envSecret != "" {
			cfg.JwtSecret = envSecret
			log.Printf("INFO: Loaded session secret from CONNECT_JWT_SECRET environment variable.")
			secretSource = "Environment Variable (CONNECT_JWT_SECRET)"
		}
	}

	if cfg.JwtSecret == "" {
		secretBytes, err := os.ReadFile(defaultJwtKeyFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded session secret from default key file: %s", defaultJwtKeyFile)
				secretSource = fmt.Sprintf("Default Key File (%s)", defaultJwtKeyFile)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to read default key file '%s': %v. Will attempt generation.", defaultJwtKeyFile, err)
		}
	}

	if cfg.JwtSecret == "" {
		log.Printf("INFO: Session secret not found via file, environment variable, or default key file. Generating a new secret...")
		newSecret, err := generateRandomKey(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.JwtSecret = newSecret

		if err := os.WriteFile(defaultJwtKeyFile, []byte(newSecret), 0600); err != nil {
			log.Printf("WARN: Failed to save generated session secret to '%s': %v. The server will use the generated key for this session only.", defaultJwtKeyFile, err)
			secretSource = "Generated (In Memory)"
		} else {
			log.Printf("INFO: Successfully generated and saved new session secret to: %s", defaultJwtKeyFile)
			secretSource = fmt.Sprintf("Generated & Saved (%s)", defaultJwtKeyFile)
		}
	}

	// --- Database path validation ---
	absDbPath, err := filepath.Abs(cfg.DbFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for db-file '%s': %w", cfg.DbFilePath, err)
	}
	cfg.DbFilePath = absDbPath

	fileInfo, err := os.Stat(cfg.DbFilePath)
	if err == nil && fileInfo.IsDir() {
		return nil, fmt.Errorf("database path '%s' points to a directory, not a file", cfg.DbFilePath)
	}
	// A missing file is fine here; the store creates the document on first save.

	logConfiguration(cfg, secretSource)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
// Recognizes "true", "1", "yes" (case-insensitive) as true.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("WARN: Invalid boolean value for environment variable %s: '%s'. Using default: %t", key, value, fallback)
	}
	return fallback
}

// logConfiguration prints the loaded configuration settings.
func logConfiguration(cfg *Config, secretSource string) {
	log.Println("--- Configuration ---")
	log.Printf("Server Address: %s", cfg.ListenAddress)
	log.Printf("Server Port: %s", cfg.ListenPort)
	log.Printf("Database File: %s", cfg.DbFilePath)
	log.Printf("Database Backup Enabled: %t", cfg.EnableBackup)
	log.Printf("Session Secret Source: %s", secretSource)
	log.Printf("Session Token Lifetime: %s", cfg.TokenLifetime)
	log.Println("---------------------")
}

// generateRandomKey generates a cryptographically secure random key of the
// specified byte length and returns it as a hex-encoded string.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
