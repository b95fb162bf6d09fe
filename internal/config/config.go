package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr        string
	DataDir     string
	DBPath      string
	ArtifactDir string
	LogLevel    string
	JWTSecret   string
	NodeID      int64

	AnonDownloadMax    int
	AnonDownloadWindow time.Duration
	UserDownloadMax    int
	UserDownloadWindow time.Duration

	// EventRetention bounds how long download events are kept before the
	// pruner removes them. Zero disables pruning.
	EventRetention time.Duration
	PruneInterval  time.Duration
}

func Load() Config {
	dataDir := getenv("PLUGHUB_DATA_DIR", "data")

	dbPath := os.Getenv("PLUGHUB_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "plughub.db")
	}

	return Config{
		Addr:        getenv("PLUGHUB_ADDR", ":8080"),
		DataDir:     filepath.Clean(dataDir),
		DBPath:      filepath.Clean(dbPath),
		ArtifactDir: filepath.Join(filepath.Clean(dataDir), "artifacts"),
		LogLevel:    getenv("PLUGHUB_LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("PLUGHUB_JWT_SECRET"),
		NodeID:      getenvInt64("PLUGHUB_NODE_ID", 0),

		AnonDownloadMax:    getenvInt("PLUGHUB_ANON_DOWNLOAD_MAX", 5),
		AnonDownloadWindow: time.Duration(getenvInt("PLUGHUB_ANON_DOWNLOAD_WINDOW_HOURS", 24)) * time.Hour,
		UserDownloadMax:    getenvInt("PLUGHUB_USER_DOWNLOAD_MAX", 10),
		UserDownloadWindow: time.Duration(getenvInt("PLUGHUB_USER_DOWNLOAD_WINDOW_HOURS", 24)) * time.Hour,

		EventRetention: time.Duration(getenvInt("PLUGHUB_EVENT_RETENTION_DAYS", 30)) * 24 * time.Hour,
		PruneInterval:  time.Duration(getenvInt("PLUGHUB_PRUNE_INTERVAL_MINUTES", 60)) * time.Minute,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func getenvInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
