package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/gymroutines/internal"
	"github.com/2beens/gymroutines/internal/config"
	"github.com/2beens/gymroutines/internal/kvstore"
	"github.com/2beens/gymroutines/internal/logging"
	"github.com/2beens/gymroutines/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// backup dumps all mirrored blobs into a JSON file, or restores them from one.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outDir := flag.String("out", "./backups", "directory for new backup files")
	restoreFile := flag.String("restore", "", "backup file to restore (skips the backup)")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogToStdout: true,
		LogLevel:    "debug",
	})

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("GYMROUTINES_REDIS_PASS"),
	})
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	// the cache only helps the long-running service
	cfg.CacheEnabled = false
	store, dbPool, err := internal.OpenStore(ctx, internal.OpenStoreParams{
		Config:      cfg,
		RedisClient: rdb,
	})
	if err != nil {
		log.Fatalf("open store: %s", err)
	}
	if dbPool != nil {
		defer dbPool.Close()
	}

	if *restoreFile != "" {
		if err := restore(ctx, store, *restoreFile); err != nil {
			log.Fatalf("restore: %s", err)
		}
		log.Infof("restored from %s", *restoreFile)
		return
	}

	path, err := backup(ctx, store, *outDir, time.Now().UTC())
	if err != nil {
		log.Fatalf("backup: %s", err)
	}
	log.Infof("backup written to %s", path)
}

func backup(ctx context.Context, store kvstore.Store, outDir string, now time.Time) (string, error) {
	if err := pkg.EnsureDir(outDir); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}

	snapshot, err := kvstore.Export(ctx, store, now)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("gymroutines-%s.json", now.Format("20060102-150405")))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return path, nil
}

func restore(ctx context.Context, store kvstore.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	var snapshot kvstore.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode backup file: %w", err)
	}
	log.Debugf("restoring snapshot taken at %s, %d keys", snapshot.TakenAt, len(snapshot.Blobs))

	return kvstore.Import(ctx, store, snapshot)
}
