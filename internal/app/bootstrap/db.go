// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the document store over the configured slot. The file
// backend needs no external service; the mongo backend connects and pings
// before startup proceeds.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	switch appCfg.StoreBackend {
	case "file":
		if dir := filepath.Dir(appCfg.StorePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return DBDeps{}, fmt.Errorf("create store directory: %w", err)
			}
		}
		logger.Info("using file document store", zap.String("path", appCfg.StorePath))
		return DBDeps{
			Docs: document.New(document.NewFileSlot(appCfg.StorePath), logger),
		}, nil

	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
		}
		db := client.Database(appCfg.MongoDatabase)
		logger.Info("using mongo document store",
			zap.String("database", appCfg.MongoDatabase),
			zap.String("slot_key", appCfg.StoreSlotKey))
		return DBDeps{
			Docs:        document.New(document.NewMongoSlot(db, appCfg.StoreSlotKey), logger),
			MongoClient: client,
		}, nil

	default:
		return DBDeps{}, fmt.Errorf("unknown store_backend %q", appCfg.StoreBackend)
	}
}

// EnsureSchema warms the document slot. The first load materializes the
// seeded default document, so a fresh deployment has its catalog before
// the first request arrives.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if _, err := deps.Docs.Load(ctx); err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	return nil
}
