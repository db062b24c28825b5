package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"inventory-management/config"
	itemRepo "inventory-management/internal/item/repository"
	itemMongo "inventory-management/internal/item/repository/mongo"
	itemPostgre "inventory-management/internal/item/repository/postgre"
	itemSQLite "inventory-management/internal/item/repository/sqlite"
	"inventory-management/pkg/log"
	pkgMongo "inventory-management/pkg/mongo"
	"inventory-management/pkg/postgre"
	"inventory-management/pkg/sqlite"
)

// storage is the selected item store plus its lifecycle hooks.
type storage struct {
	repo  itemRepo.Repository
	ready func(ctx context.Context) error
	close func(ctx context.Context) error
}

// openStorage connects to the configured driver and prepares its schema.
func openStorage(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (storage, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, db, err := pkgMongo.Connect(ctx, pkgMongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return storage{}, err
		}
		if err := itemMongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return storage{}, err
		}
		return storage{
			repo:  itemMongo.New(db, l),
			ready: func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close: client.Disconnect,
		}, nil

	case config.DriverPostgres:
		db, err := postgre.Connect(ctx, postgre.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return storage{}, err
		}
		if err := itemPostgre.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return storage{}, err
		}
		return storage{
			repo:  itemPostgre.New(db, l),
			ready: db.PingContext,
			close: func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return storage{}, err
		}
		if err := itemSQLite.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return storage{}, err
		}
		return storage{
			repo:  itemSQLite.New(db, l),
			ready: db.PingContext,
			close: func(context.Context) error { return db.Close() },
		}, nil
	}
	return storage{}, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}
