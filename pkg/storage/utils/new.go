package storageutils

import (
	"context"
	"fmt"

	"github.com/halfmoonlabs/vinyasa/pkg/storage"
	"github.com/halfmoonlabs/vinyasa/pkg/storage/inmemory"
	"github.com/halfmoonlabs/vinyasa/pkg/storage/mongo"
	"github.com/halfmoonlabs/vinyasa/pkg/storage/postgres"
	"github.com/halfmoonlabs/vinyasa/pkg/storage/sqlite"
)

type NewDriverOpts struct {
	ProviderType string
	SQLitePath   string
	PostgresDSN  string
	MongoURI     string
}

func NewDriver(ctx context.Context, o *NewDriverOpts) (storage.Driver, error) {
	switch o.ProviderType {
	case "", "inmemory", "memory":
		return inmemory.NewDriver(), nil
	case "sqlite":
		return sqlite.NewSQLiteDriver(o.SQLitePath)
	case "postgres":
		return postgres.NewDriver(ctx, o.PostgresDSN)
	case "mongo", "mongodb":
		return mongo.NewDriver(ctx, o.MongoURI)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", o.ProviderType)
	}
}
