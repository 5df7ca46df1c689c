// Package docstore is a thin adapter over the MongoDB document store. It
// exposes insert-one and find-many operations against collections named
// after record kinds, with a single shared client handle established once
// at startup.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotAvailable is returned by every operation while the store is
// degraded (missing configuration or failed initial connection). Operations
// fail fast; there is no retry.
var ErrNotAvailable = errors.New("database not available")

const connectTimeout = 10 * time.Second

type Config struct {
	URL  string
	Name string
}

// Store wraps a mongo database handle. The zero value is a degraded store.
// The underlying driver client is safe for concurrent use, so Store needs
// no additional locking.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open establishes the shared connection handle. A missing configuration or
// a failed connect yields a degraded store rather than an error: the caller
// keeps serving requests and the diagnostic endpoint reports the state.
func Open(cfg Config) *Store {
	s := &Store{}
	if cfg.URL == "" || cfg.Name == "" {
		zap.L().Warn("document store configuration missing, starting degraded",
			zap.Bool("url_set", cfg.URL != ""),
			zap.Bool("name_set", cfg.Name != ""))
		return s
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		zap.L().Warn("document store connect failed, starting degraded", zap.Error(err))
		return s
	}
	if err := client.Ping(ctx, nil); err != nil {
		zap.L().Warn("document store ping failed, starting degraded", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return s
	}

	s.client = client
	s.db = client.Database(cfg.Name)
	zap.L().Info("document store connected", zap.String("database", cfg.Name))
	return s
}

// CollectionName maps a record kind to its collection: the lowercase of the
// kind's name.
func CollectionName(kind string) string {
	return strings.ToLower(kind)
}

// Connected reports whether the initial connection was established.
func (s *Store) Connected() bool {
	return s.db != nil
}

// Ping probes the server over the shared handle.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrNotAvailable
	}
	return s.client.Ping(ctx, nil)
}

// CreateDocument inserts one document into the kind's collection and
// returns the store-assigned identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, kind string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrNotAvailable
	}
	res, err := s.db.Collection(CollectionName(kind)).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// GetDocuments returns at most limit documents matching the exact-match
// filter (an empty or nil filter matches all). No sort stage is applied, so
// ordering is the store's natural order.
func (s *Store) GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrNotAvailable
	}
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.db.Collection(CollectionName(kind)).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// CountDocuments counts documents matching the exact-match filter.
func (s *Store) CountDocuments(ctx context.Context, kind string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrNotAvailable
	}
	if filter == nil {
		filter = bson.M{}
	}
	return s.db.Collection(CollectionName(kind)).CountDocuments(ctx, filter)
}

// CollectionNames enumerates collection names in the database, capped at
// max when max is positive.
func (s *Store) CollectionNames(ctx context.Context, max int) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotAvailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if max > 0 && len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// Close tears down the shared handle. Safe to call on a degraded store.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
