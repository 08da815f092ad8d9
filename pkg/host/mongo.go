package host

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spotlight-tour/spotlight/pkg/errors"
	"github.com/spotlight-tour/spotlight/pkg/observability"
)

// MongoConfig configures a MongoDB-backed settings store.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name (default "spotlight").
	Database string

	// Collection is the collection name (default "tours").
	Collection string

	// Tour names the tour whose settings this store holds.
	Tour string
}

// tourDocument is the stored shape: one document per tour.
type tourDocument struct {
	ID       string            `bson:"_id"`
	Settings map[string]string `bson:"settings"`
}

// MongoStore keeps a tour's settings in a single document, with the flat
// key-value map embedded under "settings".
type MongoStore struct {
	mu      sync.Mutex
	client  *mongo.Client
	coll    *mongo.Collection
	tour    string
	pending []pendingOp
}

// NewMongoStore connects to MongoDB and returns a settings store.
// The connection is verified with a ping before returning.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if err := errors.ValidateTourName(cfg.Tour); err != nil {
		return nil, err
	}
	if cfg.Database == "" {
		cfg.Database = "spotlight"
	}
	if cfg.Collection == "" {
		cfg.Collection = "tours"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "ping mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		tour:   cfg.Tour,
	}, nil
}

// All reads the committed settings document.
// A missing document is an empty tour, not an error.
func (s *MongoStore) All(ctx context.Context) (map[string]string, error) {
	var doc tourDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": s.tour}).Decode(&doc)
	switch {
	case err == mongo.ErrNoDocuments:
		doc.Settings = map[string]string{}
		err = nil
	case err != nil:
		err = errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read tour document")
	case doc.Settings == nil:
		doc.Settings = map[string]string{}
	}
	observability.Store().OnLoad(BackendMongo, len(doc.Settings), err)
	return doc.Settings, err
}

// Set buffers a field write.
func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, value: value})
	return nil
}

// Erase buffers a field removal.
func (s *MongoStore) Erase(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, pendingOp{key: key, erase: true})
	return nil
}

// Commit applies buffered mutations as a single upsert.
// Later mutations of the same key win, mirroring in-order replay.
func (s *MongoStore) Commit(ctx context.Context) error {
	start := time.Now()
	s.mu.Lock()
	ops := s.pending
	s.mu.Unlock()

	// Collapse the op list: replay order decides each key's final fate.
	set := bson.M{}
	unset := bson.M{}
	for _, op := range ops {
		field := "settings." + op.key
		if op.erase {
			delete(set, field)
			unset[field] = ""
		} else {
			delete(unset, field)
			set[field] = op.value
		}
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var err error
	if len(update) > 0 {
		_, err = s.coll.UpdateOne(ctx, bson.M{"_id": s.tour}, update,
			options.Update().SetUpsert(true))
		if err != nil {
			err = errors.Wrap(errors.ErrCodeCommitFailed, err, "commit tour document")
		}
	}
	if err == nil {
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
	}
	observability.Store().OnCommit(BackendMongo, len(ops), time.Since(start), err)
	return err
}

// Close discards pending mutations and disconnects.
func (s *MongoStore) Close() error {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ SettingsStore = (*MongoStore)(nil)
