package sink

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// MongoConfig configures a [MongoSink].
type MongoConfig struct {
	URI        string // e.g. mongodb://localhost:27017
	Database   string // default "breadboard"
	Collection string // default "blueprints"
}

// MongoSink stores one record per document, keyed by blueprint name.
type MongoSink struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// record is the stored form of a document.
type record struct {
	Name      string    `bson:"_id"`
	Document  []byte    `bson:"document"`
	Size      int       `bson:"size"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoSink connects to MongoDB and verifies the connection.
func NewMongoSink(ctx context.Context, cfg MongoConfig) (*MongoSink, error) {
	if cfg.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo uri is required")
	}
	if cfg.Database == "" {
		cfg.Database = "breadboard"
	}
	if cfg.Collection == "" {
		cfg.Collection = "blueprints"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongo")
	}
	return &MongoSink{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Write upserts the record for name.
func (s *MongoSink) Write(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	rec := record{
		Name:      name,
		Document:  doc,
		Size:      len(doc),
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, rec, opts); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "mongo upsert %s", name)
	}
	return "mongo:" + s.coll.Database().Name() + "." + s.coll.Name() + "/" + name, nil
}

// Read fetches the record for name.
func (s *MongoSink) Read(ctx context.Context, name string) ([]byte, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&rec)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "mongo find %s", name)
	}
	return rec.Document, nil
}

// Close disconnects the client.
func (s *MongoSink) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Sink = (*MongoSink)(nil)
