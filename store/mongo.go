package store

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"notebuddy/config"
	"notebuddy/utils"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection with the configured pool
// settings and returns a store bound to the configured database.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*MongoStore, error) {
	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.DatabaseName),
	}, nil
}

// NewMongoStore wraps an existing client, used when the caller manages the
// connection lifecycle.
func NewMongoStore(client *mongo.Client, databaseName string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(databaseName),
	}
}

// DatabaseName reports the bound database, for the /test diagnostic.
func (s *MongoStore) DatabaseName() string {
	return s.db.Name()
}

// Disconnect tears down the underlying client.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	defer utils.TrackDBOperation("create", collection).ObserveDuration()

	oid := primitive.NewObjectID()
	now := Now()

	insert := bson.M{}
	for k, v := range doc {
		insert[k] = v
	}
	insert["_id"] = oid
	insert["id"] = oid.Hex()
	insert["created_at"] = now
	insert["updated_at"] = now

	if _, err := s.db.Collection(collection).InsertOne(ctx, insert); err != nil {
		return nil, err
	}

	created := Document{}
	for k, v := range insert {
		created[k] = v
	}
	return normalize(created), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, q Query, opts FindOptions) ([]Document, error) {
	defer utils.TrackDBOperation("find", collection).ObserveDuration()

	findOpts := options.Find()
	if opts.Sort.Field != "" {
		order := 1
		if opts.Sort.Desc {
			order = -1
		}
		findOpts.SetSort(bson.D{{Key: sortField(opts.Sort.Field), Value: order}})
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, q.toBSON(), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []Document
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, normalize(d))
	}
	return docs, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, q Query) (Document, error) {
	defer utils.TrackDBOperation("find_one", collection).ObserveDuration()

	var doc Document
	err := s.db.Collection(collection).FindOne(ctx, q.toBSON()).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return normalize(doc), nil
}

func (s *MongoStore) FindOrCreate(ctx context.Context, collection string, q Query, defaults Document) (Document, error) {
	defer utils.TrackDBOperation("find_or_create", collection).ObserveDuration()

	oid := primitive.NewObjectID()
	now := Now()

	insert := bson.M{}
	for k, v := range defaults {
		insert[k] = v
	}
	insert["_id"] = oid
	insert["id"] = oid.Hex()
	insert["created_at"] = now
	insert["updated_at"] = now

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc Document
	err := s.db.Collection(collection).
		FindOneAndUpdate(ctx, q.toBSON(), bson.M{"$setOnInsert": insert}, opts).
		Decode(&doc)
	if err != nil {
		return nil, err
	}
	return normalize(doc), nil
}

func (s *MongoStore) Update(ctx context.Context, collection string, q Query, patch Document) (int64, error) {
	defer utils.TrackDBOperation("update", collection).ObserveDuration()

	set := bson.M{}
	for k, v := range patch {
		if protectedField(k) {
			continue
		}
		set[k] = v
	}
	set["updated_at"] = Now()

	result, err := s.db.Collection(collection).UpdateOne(ctx, q.toBSON(), bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *MongoStore) Increment(ctx context.Context, collection string, q Query, field string, delta int64) (Document, error) {
	defer utils.TrackDBOperation("increment", collection).ObserveDuration()

	update := bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updated_at": Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc Document
	err := s.db.Collection(collection).FindOneAndUpdate(ctx, q.toBSON(), update, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return normalize(doc), nil
}

func (s *MongoStore) Delete(ctx context.Context, collection string, q Query) (int64, error) {
	defer utils.TrackDBOperation("delete", collection).ObserveDuration()

	result, err := s.db.Collection(collection).DeleteMany(ctx, q.toBSON())
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// toBSON renders the typed query as a Mongo filter. Values reach the filter
// as literals only, so free-text input cannot smuggle operators in.
func (q Query) toBSON() bson.M {
	filter := bson.M{}
	for _, cond := range q {
		switch cond.Op {
		case OpContainsFold:
			filter[cond.Field] = primitive.Regex{
				Pattern: regexp.QuoteMeta(fmt.Sprint(cond.Value)),
				Options: "i",
			}
		case OpIDEq:
			oid, err := primitive.ObjectIDFromHex(fmt.Sprint(cond.Value))
			if err != nil {
				// Malformed ids must match nothing, not raise.
				filter["_id"] = primitive.NilObjectID
				continue
			}
			filter["_id"] = oid
		default:
			filter[cond.Field] = cond.Value
		}
	}
	return filter
}

// sortField maps the public id field onto the indexed internal identifier.
func sortField(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}

func protectedField(key string) bool {
	return key == "id" || key == "_id" || key == "created_at"
}

// normalize renames the internal identifier into the public id field and
// drops it from the document.
func normalize(doc Document) Document {
	if doc == nil {
		return nil
	}
	if raw, ok := doc["_id"]; ok {
		if _, has := doc["id"]; !has {
			if oid, ok := raw.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			} else {
				doc["id"] = fmt.Sprint(raw)
			}
		}
		delete(doc, "_id")
	}
	return doc
}
