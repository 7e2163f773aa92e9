package main

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionAPI defines an interface for MongoDB operations, allowing for testing
type CollectionAPI interface {
	InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	EstimatedDocumentCount(ctx context.Context) (int64, error)
	Drop(ctx context.Context) error
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// MongoDBCollection is a wrapper around mongo.Collection to implement CollectionAPI
type MongoDBCollection struct {
	*mongo.Collection
}

func (c *MongoDBCollection) InsertOne(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	return c.Collection.InsertOne(ctx, document)
}

func (c *MongoDBCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.Collection.UpdateOne(ctx, filter, update, opts...)
}

func (c *MongoDBCollection) DeleteOne(ctx context.Context, filter interface{}) (*mongo.DeleteResult, error) {
	return c.Collection.DeleteOne(ctx, filter)
}

func (c *MongoDBCollection) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.Collection.CountDocuments(ctx, filter)
}

func (c *MongoDBCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	return c.Collection.EstimatedDocumentCount(ctx)
}

func (c *MongoDBCollection) Drop(ctx context.Context) error {
	return c.Collection.Drop(ctx)
}

func (c *MongoDBCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return c.Collection.Find(ctx, filter, opts...)
}

// fetchBatchSize bounds a single ordered ID query.
const fetchBatchSize = 400000

// fetchDocumentIDs returns up to limit document IDs in ascending _id order.
// A limit <= 0 fetches every document. The order is stable so that a seeded
// shuffle of the result is reproducible between runs; server-side $sample is
// avoided for the same reason.
func fetchDocumentIDs(collection CollectionAPI, limit int64, testType string) ([]primitive.ObjectID, error) {
	ctx := context.Background()

	estimatedCount, err := collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("estimate document count: %w", err)
	}
	log.Printf("Estimated document count: %d", estimatedCount)

	if limit <= 0 || limit > estimatedCount {
		limit = estimatedCount
	}
	log.Printf("Fetching %d document IDs in ordered batches for %s test.", limit, testType)

	ids := make([]primitive.ObjectID, 0, limit)
	var lastID primitive.ObjectID

	for int64(len(ids)) < limit {
		size := limit - int64(len(ids))
		if size > fetchBatchSize {
			size = fetchBatchSize
		}

		filter := bson.M{}
		if !lastID.IsZero() {
			filter["_id"] = bson.M{"$gt": lastID}
		}
		opts := options.Find().
			SetSort(bson.D{{Key: "_id", Value: 1}}).
			SetLimit(size).
			SetProjection(bson.M{"_id": 1})

		batch, err := fetchIDBatch(ctx, collection, filter, opts)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			// Estimate was higher than the real count.
			break
		}
		ids = append(ids, batch...)
		lastID = batch[len(batch)-1]
	}

	log.Println("Fetched", len(ids), "document IDs")
	return ids, nil
}

func fetchIDBatch(ctx context.Context, collection CollectionAPI, filter bson.M, opts *options.FindOptions) ([]primitive.ObjectID, error) {
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch document IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var result struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&result); err != nil {
			log.Printf("Failed to decode document ID: %v", err)
			continue
		}
		ids = append(ids, result.ID)
	}
	if err := cursor.Err(); err != nil {
		return ids, fmt.Errorf("cursor: %w", err)
	}
	return ids, nil
}

// createDocIndexes creates the indexes used by the finddoc queries.
func createDocIndexes(collection CollectionAPI) {
	mongoColl, ok := collection.(*MongoDBCollection)
	if !ok {
		log.Println("Index creation skipped: Collection is not a MongoDBCollection")
		return
	}

	log.Println("Creating indexes for insertdoc benchmark...")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "content", Value: "text"}}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	if _, err := mongoColl.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("Failed to create indexes: %v", err)
		return
	}
	log.Println("Indexes created successfully.")
}
