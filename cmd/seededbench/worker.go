package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// worker executes the operations of one benchmark thread. All randomness
// comes from streams derived from the run seed and the thread number.
type worker struct {
	thread     int
	collection CollectionAPI
	config     TestingConfig
	rate       *rateRecorder

	rnd     *Randomizer
	docs    *DocumentGenerator
	queries *QueryGenerator
}

func newWorker(thread int, collection CollectionAPI, config TestingConfig, rate *rateRecorder) *worker {
	seed := ThreadSeed(config.Seed, thread)
	return &worker{
		thread:     thread,
		collection: collection,
		config:     config,
		rate:       rate,
		rnd:        NewRandomizer(seed),
		docs:       NewDocumentGenerator(seed+0.25, config.Clock),
		queries:    NewQueryGenerator(config.QueryType, seed+0.5, config.Clock),
	}
}

func (w *worker) insert() {
	var doc interface{}
	if w.config.LargeDocs {
		doc = w.docs.GenerateLarge(w.thread)
	} else {
		doc = w.docs.GenerateSimple(w.thread)
	}
	_, err := w.collection.InsertOne(context.Background(), doc)
	if err == nil {
		w.rate.Mark(1)
	} else {
		log.Printf("Insert failed: %v", err)
	}
}

func (w *worker) insertDoc() {
	_, err := w.collection.InsertOne(context.Background(), w.docs.GenerateComplex(w.thread))
	if err == nil {
		w.rate.Mark(1)
	} else {
		log.Printf("Insertdoc failed: %v", err)
	}
}

func (w *worker) update(docID primitive.ObjectID) {
	filter := bson.M{"_id": docID}
	update := bson.M{"$set": bson.M{"updatedAt": w.now().Unix(), "rnd": w.rnd.RandomInt63()}}
	_, err := w.collection.UpdateOne(context.Background(), filter, update)
	if err == nil {
		w.rate.Mark(1)
	} else {
		log.Printf("Update failed for _id %v: %v", docID, err)
	}
}

func (w *worker) upsert(docID primitive.ObjectID) {
	filter := bson.M{"_id": docID}
	update := bson.M{"$set": bson.M{"updatedAt": w.now().Unix(), "rnd": w.rnd.RandomInt63()}}
	opts := options.Update().SetUpsert(true)
	_, err := w.collection.UpdateOne(context.Background(), filter, update, opts)
	if err == nil {
		w.rate.Mark(1)
	} else {
		log.Printf("Upsert failed for _id %v: %v", docID, err)
	}
}

func (w *worker) delete(docID primitive.ObjectID) {
	result, err := w.collection.DeleteOne(context.Background(), bson.M{"_id": docID})
	if err != nil {
		log.Printf("Delete failed for _id %v: %v", docID, err)
		return
	}
	if result.DeletedCount > 0 {
		w.rate.Mark(1)
	}
}

func (w *worker) findDoc() {
	filter := w.queries.Generate()
	opts := options.Find().
		SetLimit(10).
		SetProjection(bson.M{
			"_id":       1,
			"author":    1,
			"title":     1,
			"timestamp": 1,
		}).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	ctx := context.Background()
	cursor, err := w.collection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("Find failed: %v", err)
		return
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Failed to decode document: %v", err)
		}
	}
	if err := cursor.Err(); err != nil {
		log.Printf("Cursor error: %v", err)
	}
	w.rate.Mark(1)
}

// pick returns a random ID of partition. upsert restricts itself to the
// first half so that later operations hit documents created earlier.
func (w *worker) pick(partition []primitive.ObjectID, testType string) primitive.ObjectID {
	n := len(partition)
	if testType == "upsert" {
		n /= 2
	}
	return partition[w.rnd.RandomIntn(n)]
}

func (w *worker) now() time.Time {
	if w.config.Clock == nil {
		return time.Now()
	}
	return w.config.Clock.Now()
}
