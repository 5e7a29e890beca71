package documentstore

import (
	"context"
	"hospital-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	Client *mongo.Client
	DbName string
}

// NewMongoStore wraps the shared client handle. The client may be nil when
// the startup connection failed; every operation then reports the store as
// unavailable instead of panicking.
func NewMongoStore(client *mongo.Client, dbName string) DocumentStore {
	return &MongoStore{
		Client: client,
		DbName: dbName,
	}
}

func (s *MongoStore) collection(name string) *mongo.Collection {
	return s.Client.Database(s.DbName).Collection(name)
}

func (s *MongoStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	if s.Client == nil {
		return "", exceptions.ErrStoreNotConnected(nil)
	}
	result, err := s.collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoStore) List(ctx context.Context, collection string, limit int, out interface{}) error {
	if s.Client == nil {
		return exceptions.ErrStoreNotConnected(nil)
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.collection(collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	if s.Client == nil {
		return false, exceptions.ErrStoreNotConnected(nil)
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, exceptions.ErrStoreMalformedIdentifier(err)
	}
	err = s.collection(collection).FindOne(ctx, bson.M{"_id": objectID}).Decode(out)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}

func (s *MongoStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) (bool, error) {
	if s.Client == nil {
		return false, exceptions.ErrStoreNotConnected(nil)
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, exceptions.ErrStoreMalformedIdentifier(err)
	}
	update := bson.M{"$set": bson.M(fields)}
	result, err := s.collection(collection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}
