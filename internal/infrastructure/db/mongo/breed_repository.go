package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

const breedsCollection = "breeds"

type MongoBreedRepository struct {
	coll *mongo.Collection
}

func NewBreedRepository(db *mongo.Database) *MongoBreedRepository {
	return &MongoBreedRepository{coll: db.Collection(breedsCollection)}
}

type mongoBreed struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
	DeletedAt *time.Time         `bson:"deleted_at,omitempty"`
}

func (mb mongoBreed) toDomain() *domain.Breed {
	return &domain.Breed{
		ID:        mb.ID.Hex(),
		Name:      mb.Name,
		CreatedAt: mb.CreatedAt,
		UpdatedAt: mb.UpdatedAt,
		DeletedAt: mb.DeletedAt,
	}
}

func (r *MongoBreedRepository) Create(ctx context.Context, breed *domain.Breed) (*domain.Breed, error) {
	doc := mongoBreed{
		Name:      breed.Name,
		CreatedAt: breed.CreatedAt,
		UpdatedAt: breed.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBreedExists
		}
		return nil, fmt.Errorf("insert breed: %w", err)
	}

	created := *breed
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoBreedRepository) FindByID(ctx context.Context, id string) (*domain.Breed, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBreedNotFound
	}

	var mb mongoBreed
	filter := bson.M{"_id": oid, "deleted_at": nil}
	if err := r.coll.FindOne(ctx, filter).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBreedNotFound
		}
		return nil, fmt.Errorf("find breed: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *MongoBreedRepository) FindByName(ctx context.Context, name string) (*domain.Breed, error) {
	var mb mongoBreed
	filter := bson.M{"name": name, "deleted_at": nil}
	if err := r.coll.FindOne(ctx, filter).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBreedNotFound
		}
		return nil, fmt.Errorf("find breed by name: %w", err)
	}
	return mb.toDomain(), nil
}

func (r *MongoBreedRepository) List(ctx context.Context) ([]*domain.Breed, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"deleted_at": nil}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	defer cursor.Close(ctx)

	var breeds []*domain.Breed
	for cursor.Next(ctx) {
		var mb mongoBreed
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode breed: %w", err)
		}
		breeds = append(breeds, mb.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

func (r *MongoBreedRepository) Update(ctx context.Context, breed *domain.Breed) (*domain.Breed, error) {
	oid, err := primitive.ObjectIDFromHex(breed.ID)
	if err != nil {
		return nil, domain.ErrBreedNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":       breed.Name,
		"updated_at": breed.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "deleted_at": nil}, update)
	if err != nil {
		return nil, fmt.Errorf("update breed: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBreedNotFound
	}
	return breed, nil
}

func (r *MongoBreedRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBreedNotFound
	}

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now}},
	)
	if err != nil {
		return fmt.Errorf("delete breed: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBreedNotFound
	}
	return nil
}
