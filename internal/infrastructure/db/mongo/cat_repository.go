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

const catsCollection = "cats"

type MongoCatRepository struct {
	coll *mongo.Collection
}

func NewCatRepository(db *mongo.Database) *MongoCatRepository {
	return &MongoCatRepository{coll: db.Collection(catsCollection)}
}

type mongoCat struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Age        int                `bson:"age"`
	Breed      string             `bson:"breed"`
	OwnerEmail string             `bson:"owner_email"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	DeletedAt  *time.Time         `bson:"deleted_at,omitempty"`
}

func (mc mongoCat) toDomain() *domain.Cat {
	return &domain.Cat{
		ID:         mc.ID.Hex(),
		Name:       mc.Name,
		Age:        mc.Age,
		Breed:      mc.Breed,
		OwnerEmail: mc.OwnerEmail,
		CreatedAt:  mc.CreatedAt,
		UpdatedAt:  mc.UpdatedAt,
		DeletedAt:  mc.DeletedAt,
	}
}

func (r *MongoCatRepository) Create(ctx context.Context, cat *domain.Cat) (*domain.Cat, error) {
	doc := mongoCat{
		Name:       cat.Name,
		Age:        cat.Age,
		Breed:      cat.Breed,
		OwnerEmail: cat.OwnerEmail,
		CreatedAt:  cat.CreatedAt,
		UpdatedAt:  cat.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cat: %w", err)
	}

	created := *cat
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCatRepository) FindByID(ctx context.Context, id string) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	var mc mongoCat
	filter := bson.M{"_id": oid, "deleted_at": nil}
	if err := r.coll.FindOne(ctx, filter).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCatRepository) List(ctx context.Context, ownerEmail string) ([]*domain.Cat, error) {
	filter := bson.M{"deleted_at": nil}
	if ownerEmail != "" {
		filter["owner_email"] = ownerEmail
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	defer cursor.Close(ctx)

	var cats []*domain.Cat
	for cursor.Next(ctx) {
		var mc mongoCat
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode cat: %w", err)
		}
		cats = append(cats, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	return cats, nil
}

func (r *MongoCatRepository) Update(ctx context.Context, cat *domain.Cat) (*domain.Cat, error) {
	oid, err := primitive.ObjectIDFromHex(cat.ID)
	if err != nil {
		return nil, domain.ErrCatNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":        cat.Name,
		"age":         cat.Age,
		"breed":       cat.Breed,
		"owner_email": cat.OwnerEmail,
		"updated_at":  cat.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "deleted_at": nil}, update)
	if err != nil {
		return nil, fmt.Errorf("update cat: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCatNotFound
	}
	return cat, nil
}

func (r *MongoCatRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCatNotFound
	}

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now}},
	)
	if err != nil {
		return fmt.Errorf("delete cat: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}
