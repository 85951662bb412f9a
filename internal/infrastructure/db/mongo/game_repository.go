package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gamevault/review-system/internal/core/domain"
)

const gameCollection = "games"

type GameRepository struct {
	coll *mongo.Collection
}

func NewGameRepository(db *mongo.Database) *GameRepository {
	return &GameRepository{coll: db.Collection(gameCollection)}
}

type gameDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Genre       string             `bson:"genre"`
	ReleaseYear int                `bson:"release_year"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d gameDoc) toDomain() *domain.Game {
	return &domain.Game{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseYear: d.ReleaseYear,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *GameRepository) Create(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	doc := gameDoc{
		Title:       g.Title,
		Genre:       g.Genre,
		ReleaseYear: g.ReleaseYear,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert game: %w", err)
	}

	created := *g
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *GameRepository) Update(ctx context.Context, id string, g *domain.Game) (*domain.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGameNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":        g.Title,
		"genre":        g.Genre,
		"release_year": g.ReleaseYear,
		"updated_at":   g.UpdatedAt,
	}}

	var doc gameDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("update game: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GameRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGameNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) FindByID(ctx context.Context, id string) (*domain.Game, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGameNotFound
	}

	var doc gameDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("find game: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer cur.Close(ctx)

	games := make([]*domain.Game, 0)
	for cur.Next(ctx) {
		var doc gameDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode game: %w", err)
		}
		games = append(games, doc.toDomain())
	}
	return games, cur.Err()
}
