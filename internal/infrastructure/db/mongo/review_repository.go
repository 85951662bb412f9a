package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gamevault/review-system/internal/core/domain"
)

const reviewCollection = "reviews"

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(reviewCollection)}
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	GameID    primitive.ObjectID `bson:"game_id"`
	Text      string             `bson:"text"`
	Rating    int                `bson:"rating"`
	CreatedAt time.Time          `bson:"created_at"`
	// Populated by the $lookup stage on list queries.
	Game []gameDoc `bson:"game,omitempty"`
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	gameOID, err := primitive.ObjectIDFromHex(review.GameID)
	if err != nil {
		return nil, domain.ErrGameNotFound
	}

	doc := reviewDoc{
		Username:  review.Username,
		GameID:    gameOID,
		Text:      review.Text,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns all reviews newest first, each joined with its catalog entry
// via $lookup against the games collection.
func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: gameCollection},
			{Key: "localField", Value: "game_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "game"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	reviews := make([]*domain.Review, 0)
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}

		review := &domain.Review{
			ID:        doc.ID.Hex(),
			Username:  doc.Username,
			GameID:    doc.GameID.Hex(),
			Text:      doc.Text,
			Rating:    doc.Rating,
			CreatedAt: doc.CreatedAt,
		}
		if len(doc.Game) > 0 {
			review.Game = doc.Game[0].toDomain()
		}
		reviews = append(reviews, review)
	}
	return reviews, cur.Err()
}
