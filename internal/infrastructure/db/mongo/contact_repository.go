package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propertyhub/marketplace/internal/core/domain"
)

const contactsCollection = "contacts"

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Name      string              `bson:"name"`
	Email     string              `bson:"email"`
	Message   string              `bson:"message"`
	Staff     string              `bson:"staff"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
}

func (m *mongoContact) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Staff:     m.Staff,
		UserID:    hexOrEmpty(m.UserID),
		CreatedAt: m.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContact{
		ID:        primitive.NewObjectID(),
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Staff:     msg.Staff,
		UserID:    optionalID(msg.UserID),
		CreatedAt: msg.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) ListBySender(ctx context.Context, userID string) ([]*domain.ContactMessage, error) {
	uid := optionalID(userID)
	if uid == nil {
		return []*domain.ContactMessage{}, nil
	}
	return r.find(ctx, bson.M{"user_id": *uid})
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	return r.find(ctx, bson.M{})
}

func (r *ContactRepository) find(ctx context.Context, filter bson.M) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	var docs []mongoContact
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contact messages: %w", err)
	}
	out := make([]*domain.ContactMessage, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("contacts indexes: %w", err)
	}
	return nil
}
