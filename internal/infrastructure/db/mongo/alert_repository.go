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

	"github.com/propertyhub/marketplace/internal/core/domain"
)

const alertsCollection = "alerts"

type AlertRepository struct {
	coll *mongo.Collection
}

func NewAlertRepository(db *mongo.Database) *AlertRepository {
	return &AlertRepository{coll: db.Collection(alertsCollection)}
}

type mongoAlert struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Type      string             `bson:"type"`
	IsRead    bool               `bson:"is_read"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m *mongoAlert) toDomain() *domain.Alert {
	return &domain.Alert{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		Title:     m.Title,
		Message:   m.Message,
		Type:      domain.AlertType(m.Type),
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// InsertMany stores alerts unordered; recipients with unparsable ids are skipped.
func (r *AlertRepository) InsertMany(ctx context.Context, alerts []*domain.Alert) error {
	docs := make([]interface{}, 0, len(alerts))
	for _, a := range alerts {
		uid := optionalID(a.UserID)
		if uid == nil {
			continue
		}
		createdAt := a.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		docs = append(docs, mongoAlert{
			ID:        primitive.NewObjectID(),
			UserID:    *uid,
			Title:     a.Title,
			Message:   a.Message,
			Type:      string(a.Type),
			IsRead:    a.IsRead,
			CreatedAt: createdAt,
		})
	}
	if len(docs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}
	return nil
}

func (r *AlertRepository) FindByID(ctx context.Context, id string) (*domain.Alert, error) {
	oid, err := parseID(id, domain.ErrAlertNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoAlert
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("find alert: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Alert, error) {
	uid := optionalID(userID)
	if uid == nil {
		return []*domain.Alert{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": *uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	var docs []mongoAlert
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}
	out := make([]*domain.Alert, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *AlertRepository) MarkRead(ctx context.Context, id string) (*domain.Alert, error) {
	oid, err := parseID(id, domain.ErrAlertNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoAlert
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_read": true}}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAlertNotFound
		}
		return nil, fmt.Errorf("mark alert read: %w", err)
	}
	return m.toDomain(), nil
}

func (r *AlertRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("alerts indexes: %w", err)
	}
	return nil
}
