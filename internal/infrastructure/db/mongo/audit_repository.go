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

const auditCollection = "admin_logs"

// AuditLogRepository is append-only: it exposes no update or delete.
type AuditLogRepository struct {
	coll *mongo.Collection
}

func NewAuditLogRepository(db *mongo.Database) *AuditLogRepository {
	return &AuditLogRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	ActionBy     *primitive.ObjectID `bson:"action_by"`
	ActionOn     *primitive.ObjectID `bson:"action_on,omitempty"`
	ActionOnName string              `bson:"action_on_name"`
	ActionType   string              `bson:"action_type"`
	Message      string              `bson:"message"`
	CreatedAt    time.Time           `bson:"created_at"`
}

func (r *AuditLogRepository) Append(ctx context.Context, e *domain.AuditLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toAuditDoc(e)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context) ([]*domain.AuditLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, auditListOptions())
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	var docs []mongoAuditEntry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode audit entries: %w", err)
	}

	out := make([]*domain.AuditLogEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromAuditDoc(d))
	}
	return out, nil
}

// Newest first; _id breaks ties between entries written in the same instant.
func auditListOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
}

func toAuditDoc(e *domain.AuditLogEntry) (mongoAuditEntry, error) {
	doc := mongoAuditEntry{
		ActionBy:     optionalID(e.ActionBy),
		ActionOn:     optionalID(e.ActionOn),
		ActionOnName: e.ActionOnName,
		ActionType:   string(e.ActionType),
		Message:      e.Message,
		CreatedAt:    e.CreatedAt,
	}
	if doc.ActionBy == nil {
		return mongoAuditEntry{}, fmt.Errorf("append audit entry: invalid actor id %q", e.ActionBy)
	}
	return doc, nil
}

func fromAuditDoc(d mongoAuditEntry) *domain.AuditLogEntry {
	return &domain.AuditLogEntry{
		ID:           d.ID.Hex(),
		ActionBy:     hexOrEmpty(d.ActionBy),
		ActionOn:     hexOrEmpty(d.ActionOn),
		ActionOnName: d.ActionOnName,
		ActionType:   domain.ActionType(d.ActionType),
		Message:      d.Message,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *AuditLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("admin_logs indexes: %w", err)
	}
	return nil
}
