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

const visitsCollection = "visit_requests"

type VisitRequestRepository struct {
	coll *mongo.Collection
}

func NewVisitRequestRepository(db *mongo.Database) *VisitRequestRepository {
	return &VisitRequestRepository{coll: db.Collection(visitsCollection)}
}

type mongoVisit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	ListingID primitive.ObjectID `bson:"listing_id"`
	VisitDate string             `bson:"visit_date"`
	VisitTime string             `bson:"visit_time"`
	Message   string             `bson:"message,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m *mongoVisit) toDomain() *domain.VisitRequest {
	return &domain.VisitRequest{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		ListingID: m.ListingID.Hex(),
		VisitDate: m.VisitDate,
		VisitTime: m.VisitTime,
		Message:   m.Message,
		Status:    domain.VisitStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *VisitRequestRepository) Create(ctx context.Context, v *domain.VisitRequest) (*domain.VisitRequest, error) {
	userID, err := parseID(v.UserID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	listingID, err := parseID(v.ListingID, domain.ErrListingNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoVisit{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ListingID: listingID,
		VisitDate: v.VisitDate,
		VisitTime: v.VisitTime,
		Message:   v.Message,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert visit request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VisitRequestRepository) FindByID(ctx context.Context, id string) (*domain.VisitRequest, error) {
	oid, err := parseID(id, domain.ErrVisitNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoVisit
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisitNotFound
		}
		return nil, fmt.Errorf("find visit request: %w", err)
	}
	return m.toDomain(), nil
}

// Decide sets status only while the request is still pending, so concurrent
// decisions resolve to exactly one winner.
func (r *VisitRequestRepository) Decide(ctx context.Context, id string, status domain.VisitStatus) (*domain.VisitRequest, error) {
	oid, err := parseID(id, domain.ErrVisitNotFound)
	if err != nil {
		return nil, err
	}

	updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "status": string(domain.VisitPending)}
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoVisit
	err = r.coll.FindOneAndUpdate(updateCtx, filter, update, opts).Decode(&m)
	if err == nil {
		return m.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("decide visit request: %w", err)
	}

	// Either the request does not exist or it already left pending.
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrVisitAlreadyDecided
}

func (r *VisitRequestRepository) ListForUser(ctx context.Context, userID string, listingIDs []string) ([]*domain.VisitRequest, error) {
	or := bson.A{}
	if oid := optionalID(userID); oid != nil {
		or = append(or, bson.M{"user_id": *oid})
	}
	if oids := parseIDs(listingIDs); len(oids) > 0 {
		or = append(or, bson.M{"listing_id": bson.M{"$in": oids}})
	}
	if len(or) == 0 {
		return []*domain.VisitRequest{}, nil
	}
	return r.find(ctx, bson.M{"$or": or})
}

func (r *VisitRequestRepository) ListAll(ctx context.Context) ([]*domain.VisitRequest, error) {
	return r.find(ctx, bson.M{})
}

func (r *VisitRequestRepository) find(ctx context.Context, filter bson.M) ([]*domain.VisitRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find visit requests: %w", err)
	}
	var docs []mongoVisit
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode visit requests: %w", err)
	}
	out := make([]*domain.VisitRequest, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *VisitRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("visit_requests indexes: %w", err)
	}
	return nil
}
