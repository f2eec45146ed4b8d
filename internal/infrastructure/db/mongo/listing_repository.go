package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propertyhub/marketplace/internal/core/domain"
	"github.com/propertyhub/marketplace/internal/core/ports"
)

const listingsCollection = "listings"

// ListingRepository stores domain.Listing documents as-is; the driver
// generates the ObjectID and decodes it back into the string id.
type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *l
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid.Hex()
	}
	return &doc, nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := parseID(id, domain.ErrListingNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Listing
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return &l, nil
}

func (r *ListingRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Listing, error) {
	oids := parseIDs(ids)
	if len(oids) == 0 {
		return []*domain.Listing{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
}

// Update replaces the stored document, keeping its _id.
func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	oid, err := parseID(l.ID, domain.ErrListingNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *l
	doc.ID = ""
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrListingNotFound
	}
	doc.ID = l.ID
	return &doc, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id, domain.ErrListingNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Search(ctx context.Context, f ports.ListingFilter) ([]*domain.Listing, error) {
	return r.find(ctx, searchFilter(f), searchOptions(f))
}

func (r *ListingRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Listing, error) {
	return r.find(ctx, bson.M{"user_ref": userID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *ListingRepository) ListAll(ctx context.Context) ([]*domain.Listing, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *ListingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	out := make([]*domain.Listing, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return out, nil
}

// searchFilter translates the public search parameters. Boolean flags only
// narrow when set; free text is matched literally.
func searchFilter(f ports.ListingFilter) bson.M {
	filter := bson.M{}
	if f.SearchTerm != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.SearchTerm), Options: "i"}
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Offer {
		filter["offer"] = true
	}
	if f.Furnished {
		filter["furnished"] = true
	}
	if f.Parking {
		filter["parking"] = true
	}
	if f.City != "" {
		filter["city"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(f.City) + "$", Options: "i"}
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["regular_price"] = price
	}
	return filter
}

func searchOptions(f ports.ListingFilter) *options.FindOptions {
	field := "created_at"
	if f.SortBy == "regularPrice" {
		field = "regular_price"
	}
	dir := -1
	if f.Ascending {
		dir = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))
}

func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_ref", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "regular_price", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("listings indexes: %w", err)
	}
	return nil
}
