package mongo

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

const sweetsCollection = "sweets"

// SweetRepository implements ports.SweetRepository backed by the sweets collection.
type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetsCollection)}
}

type sweetDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Quantity int                `bson:"quantity"`
	ImageURL string             `bson:"image_url"`
}

func (d sweetDoc) toDomain() domain.Sweet {
	return domain.Sweet{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Category: d.Category,
		Price:    d.Price,
		Quantity: d.Quantity,
		ImageURL: d.ImageURL,
	}
}

func docFields(s *domain.Sweet) bson.M {
	return bson.M{
		"name":      s.Name,
		"category":  s.Category,
		"price":     s.Price,
		"quantity":  s.Quantity,
		"image_url": s.ImageURL,
	}
}

// parseID converts the public string id to an ObjectID. A malformed id maps
// to ErrSweetNotFound: it cannot address any record in this id scheme.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrSweetNotFound
	}
	return oid, nil
}

func (r *SweetRepository) Insert(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, docFields(s))
	if err != nil {
		return nil, storeErr("insert sweet", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *s
	created.ID = oid.Hex()
	return &created, nil
}

func (r *SweetRepository) FindByName(ctx context.Context, name string) (*domain.Sweet, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SweetRepository) findOne(ctx context.Context, filter bson.M) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sweetDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, storeErr("find sweet", err)
	}

	s := doc.toDomain()
	return &s, nil
}

func (r *SweetRepository) FindAll(ctx context.Context) ([]domain.Sweet, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *SweetRepository) Search(ctx context.Context, filter ports.SearchFilter) ([]domain.Sweet, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": regexp.QuoteMeta(filter.Name), "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	return r.findMany(ctx, query)
}

func (r *SweetRepository) findMany(ctx context.Context, query bson.M) ([]domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, storeErr("find sweets", err)
	}
	defer cursor.Close(ctx)

	var results []domain.Sweet
	for cursor.Next(ctx) {
		var doc sweetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, storeErr("decode sweet", err)
		}
		results = append(results, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, storeErr("iterate sweets", err)
	}
	return results, nil
}

func (r *SweetRepository) Update(ctx context.Context, id string, s *domain.Sweet) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": docFields(s)})
	if err != nil {
		return storeErr("update sweet", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr("delete sweet", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// DecrementQuantity performs a single conditional update so that stock
// can never be driven below zero, even under concurrent purchases.
func (r *SweetRepository) DecrementQuantity(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "quantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"quantity": -1}},
	)
	if err != nil {
		return storeErr("purchase sweet", err)
	}
	if res.MatchedCount == 0 {
		// Either the sweet is missing or it exists with zero stock.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrOutOfStock
	}
	return nil
}

func (r *SweetRepository) IncrementQuantity(ctx context.Context, id string, amount int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"quantity": amount}})
	if err != nil {
		return storeErr("restock sweet", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// EnsureIndexes creates the name index used by the duplicate check and search.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	return err
}
