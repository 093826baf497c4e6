package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
)

// ownerDocument keeps the element names of the existing owner collection.
type ownerDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"Name"`
	DNI       string             `bson:"DNI"`
	Phone     string             `bson:"Phone"`
	Email     string             `bson:"Email"`
	Address   string             `bson:"Address"`
	Photo     string             `bson:"Photo"`
	Birthday  string             `bson:"Birthday"`
	CreatedAt time.Time          `bson:"CreatedAt"`
	UpdatedAt time.Time          `bson:"UpdatedAt"`
}

func newOwnerDocument(o *entity.Owner) ownerDocument {
	return ownerDocument{
		Name:      o.Name,
		DNI:       o.DNI,
		Phone:     o.Phone,
		Email:     o.Email,
		Address:   o.Address,
		Photo:     o.Photo,
		Birthday:  o.Birthday,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (d ownerDocument) toEntity() *entity.Owner {
	return &entity.Owner{
		ID: d.ID.Hex(),
		OwnerFields: entity.OwnerFields{
			DNI:      d.DNI,
			Name:     d.Name,
			Phone:    d.Phone,
			Email:    d.Email,
			Address:  d.Address,
			Photo:    d.Photo,
			Birthday: d.Birthday,
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type ownerRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewOwnerRepository creates an owner repository over db.collection.
func NewOwnerRepository(db *mongo.Database, collection string, logger *zap.Logger) repository.OwnerRepository {
	return &ownerRepository{
		coll:   db.Collection(collection),
		logger: logger,
	}
}

func (r *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapError(err, "failed to list owners")
	}

	var docs []ownerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapError(err, "failed to decode owners")
	}

	owners := make([]*entity.Owner, 0, len(docs))
	for _, d := range docs {
		owners = append(owners, d.toEntity())
	}
	return owners, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, notFound("owner not found")
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ownerRepository) FindByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	return r.findOne(ctx, bson.M{"DNI": dni})
}

func (r *ownerRepository) findOne(ctx context.Context, filter bson.M) (*entity.Owner, error) {
	var doc ownerDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, wrapError(err, "owner not found")
	}
	return doc.toEntity(), nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	doc := newOwnerDocument(owner)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapError(err, "failed to insert owner")
	}

	owner.ID = doc.ID.Hex()
	return nil
}

func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	oid, ok := parseID(owner.ID)
	if !ok {
		return nil
	}

	doc := newOwnerDocument(owner)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return wrapError(err, "failed to update owner")
	}
	if res.MatchedCount == 0 {
		r.logger.Debug("Owner update matched nothing", zap.String("owner_id", owner.ID))
	}
	return nil
}

func (r *ownerRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return wrapError(err, "failed to delete owner")
	}
	return nil
}

func (r *ownerRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, wrapError(err, "failed to count owners")
	}
	return n, nil
}
