package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// propertyImageDocument stores IdProperty as an ObjectID, like the existing collection.
type propertyImageDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID primitive.ObjectID `bson:"IdProperty"`
	File       string             `bson:"File"`
	Enable     bool               `bson:"Enable"`
}

func (d propertyImageDocument) toEntity() *entity.PropertyImage {
	return &entity.PropertyImage{
		ID:         d.ID.Hex(),
		PropertyID: d.PropertyID.Hex(),
		File:       d.File,
		Enable:     d.Enable,
	}
}

type propertyImageRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewPropertyImageRepository creates an image repository over db.collection.
func NewPropertyImageRepository(db *mongo.Database, collection string, logger *zap.Logger) repository.PropertyImageRepository {
	return &propertyImageRepository{
		coll:   db.Collection(collection),
		logger: logger,
	}
}

func (r *propertyImageRepository) FindByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyImage, error) {
	oid, ok := parseID(propertyID)
	if !ok {
		return nil, nil
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc propertyImageDocument
	err := r.coll.FindOne(ctx, bson.M{"IdProperty": oid}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError(err, "failed to find property image")
	}
	return doc.toEntity(), nil
}

func (r *propertyImageRepository) FindByPropertyIDs(ctx context.Context, propertyIDs []string) (map[string]*entity.PropertyImage, error) {
	oids := make([]primitive.ObjectID, 0, len(propertyIDs))
	for _, id := range propertyIDs {
		if oid, ok := parseID(id); ok {
			oids = append(oids, oid)
		}
	}

	images := make(map[string]*entity.PropertyImage, len(oids))
	if len(oids) == 0 {
		return images, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"IdProperty": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, wrapError(err, "failed to query property images")
	}

	var docs []propertyImageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapError(err, "failed to decode property images")
	}

	for _, d := range docs {
		img := d.toEntity()
		if _, seen := images[img.PropertyID]; !seen {
			images[img.PropertyID] = img
		}
	}
	return images, nil
}

func (r *propertyImageRepository) Create(ctx context.Context, image *entity.PropertyImage) error {
	propertyOID, ok := parseID(image.PropertyID)
	if !ok {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid property id for image", nil)
	}

	doc := propertyImageDocument{
		ID:         primitive.NewObjectID(),
		PropertyID: propertyOID,
		File:       image.File,
		Enable:     image.Enable,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapError(err, "failed to insert property image")
	}

	image.ID = doc.ID.Hex()
	return nil
}

func (r *propertyImageRepository) Update(ctx context.Context, image *entity.PropertyImage) error {
	oid, ok := parseID(image.ID)
	if !ok {
		return nil
	}
	propertyOID, ok := parseID(image.PropertyID)
	if !ok {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid property id for image", nil)
	}

	doc := propertyImageDocument{
		ID:         oid,
		PropertyID: propertyOID,
		File:       image.File,
		Enable:     image.Enable,
	}

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		return wrapError(err, "failed to update property image")
	}
	return nil
}

func (r *propertyImageRepository) DeleteByPropertyID(ctx context.Context, propertyID string) (int64, error) {
	oid, ok := parseID(propertyID)
	if !ok {
		return 0, nil
	}

	res, err := r.coll.DeleteMany(ctx, bson.M{"IdProperty": oid})
	if err != nil {
		return 0, wrapError(err, "failed to delete property images")
	}
	return res.DeletedCount, nil
}
