package mongodb

import (
	"context"
	"regexp"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
)

type propertyDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID          string             `bson:"IdOwner"`
	Name             string             `bson:"Name"`
	PropertyType     string             `bson:"PropertyType"`
	Address          string             `bson:"Address"`
	Description      string             `bson:"Description"`
	Price            int64              `bson:"Price"`
	Rooms            int64              `bson:"Rooms"`
	Bathrooms        int64              `bson:"Bathrooms"`
	Area             int64              `bson:"Area"`
	YearConstruction int64              `bson:"YearConstruction"`
	AnnualTax        int64              `bson:"AnnualTax"`
	MonthlyExpenses  int64              `bson:"MonthlyExpenses"`
	Features         []string           `bson:"Features"`
	Status           string             `bson:"Status"`
	CreatedAt        time.Time          `bson:"CreatedAt"`
	UpdatedAt        time.Time          `bson:"UpdatedAt"`
}

func newPropertyDocument(p *entity.Property) propertyDocument {
	return propertyDocument{
		OwnerID:          p.OwnerID,
		Name:             p.Name,
		PropertyType:     p.Type,
		Address:          p.Address,
		Description:      p.Description,
		Price:            p.Price,
		Rooms:            p.Rooms,
		Bathrooms:        p.Bathrooms,
		Area:             p.Area,
		YearConstruction: p.YearConstruction,
		AnnualTax:        p.AnnualTax,
		MonthlyExpenses:  p.MonthlyExpenses,
		Features:         p.Features,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (d propertyDocument) toEntity() *entity.Property {
	features := d.Features
	if features == nil {
		features = []string{}
	}

	return &entity.Property{
		ID: d.ID.Hex(),
		PropertyFields: entity.PropertyFields{
			OwnerID:          d.OwnerID,
			Name:             d.Name,
			Type:             d.PropertyType,
			Address:          d.Address,
			Description:      d.Description,
			Price:            d.Price,
			Rooms:            d.Rooms,
			Bathrooms:        d.Bathrooms,
			Area:             d.Area,
			YearConstruction: d.YearConstruction,
			AnnualTax:        d.AnnualTax,
			MonthlyExpenses:  d.MonthlyExpenses,
			Features:         features,
			Status:           entity.PropertyStatus(d.Status),
		},
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

var sortFields = map[entity.SortField]string{
	entity.SortByPrice: "Price",
	entity.SortByDate:  "CreatedAt",
	entity.SortByArea:  "Area",
}

type propertyRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewPropertyRepository creates a property repository over db.collection.
func NewPropertyRepository(db *mongo.Database, collection string, logger *zap.Logger) repository.PropertyRepository {
	return &propertyRepository{
		coll:   db.Collection(collection),
		logger: logger,
	}
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	return r.find(ctx, bson.M{})
}

func (r *propertyRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*entity.Property, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError(err, "failed to query properties")
	}

	var docs []propertyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapError(err, "failed to decode properties")
	}

	properties := make([]*entity.Property, 0, len(docs))
	for _, d := range docs {
		properties = append(properties, d.toEntity())
	}
	return properties, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, notFound("property not found")
	}

	var doc propertyDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, wrapError(err, "property not found")
	}
	return doc.toEntity(), nil
}

func (r *propertyRepository) Search(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.Property, int64, error) {
	query := buildSearchFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, wrapError(err, "failed to count properties")
	}
	if total == 0 {
		return []*entity.Property{}, 0, nil
	}

	direction := -1
	if filter.SortOrder == entity.SortAsc {
		direction = 1
	}
	sortField, ok := sortFields[filter.SortBy]
	if !ok {
		sortField = sortFields[entity.SortByDate]
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: direction}, {Key: "_id", Value: direction}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))

	properties, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func buildSearchFilter(f entity.PropertyFilter) bson.M {
	query := bson.M{}

	price := bson.M{}
	if f.PriceMin != nil {
		price["$gte"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		price["$lte"] = *f.PriceMax
	}
	if len(price) > 0 {
		query["Price"] = price
	}

	if f.MinRooms != nil {
		query["Rooms"] = bson.M{"$gte": *f.MinRooms}
	}
	if f.MinBathrooms != nil {
		query["Bathrooms"] = bson.M{"$gte": *f.MinBathrooms}
	}
	if f.PropertyType != "" {
		query["PropertyType"] = f.PropertyType
	}
	if f.City != "" {
		query["Address"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.City), Options: "i"}
	}
	if f.Status != "" {
		query["Status"] = string(f.Status)
	}
	if f.OwnerID != "" {
		query["IdOwner"] = f.OwnerID
	}

	return query
}

func (r *propertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"IdOwner": ownerID})
	if err != nil {
		return 0, wrapError(err, "failed to count owner properties")
	}
	return n, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	doc := newPropertyDocument(property)
	doc.ID = primitive.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return wrapError(err, "failed to insert property")
	}

	property.ID = doc.ID.Hex()
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	oid, ok := parseID(property.ID)
	if !ok {
		return nil
	}

	doc := newPropertyDocument(property)
	doc.ID = oid

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return wrapError(err, "failed to update property")
	}
	if res.MatchedCount == 0 {
		r.logger.Debug("Property update matched nothing", zap.String("property_id", property.ID))
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return wrapError(err, "failed to delete property")
	}
	return nil
}

type statusGroup struct {
	Status     string `bson:"_id"`
	Count      int64  `bson:"count"`
	TotalPrice int64  `bson:"totalPrice"`
}

func (r *propertyRepository) StatsByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$Status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalPrice", Value: bson.D{{Key: "$sum", Value: "$Price"}}},
		}}},
	}

	var groups []statusGroup
	if err := r.aggregate(ctx, pipeline, &groups); err != nil {
		return nil, err
	}

	out := make([]entity.StatusCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, entity.StatusCount{
			Status:     entity.PropertyStatus(g.Status),
			Count:      g.Count,
			TotalPrice: g.TotalPrice,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

type typeGroup struct {
	PropertyType string `bson:"_id"`
	Count        int64  `bson:"count"`
}

func (r *propertyRepository) StatsByType(ctx context.Context) ([]entity.TypeCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$PropertyType"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	var groups []typeGroup
	if err := r.aggregate(ctx, pipeline, &groups); err != nil {
		return nil, err
	}

	out := make([]entity.TypeCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, entity.TypeCount{PropertyType: g.PropertyType, Count: g.Count})
	}
	return out, nil
}

func (r *propertyRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return wrapError(err, "failed to aggregate properties")
	}
	if err := cursor.All(ctx, out); err != nil {
		return wrapError(err, "failed to decode aggregation")
	}
	return nil
}
