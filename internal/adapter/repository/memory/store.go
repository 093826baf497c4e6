// Package memory implements the domain repositories on process memory.
// It backs local runs and end-to-end tests; data is lost on restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// Store holds every collection behind one lock.
type Store struct {
	mu         sync.RWMutex
	owners     map[string]*entity.Owner
	properties map[string]*entity.Property
	images     map[string]*entity.PropertyImage
}

func NewStore() *Store {
	return &Store{
		owners:     make(map[string]*entity.Owner),
		properties: make(map[string]*entity.Property),
		images:     make(map[string]*entity.PropertyImage),
	}
}

// NewRepositories exposes store through the domain repository interfaces.
func NewRepositories(store *Store) *repository.Repositories {
	repos := repository.NewRepositories(
		&ownerRepository{s: store},
		&propertyRepository{s: store},
		&propertyImageRepository{s: store},
	)
	repos.Ping = func(context.Context) error { return nil }
	return repos
}

// Ids look like the ones MongoDB assigns so clients cannot tell the stores apart.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func notFound(message string) error {
	return apperrors.NewAppError(apperrors.ErrNotFound, message, nil)
}

func copyOwner(o *entity.Owner) *entity.Owner {
	c := *o
	return &c
}

func copyProperty(p *entity.Property) *entity.Property {
	c := *p
	c.Features = append([]string{}, p.Features...)
	return &c
}

func copyImage(img *entity.PropertyImage) *entity.PropertyImage {
	c := *img
	return &c
}

type ownerRepository struct {
	s *Store
}

func (r *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Owner, 0, len(r.s.owners))
	for _, o := range r.s.owners {
		out = append(out, copyOwner(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return nil, notFound("owner not found")
	}
	return copyOwner(o), nil
}

func (r *ownerRepository) FindByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var match *entity.Owner
	for _, o := range r.s.owners {
		if o.DNI == dni && (match == nil || o.ID < match.ID) {
			match = o
		}
	}
	if match == nil {
		return nil, notFound("owner not found")
	}
	return copyOwner(match), nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owner.ID = newID()
	r.s.owners[owner.ID] = copyOwner(owner)
	return nil
}

func (r *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[owner.ID]; ok {
		r.s.owners[owner.ID] = copyOwner(owner)
	}
	return nil
}

func (r *ownerRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.owners, id)
	return nil
}

func (r *ownerRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.owners)), nil
}

type propertyRepository struct {
	s *Store
}

func (r *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*entity.Property, 0, len(r.s.properties))
	for _, p := range r.s.properties {
		out = append(out, copyProperty(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.properties[id]
	if !ok {
		return nil, notFound("property not found")
	}
	return copyProperty(p), nil
}

func (r *propertyRepository) Search(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.Property, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matches []*entity.Property
	for _, p := range r.s.properties {
		if matchesFilter(p, filter) {
			matches = append(matches, p)
		}
	}

	sortProperties(matches, filter.SortBy, filter.SortOrder)

	total := int64(len(matches))
	start := page.Offset()
	if start < 0 || start >= len(matches) {
		return []*entity.Property{}, total, nil
	}
	end := start + page.Limit
	if end > len(matches) {
		end = len(matches)
	}

	out := make([]*entity.Property, 0, end-start)
	for _, p := range matches[start:end] {
		out = append(out, copyProperty(p))
	}
	return out, total, nil
}

func matchesFilter(p *entity.Property, f entity.PropertyFilter) bool {
	switch {
	case f.PriceMin != nil && p.Price < *f.PriceMin:
		return false
	case f.PriceMax != nil && p.Price > *f.PriceMax:
		return false
	case f.MinRooms != nil && p.Rooms < *f.MinRooms:
		return false
	case f.MinBathrooms != nil && p.Bathrooms < *f.MinBathrooms:
		return false
	case f.PropertyType != "" && p.Type != f.PropertyType:
		return false
	case f.City != "" && !strings.Contains(strings.ToLower(p.Address), strings.ToLower(f.City)):
		return false
	case f.Status != "" && p.Status != f.Status:
		return false
	case f.OwnerID != "" && p.OwnerID != f.OwnerID:
		return false
	}
	return true
}

// sortProperties orders by the sort key, breaking ties by ID in the same direction.
func sortProperties(items []*entity.Property, by entity.SortField, order entity.SortOrder) {
	key := func(p *entity.Property) int64 {
		switch by {
		case entity.SortByPrice:
			return p.Price
		case entity.SortByArea:
			return p.Area
		default:
			return p.CreatedAt.UnixNano()
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if order == entity.SortAsc {
			a, b = b, a
		}
		ka, kb := key(a), key(b)
		if ka != kb {
			return ka > kb
		}
		return a.ID > b.ID
	})
}

func (r *propertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, p := range r.s.properties {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	property.ID = newID()
	r.s.properties[property.ID] = copyProperty(property)
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.properties[property.ID]; ok {
		r.s.properties[property.ID] = copyProperty(property)
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.properties, id)
	return nil
}

func (r *propertyRepository) StatsByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	groups := make(map[entity.PropertyStatus]*entity.StatusCount)
	for _, p := range r.s.properties {
		g, ok := groups[p.Status]
		if !ok {
			g = &entity.StatusCount{Status: p.Status}
			groups[p.Status] = g
		}
		g.Count++
		g.TotalPrice += p.Price
	}

	out := make([]entity.StatusCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

func (r *propertyRepository) StatsByType(ctx context.Context) ([]entity.TypeCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, p := range r.s.properties {
		counts[p.Type]++
	}

	out := make([]entity.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, entity.TypeCount{PropertyType: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].PropertyType < out[j].PropertyType
	})
	return out, nil
}

type propertyImageRepository struct {
	s *Store
}

// firstImage returns the lowest-ID image of propertyID. Caller holds the lock.
func (r *propertyImageRepository) firstImage(propertyID string) *entity.PropertyImage {
	var first *entity.PropertyImage
	for _, img := range r.s.images {
		if img.PropertyID == propertyID && (first == nil || img.ID < first.ID) {
			first = img
		}
	}
	return first
}

func (r *propertyImageRepository) FindByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyImage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	img := r.firstImage(propertyID)
	if img == nil {
		return nil, nil
	}
	return copyImage(img), nil
}

func (r *propertyImageRepository) FindByPropertyIDs(ctx context.Context, propertyIDs []string) (map[string]*entity.PropertyImage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make(map[string]*entity.PropertyImage, len(propertyIDs))
	for _, id := range propertyIDs {
		if img := r.firstImage(id); img != nil {
			out[id] = copyImage(img)
		}
	}
	return out, nil
}

func (r *propertyImageRepository) Create(ctx context.Context, image *entity.PropertyImage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	image.ID = newID()
	r.s.images[image.ID] = copyImage(image)
	return nil
}

func (r *propertyImageRepository) Update(ctx context.Context, image *entity.PropertyImage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.images[image.ID]; ok {
		r.s.images[image.ID] = copyImage(image)
	}
	return nil
}

func (r *propertyImageRepository) DeleteByPropertyID(ctx context.Context, propertyID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, img := range r.s.images {
		if img.PropertyID == propertyID {
			delete(r.s.images, id)
			n++
		}
	}
	return n, nil
}
