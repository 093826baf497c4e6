// Package seed loads owners and properties from a YAML fixture into the store.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	handler "github.com/Luuchoh/Propiedades-premium/internal/adapter/handler/http"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/owner"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/property"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// File is the fixture layout.
type File struct {
	Owners     []dto.OwnerRequest `yaml:"owners"`
	Properties []PropertyEntry    `yaml:"properties"`
}

// PropertyEntry is a property whose owner is referenced by DNI.
type PropertyEntry struct {
	OwnerDNI            string `yaml:"ownerDni"`
	dto.PropertyRequest `yaml:",inline"`
}

// Result counts what a run did.
type Result struct {
	OwnersCreated     int
	OwnersReused      int
	PropertiesCreated int
	PartialWrites     int
}

// LoadFile reads a fixture from path. An empty file yields an empty fixture.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var file File
	if len(bytes.TrimSpace(data)) == 0 {
		return &file, nil
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal seed yaml: %w", err)
	}
	return &file, nil
}

// Seeder writes fixtures through the use cases so every business rule applies.
type Seeder struct {
	owners     owner.UseCase
	properties property.UseCase
	validator  *handler.RequestValidator
	logger     *zap.Logger
}

func NewSeeder(owners owner.UseCase, properties property.UseCase, logger *zap.Logger) *Seeder {
	return &Seeder{
		owners:     owners,
		properties: properties,
		validator:  handler.NewRequestValidator(),
		logger:     logger,
	}
}

// Run creates every owner and property in file. Owners whose DNI is already
// stored are reused. The first invalid entry stops the run.
func (s *Seeder) Run(ctx context.Context, file *File) (Result, error) {
	var result Result
	ownerIDs := make(map[string]string, len(file.Owners))

	for i, req := range file.Owners {
		if err := s.validator.Validate(&req); err != nil {
			return result, fmt.Errorf("owners[%d]: %w", i, err)
		}

		existing, err := s.owners.GetOwnerByDNI(ctx, req.DNI)
		switch {
		case err == nil:
			ownerIDs[req.DNI] = existing.ID
			result.OwnersReused++
			s.logger.Debug("Owner already seeded", zap.String("dni", req.DNI))
			continue
		case !apperrors.IsCode(err, apperrors.ErrNotFound):
			return result, fmt.Errorf("owners[%d]: %w", i, err)
		}

		created, err := s.owners.CreateOwner(ctx, req.Fields())
		if err != nil {
			return result, fmt.Errorf("owners[%d]: %w", i, err)
		}
		ownerIDs[req.DNI] = created.ID
		result.OwnersCreated++
	}

	for i, entry := range file.Properties {
		req := entry.PropertyRequest
		if entry.OwnerDNI != "" {
			id, err := s.resolveOwner(ctx, ownerIDs, entry.OwnerDNI)
			if err != nil {
				return result, fmt.Errorf("properties[%d]: %w", i, err)
			}
			req.IDOwner = id
		}

		if err := s.validator.Validate(&req); err != nil {
			return result, fmt.Errorf("properties[%d]: %w", i, err)
		}

		created, err := s.properties.CreateProperty(ctx, req.Fields(), req.Image)
		if err != nil {
			return result, fmt.Errorf("properties[%d]: %w", i, err)
		}
		result.PropertiesCreated++
		if created.PartialWrite {
			result.PartialWrites++
		}
	}

	s.logger.Info("Seed completed",
		zap.Int("owners_created", result.OwnersCreated),
		zap.Int("owners_reused", result.OwnersReused),
		zap.Int("properties_created", result.PropertiesCreated),
		zap.Int("partial_writes", result.PartialWrites))

	return result, nil
}

func (s *Seeder) resolveOwner(ctx context.Context, known map[string]string, dni string) (string, error) {
	if id, ok := known[dni]; ok {
		return id, nil
	}

	o, err := s.owners.GetOwnerByDNI(ctx, dni)
	if err != nil {
		return "", fmt.Errorf("owner %q: %w", dni, err)
	}
	known[dni] = o.ID
	return o.ID, nil
}
