package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	eventadapter "github.com/Luuchoh/Propiedades-premium/internal/adapter/event"
	"github.com/Luuchoh/Propiedades-premium/internal/adapter/repository/memory"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	appinit "github.com/Luuchoh/Propiedades-premium/internal/init"
	"github.com/Luuchoh/Propiedades-premium/internal/seed"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

const fixture = `
owners:
  - dni: "111111111"
    ownerName: Jane Doe
    phone: "3001234567"
    email: jane@example.com
    address: Calle 10 #5-20, Bogotá
    photo: https://example.com/jane.png
    birthday: "1985-04-12"
properties:
  - ownerDni: "111111111"
    propertyName: Casa X
    propertyType: Casa
    address: Carrera 7 #120-30, Bogotá
    price: 850000000
    rooms: 4
    bathrooms: 3
    area: 220
    yearConstruction: 2015
    annualTax: 4200000
    monthlyExpenses: 650000
    description: Casa amplia con jardín
    features: [Piscina, Jardín]
    status: Reservado
    image:
      file: casa-x.png
      enable: false
`

func newSeeder(t *testing.T) (*seed.Seeder, *repository.Repositories) {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	useCases := appinit.NewUseCases(repos, eventadapter.NewNoopPublisher(), zap.NewNop())
	return seed.NewSeeder(useCases.Owner, useCases.Property, zap.NewNop()), repos
}

func TestParse(t *testing.T) {
	file, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)

	require.Len(t, file.Owners, 1)
	assert.Equal(t, "Jane Doe", file.Owners[0].OwnerName)

	require.Len(t, file.Properties, 1)
	p := file.Properties[0]
	assert.Equal(t, "111111111", p.OwnerDNI)
	assert.Equal(t, "Casa X", p.PropertyName)
	assert.Equal(t, int64(850000000), p.Price)
	assert.Equal(t, []string{"Piscina", "Jardín"}, p.Features)
	require.NotNil(t, p.Image)
	require.NotNil(t, p.Image.Enable)
	assert.False(t, *p.Image.Enable)

	empty, err := seed.Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, empty.Owners)

	_, err = seed.Parse([]byte("owners: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	file, err := seed.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Owners, 1)

	_, err = seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	seeder, repos := newSeeder(t)
	file, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)

	result, err := seeder.Run(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{OwnersCreated: 1, PropertiesCreated: 1}, result)

	owner, err := repos.Owner.FindByDNI(ctx, "111111111")
	require.NoError(t, err)

	props, err := repos.Property.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, owner.ID, props[0].OwnerID)
	assert.Equal(t, entity.PropertyStatusReserved, props[0].Status)

	img, err := repos.PropertyImage.FindByPropertyID(ctx, props[0].ID)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, "casa-x.png", img.File)
	assert.False(t, img.Enable)

	again, err := seeder.Run(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{OwnersReused: 1, PropertiesCreated: 1}, again)

	n, err := repos.Owner.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSeeder_RunRejectsInvalidEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("owner missing fields", func(t *testing.T) {
		seeder, repos := newSeeder(t)
		file, err := seed.Parse([]byte("owners:\n  - dni: \"1\"\n"))
		require.NoError(t, err)

		_, err = seeder.Run(ctx, file)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidArgument))
		assert.ErrorContains(t, err, "owners[0]")

		n, _ := repos.Owner.Count(ctx)
		assert.Zero(t, n)
	})

	t.Run("unknown owner dni", func(t *testing.T) {
		seeder, _ := newSeeder(t)
		file, err := seed.Parse([]byte("properties:\n  - ownerDni: \"999\"\n    propertyName: X\n"))
		require.NoError(t, err)

		_, err = seeder.Run(ctx, file)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
		assert.ErrorContains(t, err, "properties[0]")
	})
}
