package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/config"
)

var collections = config.Collections{Owner: "Owner", Property: "Property", PropertyImage: "PropertyImage"}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes per collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB, collections, zap.NewNop()))

		var targets []string
		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			assert.Equal(mt, "createIndexes", evt.CommandName)
			targets = append(targets, evt.Command.Lookup("createIndexes").StringValue())
		}
		assert.Equal(mt, []string{"Owner", "Property", "PropertyImage"}, targets)
	})

	mt.Run("reports failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		err := EnsureIndexes(context.Background(), mt.DB, collections, zap.NewNop())
		assert.ErrorContains(mt, err, "Owner")
	})
}

func TestNewRepositories_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ping succeeds", func(mt *mtest.T) {
		repos := NewRepositories(mt.DB, collections, zap.NewNop())
		require.NotNil(mt, repos.Owner)
		require.NotNil(mt, repos.Property)
		require.NotNil(mt, repos.PropertyImage)

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repos.Ping(context.Background()))
	})
}
