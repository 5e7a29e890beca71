package documentstore

import (
	"context"
	"hospital-portal-service/internal/app/models"
	"hospital-portal-service/internal/pkg/constvars"
	"hospital-portal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func assertStoreNotConnected(t *testing.T, err error) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}

func TestMongoStoreWithoutConnection(t *testing.T) {
	store := NewMongoStore(nil, "hospital")
	ctx := context.Background()

	t.Run("Create Reports Store Unavailable", func(t *testing.T) {
		id, err := store.Create(ctx, constvars.MongoCollectionRegistrations, models.Registration{FullName: "Jane Doe"})
		assert.Empty(t, id)
		assertStoreNotConnected(t, err)
	})

	t.Run("List Reports Store Unavailable", func(t *testing.T) {
		var registrations []models.Registration
		err := store.List(ctx, constvars.MongoCollectionRegistrations, 20, &registrations)
		assertStoreNotConnected(t, err)
	})

	t.Run("FindByID Reports Store Unavailable", func(t *testing.T) {
		var registration models.Registration
		found, err := store.FindByID(ctx, constvars.MongoCollectionRegistrations, "66f000000000000000000001", &registration)
		assert.False(t, found)
		assertStoreNotConnected(t, err)
	})

	t.Run("UpdateFields Reports Store Unavailable", func(t *testing.T) {
		matched, err := store.UpdateFields(ctx, constvars.MongoCollectionRegistrations, "66f000000000000000000001", map[string]interface{}{"status": constvars.RegistrationStatusConfirmed})
		assert.False(t, matched)
		assertStoreNotConnected(t, err)
	})
}

func TestMongoStoreMalformedIdentifier(t *testing.T) {
	// Connect is lazy, so an unreachable URI still yields a usable client
	// handle and identifier parsing fails before any network round trip.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	assert.NoError(t, err)
	defer client.Disconnect(context.Background())

	store := NewMongoStore(client, "hospital")
	ctx := context.Background()

	t.Run("FindByID Rejects Non Hex Identifier", func(t *testing.T) {
		var registration models.Registration
		found, err := store.FindByID(ctx, constvars.MongoCollectionRegistrations, "not-an-object-id", &registration)
		assert.False(t, found)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("UpdateFields Rejects Non Hex Identifier", func(t *testing.T) {
		matched, err := store.UpdateFields(ctx, constvars.MongoCollectionRegistrations, "not-an-object-id", map[string]interface{}{"status": constvars.RegistrationStatusConfirmed})
		assert.False(t, matched)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
