package repository

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/orgstructure/internal/config"
	"github.com/yakoovad/orgstructure/internal/db"
	"github.com/yakoovad/orgstructure/internal/model"
	"os"
	"testing"
	"time"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("ORGSTRUCTURE_INTEGRATION") != "1" {
		t.Skip("set ORGSTRUCTURE_INTEGRATION=1 to run against a Postgres container")
	}

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)
	dockerPool.MaxWait = 60 * time.Second

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=org_structure",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = dockerPool.Purge(resource) })

	cfg := config.DatabaseConfig{
		URL: fmt.Sprintf("postgres://postgres:postgres@%s/org_structure?sslmode=disable",
			resource.GetHostPort("5432/tcp")),
		MaxConns: 4,
	}

	ctx := context.Background()
	var pool *pgxpool.Pool
	require.NoError(t, dockerPool.Retry(func() error {
		pool, err = db.NewPool(ctx, cfg)
		return err
	}))
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	return pool
}

func testAddress() model.Address {
	return model.Address{
		Street1: "12 Park Street",
		City:    "Pune",
		State:   "Maharashtra",
		Country: "India",
		PinCode: "411001",
	}
}

func TestPgxRepositoryIntegration(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	store := NewStore(pool)

	entity := model.BusinessEntity{BusinessEntityCode: "BE01", BusinessEntityName: "Acme", Address: testAddress()}
	unit := model.BusinessUnit{BusinessUnitCode: "BU01", BusinessUnitDesc: "West", Address: testAddress()}
	factory := model.FactoryUnit{FactoryUnitCode: "FU01", FactoryUnitName: "Plant", Address: testAddress()}

	created, err := store.BusinessEntities.Create(ctx, entity.Fields())
	require.NoError(t, err)
	assert.Equal(t, "BE01", created.BusinessEntityCode)
	assert.Equal(t, "Pune", created.City)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = store.BusinessEntities.Create(ctx, entity.Fields())
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = store.BusinessUnits.Create(ctx, unit.Fields())
	require.NoError(t, err)
	_, err = store.FactoryUnits.Create(ctx, factory.Fields())
	require.NoError(t, err)

	ok, err := store.BusinessEntities.Exists(ctx, "BE01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.BusinessEntities.Exists(ctx, "ZZ99")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.BusinessEntities.Get(ctx, "ZZ99")
	require.ErrorIs(t, err, ErrNotFound)

	name := "Acme Global"
	patched, err := store.BusinessEntities.Patch(ctx, "BE01", model.BusinessEntityPatch{BusinessEntityName: &name}.Fields())
	require.NoError(t, err)
	assert.Equal(t, "Acme Global", patched.BusinessEntityName)

	t.Run("pairs", func(t *testing.T) {
		pair, err := store.EntityUnitPairs.Create(ctx, map[string]any{
			"id":                   uuid.NewString(),
			"business_entity_code": "BE01",
			"business_unit_code":   "BU01",
			"factory_unit_code":    "FU01",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"BU01", "FU01"}, pair.MemberCodes())

		found, err := store.EntityUnitPairs.FindFirst(ctx, map[string]any{
			"business_entity_code": "BE01",
			"business_unit_code":   "BU01",
			"factory_unit_code":    "FU01",
		})
		require.NoError(t, err)
		assert.Equal(t, pair.ID, found.ID)

		_, err = store.EntityUnitPairs.Create(ctx, map[string]any{
			"id":                   uuid.NewString(),
			"business_entity_code": "BE01",
			"business_unit_code":   "BU01",
			"factory_unit_code":    "FU01",
		})
		require.ErrorIs(t, err, ErrAlreadyExists)

		_, err = store.EntityUnitPairs.Create(ctx, map[string]any{
			"id":                   uuid.NewString(),
			"business_entity_code": "BE01",
			"business_unit_code":   "NOPE",
			"factory_unit_code":    "FU01",
		})
		require.ErrorIs(t, err, ErrNotFound)

		pairs, err := store.EntityUnitPairs.List(ctx, map[string]any{"business_entity_code": "BE01"})
		require.NoError(t, err)
		require.Len(t, pairs, 1)

		_, err = store.EntityUnitPairs.Get(ctx, "not-a-uuid")
		require.ErrorIs(t, err, ErrNotFound)

		require.NoError(t, store.EntityUnitPairs.Delete(ctx, pair.ID))
		require.ErrorIs(t, store.EntityUnitPairs.Delete(ctx, pair.ID), ErrNotFound)
	})

	t.Run("saved views keep column order", func(t *testing.T) {
		view := model.SavedView{
			Owner:    "u1",
			Resource: "business-units",
			Name:     "West",
			Query:    "q=west",
			Columns:  []string{"businessUnitDesc", "city"},
		}
		fields := view.Fields()
		fields["id"] = uuid.NewString()

		got, err := store.SavedViews.Create(ctx, fields)
		require.NoError(t, err)
		assert.Equal(t, []string{"businessUnitDesc", "city"}, got.Columns)
	})

	require.NoError(t, store.BusinessEntities.Delete(ctx, "BE01"))
	require.ErrorIs(t, store.BusinessEntities.Delete(ctx, "BE01"), ErrNotFound)
}
