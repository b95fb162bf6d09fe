package repository_test

import (
	"context"
	"testing"

	"plughub/internal/repository"
	"plughub/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestPluginRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPluginRepository(db)
	ctx := context.Background()

	// Create
	created, err := repo.Create(ctx, "markdown-preview", "2.1.0", strPtr("renders markdown"), "artifacts/markdown-preview-2.1.0.zip")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotZero(t, created.ID)

	// GetByID
	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "markdown-preview", fetched.Name)
	require.Equal(t, "2.1.0", fetched.Version)
	require.NotNil(t, fetched.Description)
	require.Equal(t, "renders markdown", *fetched.Description)

	// List
	plugins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plugins, 1)
}

func TestPluginRepository_GetByID_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPluginRepository(db)

	fetched, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestPluginRepository_Create_DuplicateNameVersion(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPluginRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "markdown-preview", "2.1.0", nil, "artifacts/a.zip")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "markdown-preview", "2.1.0", nil, "artifacts/b.zip")
	require.Error(t, err)
}
