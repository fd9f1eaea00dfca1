package service

import (
	"context"
	"testing"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/model"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/implementation"
	"github.com/LuisRodriguez27/notex/internal/repository/memory"
	"github.com/LuisRodriguez27/notex/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingService(t *testing.T) ISettingService {
	t.Helper()
	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &model.Setting{}))

	repo := memory.NewCachedSettingRepository(implementation.NewSettingRepository(db))
	return NewSettingService(repo, logger.NewNopLogger())
}

func TestSettingSetGetDelete(t *testing.T) {
	svc := newSettingService(t)
	ctx := context.Background()

	set, err := svc.Set(ctx, &dto.SetSettingRequest{Key: "window.width", Value: "1280"})
	require.NoError(t, err)
	require.NotNil(t, set.Value)
	assert.Equal(t, "1280", *set.Value)

	got, err := svc.Get(ctx, "window.width")
	require.NoError(t, err)
	require.NotNil(t, got.Value)
	assert.Equal(t, "1280", *got.Value)

	require.NoError(t, svc.Delete(ctx, "window.width"))

	got, err = svc.Get(ctx, "window.width")
	require.NoError(t, err)
	assert.Nil(t, got.Value)
}

func TestSettingGetMissingKeyIsNotAnError(t *testing.T) {
	svc := newSettingService(t)

	got, err := svc.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "theme", got.Key)
	assert.Nil(t, got.Value)
}

func TestSettingBlankKeyRejected(t *testing.T) {
	svc := newSettingService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, " ")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Set(ctx, &dto.SetSettingRequest{Key: ""})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	err = svc.Delete(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
