package memory

import (
	"context"
	"time"

	"github.com/LuisRodriguez27/notex/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// CachedSettingRepository is a read-through cache in front of the settings
// table. Settings are read far more often than written (the shell asks for
// them on every window), so hits skip the database entirely.
type CachedSettingRepository struct {
	inner contract.SettingRepository
	cache *cache.Cache
}

func NewCachedSettingRepository(inner contract.SettingRepository) *CachedSettingRepository {
	// Values live an hour; expired entries are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CachedSettingRepository{
		inner: inner,
		cache: c,
	}
}

func (r *CachedSettingRepository) Get(ctx context.Context, key string) (*string, error) {
	if x, found := r.cache.Get(key); found {
		v := x.(string)
		return &v, nil
	}

	value, err := r.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != nil {
		r.cache.Set(key, *value, cache.DefaultExpiration)
	}
	return value, nil
}

func (r *CachedSettingRepository) Set(ctx context.Context, key, value string) error {
	if err := r.inner.Set(ctx, key, value); err != nil {
		return err
	}
	r.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (r *CachedSettingRepository) Delete(ctx context.Context, key string) error {
	if err := r.inner.Delete(ctx, key); err != nil {
		return err
	}
	r.cache.Delete(key)
	return nil
}
