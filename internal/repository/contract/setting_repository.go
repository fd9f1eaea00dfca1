package contract

import "context"

// SettingRepository is the generic key→text map reserved for shell
// configuration.
type SettingRepository interface {
	// Get returns nil when the key has never been set.
	Get(ctx context.Context, key string) (*string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
