package service

import (
	"context"
	"strings"

	"github.com/LuisRodriguez27/notex/internal/dto"
	"github.com/LuisRodriguez27/notex/internal/pkg/apperror"
	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/contract"
)

const settingModule = "SettingService"

// ISettingService is the key→text map the shell stores its configuration
// in (window geometry, theme, last-opened note).
type ISettingService interface {
	Get(ctx context.Context, key string) (*dto.SettingResponse, error)
	Set(ctx context.Context, req *dto.SetSettingRequest) (*dto.SettingResponse, error)
	Delete(ctx context.Context, key string) error
}

type settingService struct {
	settings contract.SettingRepository
	log      logger.ILogger
}

func NewSettingService(settings contract.SettingRepository, log logger.ILogger) ISettingService {
	return &settingService{
		settings: settings,
		log:      log,
	}
}

// Get returns a nil value for a key that has never been set, which is not
// an error.
func (c *settingService) Get(ctx context.Context, key string) (*dto.SettingResponse, error) {
	if strings.TrimSpace(key) == "" {
		return nil, apperror.Validation("setting key is required")
	}

	value, err := c.settings.Get(ctx, key)
	if err != nil {
		c.log.Error(settingModule, "get setting failed", map[string]interface{}{"key": key, "error": err.Error()})
		return nil, apperror.Storage("get setting")
	}

	return &dto.SettingResponse{Key: key, Value: value}, nil
}

func (c *settingService) Set(ctx context.Context, req *dto.SetSettingRequest) (*dto.SettingResponse, error) {
	if strings.TrimSpace(req.Key) == "" {
		return nil, apperror.Validation("setting key is required")
	}

	if err := c.settings.Set(ctx, req.Key, req.Value); err != nil {
		c.log.Error(settingModule, "set setting failed", map[string]interface{}{"key": req.Key, "error": err.Error()})
		return nil, apperror.Storage("set setting")
	}

	value := req.Value
	return &dto.SettingResponse{Key: req.Key, Value: &value}, nil
}

func (c *settingService) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return apperror.Validation("setting key is required")
	}

	if err := c.settings.Delete(ctx, key); err != nil {
		c.log.Error(settingModule, "delete setting failed", map[string]interface{}{"key": key, "error": err.Error()})
		return apperror.Storage("delete setting")
	}
	return nil
}
