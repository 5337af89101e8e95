package service

import (
	"context"

	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// AppInfoService reports the build the process was compiled from.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

type appInfoService struct {
	info models.AppBuildInfo
}

// NewAppInfoService returns ErrVersionIsNotSpecified when info carries no
// version.
func NewAppInfoService(info models.AppBuildInfo) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{info: info}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
