package service

import (
	"fmt"

	"github.com/jaychenthinkfast/OneTabCloud/internal/adapter"
	"github.com/jaychenthinkfast/OneTabCloud/internal/codec"
	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

// Services groups the container server's services.
type Services struct {
	AppInfoService   AppInfoService
	ContainerService ContainerService
}

func NewServices(storages *store.Storages, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:   appInfo,
		ContainerService: NewContainerService(storages.ContainerRepository, logger),
	}, nil
}

// ClientServices groups the client's services and the remote store they
// share.
type ClientServices struct {
	GroupService GroupService
	SyncService  SyncService

	// Remote is exposed for commands that inspect the resolved container.
	Remote *adapter.RemoteStore
}

// NewClientServices wires the client: the codec and the remote store on top
// of the local store, then the group and sync services. A credential in
// cfg.Remote takes precedence over the stored one.
func NewClientServices(storages *store.ClientStorages, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	local := storages.Local
	credentials := adapter.WithCredentialOverride(cfg.Remote.Credential, local)

	api, err := adapter.NewContainerClient(cfg.Remote, credentials, logger)
	if err != nil {
		return nil, fmt.Errorf("create container client: %w", err)
	}

	tabsCodec, err := codec.New(cfg.Codec.Mode, local, logger)
	if err != nil {
		return nil, fmt.Errorf("create codec: %w", err)
	}

	remote := adapter.NewRemoteStore(api, local, cfg.Remote.Description, logger)

	return &ClientServices{
		GroupService: NewGroupValidationService().Wrap(NewGroupService(local, tabsCodec, logger)),
		SyncService:  NewSyncService(local, remote, credentials, cfg.Workers, logger),
		Remote:       remote,
	}, nil
}
