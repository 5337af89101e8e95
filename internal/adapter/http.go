package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/utils"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

type containerClient struct {
	client      *utils.HTTPClient
	collection  string
	credentials CredentialSource

	logger *logger.Logger
}

// NewContainerClient constructs the REST implementation of [ContainerAPI].
// It normalises and validates cfg.BaseURL and configures the underlying HTTP
// client with the request timeout. The credential is looked up through
// credentials on every request, so a credential set at runtime is honoured
// without rebuilding the client.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewContainerClient(cfg config.Remote, credentials CredentialSource, logger *logger.Logger) (ContainerAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	collection := strings.Trim(cfg.Collection, "/")
	if collection == "" {
		collection = config.DefaultCollection
	}

	return &containerClient{
		client:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		collection:  "/" + collection,
		credentials: credentials,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *containerClient) ListContainers(ctx context.Context) ([]models.Container, error) {
	const op = "list containers"

	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(c.collection)
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return nil, err
	}

	var containers []models.Container
	if err = json.Unmarshal(resp.Body(), &containers); err != nil {
		return nil, &RemoteError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	return containers, nil
}

func (c *containerClient) CreateContainer(ctx context.Context, description string, files map[string]models.ContainerFile) (models.Container, error) {
	const op = "create container"

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Container{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateContainerRequest{Description: description, Public: false, Files: files}).
		Post(c.collection)
	if err != nil {
		return models.Container{}, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.Container{}, err
	}

	var created models.Container
	if err = json.Unmarshal(resp.Body(), &created); err != nil || created.ID == "" {
		if err == nil {
			err = fmt.Errorf("response has no id")
		}
		return models.Container{}, &RemoteError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}

	c.logger.Info().
		Str("func", "containerClient.CreateContainer").
		Str("container_id", created.ID).
		Msg("created remote container")
	return created, nil
}

func (c *containerClient) GetContainer(ctx context.Context, id string) (models.Container, error) {
	const op = "get container"

	req, err := c.authedRequest(ctx)
	if err != nil {
		return models.Container{}, err
	}

	resp, err := req.
		SetPathParam("id", id).
		Get(c.collection + "/{id}")
	if err != nil {
		return models.Container{}, transportError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.Container{}, err
	}

	var container models.Container
	if err = json.Unmarshal(resp.Body(), &container); err != nil {
		return models.Container{}, &RemoteError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w: %w", ErrMalformedResponse, err)}
	}
	if container.Files == nil {
		container.Files = map[string]models.ContainerFile{}
	}
	return container, nil
}

func (c *containerClient) UpdateContainer(ctx context.Context, id string, files map[string]*models.ContainerFile) error {
	const op = "update container"

	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.UpdateContainerRequest{Files: files}).
		Patch(c.collection + "/{id}")
	if err != nil {
		return transportError(op, err)
	}

	return mapHTTPError(op, resp)
}

// authedRequest returns a request carrying the bearer credential, or
// [ErrNotConfigured] when there is none.
func (c *containerClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	credential, err := c.credentials.Credential(ctx)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, ErrNotConfigured
	}

	req := c.client.R().
		SetContext(ctx).
		SetAuthToken(credential)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req, nil
}
