package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/internal/http"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// AppsClient implements cloudgov.AppsClient
type AppsClient struct {
	httpClient *http.Client
}

// NewAppsClient creates a new apps client
func NewAppsClient(httpClient *http.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// List implements cloudgov.AppsClient.List
func (c *AppsClient) List(ctx context.Context) (*cloudgov.ResourceList, error) {
	resp, err := c.httpClient.Get(ctx, constants.AppsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	var list cloudgov.ResourceList
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing apps response: %w", err)
	}

	if list.Resources == nil {
		list.Resources = []cloudgov.Resource{}
	}

	return &list, nil
}
