package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/internal/http"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// DatasetsClient implements cloudgov.DatasetsClient
type DatasetsClient struct {
	httpClient *http.Client
	config     *cloudgov.Config
	logger     cloudgov.Logger
}

// NewDatasetsClient creates a new datasets client
func NewDatasetsClient(httpClient *http.Client, config *cloudgov.Config, logger cloudgov.Logger) *DatasetsClient {
	return &DatasetsClient{
		httpClient: httpClient,
		config:     config,
		logger:     logger,
	}
}

// Release implements cloudgov.DatasetsClient.Release. A nil metadata map
// falls back to the optional metadata file next to the executable; an
// explicit map, empty included, is sent as given.
func (c *DatasetsClient) Release(ctx context.Context, datasetID string, metadata map[string]interface{}) error {
	if datasetID == "" {
		return cloudgov.ErrDatasetIDRequired
	}

	if metadata == nil {
		metadata = loadUserMetadata(c.config.MetadataPath, c.logger)
	}

	request := &cloudgov.ReleaseRequest{
		DatasetID: datasetID,
		Status:    constants.ReleaseStatusReleased,
		Metadata:  metadata,
		Org:       c.config.Org,
		Space:     c.config.Space,
	}

	path := fmt.Sprintf("/v3/datasets/%s/release", datasetID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return fmt.Errorf("releasing dataset %s: %w", datasetID, err)
	}

	switch resp.StatusCode {
	case nethttp.StatusOK, nethttp.StatusCreated, nethttp.StatusAccepted:
	default:
		return fmt.Errorf("releasing dataset %s: %w", datasetID, &cloudgov.RequestError{
			Method:     nethttp.MethodPost,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		})
	}

	c.logger.Info("dataset released", map[string]interface{}{
		"dataset_id": datasetID,
		"org":        c.config.Org,
		"space":      c.config.Space,
	})

	return nil
}
