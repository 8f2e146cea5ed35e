package cloudgov_test

import (
	"context"
	"errors"
	"testing"

	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errReleaseDenied = errors.New("release denied")

// MockClient implements cloudgov.Client for testing
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) Apps() cloudgov.AppsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(cloudgov.AppsClient)
}

func (m *MockClient) Datasets() cloudgov.DatasetsClient {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(cloudgov.DatasetsClient)
}

func (m *MockClient) Status() cloudgov.ConnectionStatus {
	args := m.Called()
	return args.Get(0).(cloudgov.ConnectionStatus)
}

// MockAppsClient implements cloudgov.AppsClient for testing
type MockAppsClient struct {
	mock.Mock
}

func (m *MockAppsClient) List(ctx context.Context) (*cloudgov.ResourceList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudgov.ResourceList), args.Error(1)
}

// MockDatasetsClient implements cloudgov.DatasetsClient for testing
type MockDatasetsClient struct {
	mock.Mock
}

func (m *MockDatasetsClient) Release(ctx context.Context, datasetID string, metadata map[string]interface{}) error {
	args := m.Called(ctx, datasetID, metadata)
	return args.Error(0)
}

func TestBatchReleaser_Execute(t *testing.T) {
	mockClient := &MockClient{}
	mockDatasets := &MockDatasetsClient{}
	mockClient.On("Datasets").Return(mockDatasets)

	releaser := cloudgov.NewBatchReleaser(mockClient, 2)
	ctx := context.Background()

	mockDatasets.On("Release", mock.Anything, "ds-1", mock.Anything).Return(nil)
	mockDatasets.On("Release", mock.Anything, "ds-2", mock.Anything).Return(nil)
	mockDatasets.On("Release", mock.Anything, "ds-3", mock.Anything).Return(nil)

	operations := []cloudgov.ReleaseOperation{
		{DatasetID: "ds-1"},
		{DatasetID: "ds-2"},
		{DatasetID: "ds-3"},
	}

	results, err := releaser.Execute(ctx, operations)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// Results keep the input order
	for index, result := range results {
		assert.Equal(t, operations[index].DatasetID, result.DatasetID)
		assert.True(t, result.Success)
		assert.NoError(t, result.Error)
		assert.True(t, result.Duration > 0)
	}

	mockClient.AssertExpectations(t)
	mockDatasets.AssertExpectations(t)
}

func TestBatchReleaser_PartialFailure(t *testing.T) {
	mockClient := &MockClient{}
	mockDatasets := &MockDatasetsClient{}
	mockClient.On("Datasets").Return(mockDatasets)

	releaser := cloudgov.NewBatchReleaser(mockClient, 1)
	ctx := context.Background()

	mockDatasets.On("Release", mock.Anything, "ds-1", mock.Anything).Return(nil)
	mockDatasets.On("Release", mock.Anything, "ds-2", mock.Anything).Return(errReleaseDenied)
	mockDatasets.On("Release", mock.Anything, "ds-3", mock.Anything).Return(nil)

	operations := []cloudgov.ReleaseOperation{
		{DatasetID: "ds-1"},
		{DatasetID: "ds-2"},
		{DatasetID: "ds-3"},
	}

	results, err := releaser.Execute(ctx, operations)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	require.ErrorIs(t, results[1].Error, errReleaseDenied)
	assert.True(t, results[2].Success)

	succeeded, failed := cloudgov.CountResults(results)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, failed)
}

func TestBatchReleaser_WithCallback(t *testing.T) {
	mockClient := &MockClient{}
	mockDatasets := &MockDatasetsClient{}
	mockClient.On("Datasets").Return(mockDatasets)

	releaser := cloudgov.NewBatchReleaser(mockClient, 1)
	ctx := context.Background()

	mockDatasets.On("Release", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var callbackOrder []string

	callback := func(result *cloudgov.ReleaseResult) {
		callbackOrder = append(callbackOrder, result.DatasetID)
	}

	operations := []cloudgov.ReleaseOperation{
		{DatasetID: "ds-1", Callback: callback},
		{DatasetID: "ds-2", Callback: callback},
	}

	results, err := releaser.Execute(ctx, operations)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Single-slot concurrency runs the callbacks in order
	assert.Equal(t, []string{"ds-1", "ds-2"}, callbackOrder)
}

func TestBatchReleaser_DefaultConcurrency(t *testing.T) {
	mockClient := &MockClient{}
	mockDatasets := &MockDatasetsClient{}
	mockClient.On("Datasets").Return(mockDatasets)

	releaser := cloudgov.NewBatchReleaser(mockClient, 0)
	ctx := context.Background()

	mockDatasets.On("Release", mock.Anything, "ds-1", mock.Anything).Return(nil)

	results, err := releaser.Execute(ctx, []cloudgov.ReleaseOperation{{DatasetID: "ds-1"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestCountResults(t *testing.T) {
	results := []cloudgov.ReleaseResult{
		{DatasetID: "ds-1", Success: true},
		{DatasetID: "ds-2", Success: false, Error: errReleaseDenied},
		{DatasetID: "ds-3", Success: true},
	}

	succeeded, failed := cloudgov.CountResults(results)
	assert.Equal(t, 2, succeeded)
	assert.Equal(t, 1, failed)
}
