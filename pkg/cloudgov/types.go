package cloudgov

import (
	"time"

	"github.com/datagov-metrics/cloudgov/internal/constants"
)

// Resource represents a single record from an API list endpoint. Records
// are kept as raw maps because only a small subset of the fields the API
// returns is consumed here.
type Resource map[string]interface{}

// ID returns the resource identifier: the guid field, falling back to the
// id field, falling back to "unknown".
func (r Resource) ID() string {
	if guid, ok := r["guid"].(string); ok {
		return guid
	}

	if id, ok := r["id"].(string); ok {
		return id
	}

	return constants.UnknownResourceID
}

// Name returns the resource name, or the empty string when absent.
func (r Resource) Name() string {
	if name, ok := r["name"].(string); ok {
		return name
	}

	return ""
}

// ResourceList represents the envelope returned by list endpoints.
type ResourceList struct {
	Resources []Resource `json:"resources" yaml:"resources"`
}

// ReleaseRequest is the payload sent when marking a dataset as released.
// Every field is always present in the serialized form.
type ReleaseRequest struct {
	DatasetID string                 `json:"dataset_id" yaml:"dataset_id"`
	Status    string                 `json:"status"     yaml:"status"`
	Metadata  map[string]interface{} `json:"metadata"   yaml:"metadata"`
	Org       string                 `json:"org"        yaml:"org"`
	Space     string                 `json:"space"      yaml:"space"`
}

// ConnectionStatus reports the session state of a client.
type ConnectionStatus struct {
	Endpoint      string `json:"endpoint"      yaml:"endpoint"`
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
	Org           string `json:"org"           yaml:"org"`
	Space         string `json:"space"         yaml:"space"`
}

// ReleaseRecord is one entry in the release ledger.
type ReleaseRecord struct {
	DatasetID  string    `json:"dataset_id"  yaml:"dataset_id"`
	Status     string    `json:"status"      yaml:"status"`
	Org        string    `json:"org"         yaml:"org"`
	Space      string    `json:"space"       yaml:"space"`
	ReleasedAt time.Time `json:"released_at" yaml:"released_at"`
}
