package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryWaitMin is the minimum wait time between retries when
	// retries are enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries when
	// retries are enabled.
	DefaultRetryWaitMax = 10 * time.Second

	// DefaultBatchConcurrency is the number of releases a batch runs at once.
	DefaultBatchConcurrency = 5
)

// API endpoints and paths.
const (
	// DefaultAPIEndpoint is the cloud.gov production API endpoint used when
	// no endpoint is configured.
	DefaultAPIEndpoint = "https://api.fr.cloud.gov"

	// DefaultUserAgent is the User-Agent header sent with API requests.
	DefaultUserAgent = "cloudgov-client/1.0"

	// TokenPath is the OAuth2 token endpoint path relative to the API endpoint.
	TokenPath = "/oauth/token"

	// AppsPath is the endpoint for listing applications.
	AppsPath = "/v3/apps"
)

// Environment variable names recognized by the client.
const (
	// EnvAPIURL overrides the API endpoint.
	EnvAPIURL = "CLOUDGOV_API_URL"

	// EnvAPIKey supplies the service account client ID.
	EnvAPIKey = "CLOUDGOV_API_KEY"

	// EnvAPISecret supplies the service account client secret.
	EnvAPISecret = "CLOUDGOV_API_SECRET"

	// EnvOrg supplies the organization name.
	EnvOrg = "CLOUDGOV_ORG"

	// EnvSpace supplies the space name.
	EnvSpace = "CLOUDGOV_SPACE"
)

// Release constants.
const (
	// ReleaseStatusReleased is the status value sent in release payloads.
	ReleaseStatusReleased = "released"

	// MetadataFileName is the name of the optional user metadata file.
	MetadataFileName = "metadata.json"

	// UnknownResourceID is used when a resource carries no usable identifier.
	UnknownResourceID = "unknown"
)

// Ledger constants.
const (
	// DefaultLedgerBucket is the NATS key-value bucket for release records.
	DefaultLedgerBucket = "dataset-releases"

	// LedgerConnectionName identifies ledger connections on the NATS server.
	LedgerConnectionName = "cgov-release-ledger"
)

// UI and display constants.
const (
	// CheckMarkSymbol marks successful operations.
	CheckMarkSymbol = "✓"

	// CrossMarkSymbol marks failed operations.
	CrossMarkSymbol = "✗"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Mathematical and calculation constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
