package constants

import "errors"

// Release command errors.
var (
	ErrDatasetIDAndAllExclusive = errors.New("--dataset-id and --all are mutually exclusive")
	ErrDatasetIDOrAllRequired   = errors.New("either --dataset-id or --all is required")
	ErrNoDatasetsFound          = errors.New("no datasets found")
	ErrReleasesFailed           = errors.New("one or more releases failed")
)

// Ledger command errors.
var (
	ErrLedgerNotConfigured = errors.New("no release ledger configured, use --ledger to enable one")
)
