package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/datagov-metrics/cloudgov/internal/constants"
	"github.com/datagov-metrics/cloudgov/pkg/cloudgov"
)

// loadUserMetadata reads the optional metadata file and returns its
// contents. A missing, unreadable, or unparsable file yields an empty
// map: user metadata never blocks a release.
func loadUserMetadata(path string, logger cloudgov.Logger) map[string]interface{} {
	resolved := path
	if resolved == "" {
		resolved = defaultMetadataPath()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("no user metadata file", map[string]interface{}{
				"path": resolved,
			})
		} else {
			logger.Warn("skipping unreadable metadata file", map[string]interface{}{
				"error": (&cloudgov.LocalResourceError{Path: resolved, Err: err}).Error(),
			})
		}

		return map[string]interface{}{}
	}

	var metadata map[string]interface{}
	if err := json.Unmarshal(data, &metadata); err != nil {
		logger.Warn("skipping unparsable metadata file", map[string]interface{}{
			"error": (&cloudgov.LocalResourceError{Path: resolved, Err: err}).Error(),
		})

		return map[string]interface{}{}
	}

	// A file holding JSON null decodes to a nil map.
	if metadata == nil {
		return map[string]interface{}{}
	}

	return metadata
}

// defaultMetadataPath resolves the metadata file one directory above the
// running executable.
func defaultMetadataPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return constants.MetadataFileName
	}

	return filepath.Join(filepath.Dir(execPath), "..", constants.MetadataFileName)
}
