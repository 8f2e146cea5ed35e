package cloudgov

import (
	"errors"
	"fmt"
)

// LedgerType represents the type of ledger backend.
type LedgerType string

const (
	// LedgerTypeMemory keeps release records in process memory.
	LedgerTypeMemory LedgerType = "memory"

	// LedgerTypeNATS stores release records in a NATS JetStream bucket.
	LedgerTypeNATS LedgerType = "nats"

	// LedgerTypeNone records nothing.
	LedgerTypeNone LedgerType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS ledger")
	ErrUnsupportedLedgerType = errors.New("unsupported ledger type")
)

// LedgerConfig configures the ledger backend.
type LedgerConfig struct {
	// Type is the ledger backend type.
	Type LedgerType

	// NATS configures the NATS backend when Type is LedgerTypeNATS.
	NATS *NATSLedgerConfig
}

// DefaultLedgerConfig returns the default ledger configuration. Recording
// is off unless explicitly configured.
func DefaultLedgerConfig() *LedgerConfig {
	return &LedgerConfig{
		Type: LedgerTypeNone,
	}
}

// NewLedgerFromConfig creates a ledger backend from configuration.
func NewLedgerFromConfig(config *LedgerConfig) (ReleaseLedger, error) {
	if config == nil {
		config = DefaultLedgerConfig()
	}

	switch config.Type {
	case LedgerTypeMemory:
		return NewMemoryLedger(), nil

	case LedgerTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSLedger(config.NATS)

	case LedgerTypeNone:
		return NewNoOpLedger(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLedgerType, config.Type)
	}
}
