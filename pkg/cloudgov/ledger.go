package cloudgov

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrRecordNotFound = errors.New("release record not found")
	ErrRecordRequired = errors.New("release record is required")
	ErrLedgerDisabled = errors.New("ledger disabled")
)

// ReleaseLedger records which datasets have been released. Backends keep one
// record per dataset; recording the same dataset again overwrites the
// earlier entry.
type ReleaseLedger interface {
	// Record stores a release record.
	Record(ctx context.Context, record *ReleaseRecord) error

	// Get retrieves the release record for a dataset. Returns an error
	// wrapping ErrRecordNotFound when the dataset has no record.
	Get(ctx context.Context, datasetID string) (*ReleaseRecord, error)

	// List returns all release records ordered by release time.
	List(ctx context.Context) ([]*ReleaseRecord, error)

	// Close releases any resources held by the backend.
	Close() error
}

// MemoryLedger keeps release records in process memory. It is safe for
// concurrent use.
type MemoryLedger struct {
	mu      sync.RWMutex
	records map[string]*ReleaseRecord
}

// NewMemoryLedger creates a new in-memory release ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		records: make(map[string]*ReleaseRecord),
	}
}

// Record stores a release record.
func (l *MemoryLedger) Record(ctx context.Context, record *ReleaseRecord) error {
	if record == nil {
		return ErrRecordRequired
	}

	if record.DatasetID == "" {
		return ErrDatasetIDRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *record
	l.records[record.DatasetID] = &stored

	return nil
}

// Get retrieves the release record for a dataset.
func (l *MemoryLedger) Get(ctx context.Context, datasetID string) (*ReleaseRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.records[datasetID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, datasetID)
	}

	found := *record

	return &found, nil
}

// List returns all release records ordered by release time.
func (l *MemoryLedger) List(ctx context.Context) ([]*ReleaseRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]*ReleaseRecord, 0, len(l.records))

	for _, record := range l.records {
		found := *record
		records = append(records, &found)
	}

	sortReleaseRecords(records)

	return records, nil
}

// Close does nothing for the in-memory ledger.
func (l *MemoryLedger) Close() error {
	return nil
}

// sortReleaseRecords orders records by release time, then dataset ID for
// records released at the same instant.
func sortReleaseRecords(records []*ReleaseRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].ReleasedAt.Equal(records[j].ReleasedAt) {
			return records[i].DatasetID < records[j].DatasetID
		}

		return records[i].ReleasedAt.Before(records[j].ReleasedAt)
	})
}

// NoOpLedger is a ledger that records nothing.
type NoOpLedger struct{}

// NewNoOpLedger creates a new no-op ledger.
func NewNoOpLedger() *NoOpLedger {
	return &NoOpLedger{}
}

// Record does nothing.
func (l *NoOpLedger) Record(ctx context.Context, record *ReleaseRecord) error {
	return nil
}

// Get always reports the record as missing.
func (l *NoOpLedger) Get(ctx context.Context, datasetID string) (*ReleaseRecord, error) {
	return nil, ErrLedgerDisabled
}

// List always returns an empty list.
func (l *NoOpLedger) List(ctx context.Context) ([]*ReleaseRecord, error) {
	return []*ReleaseRecord{}, nil
}

// Close does nothing.
func (l *NoOpLedger) Close() error {
	return nil
}
