package cloudgov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/datagov-metrics/cloudgov/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNATSURLRequired = errors.New("NATS URL is required")
)

// NATSLedgerConfig configures the NATS-backed release ledger.
type NATSLedgerConfig struct {
	// URL is the NATS server URL, e.g. "nats://localhost:4222".
	URL string

	// Bucket is the JetStream key-value bucket holding release records.
	// Defaults to "dataset-releases".
	Bucket string
}

// NATSLedger stores release records in a NATS JetStream key-value bucket so
// they survive process restarts and are visible to other consumers.
type NATSLedger struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSLedger connects to NATS and opens the ledger bucket, creating it
// when it does not exist yet.
func NewNATSLedger(config *NATSLedgerConfig) (*NATSLedger, error) {
	if config == nil || config.URL == "" {
		return nil, ErrNATSURLRequired
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = constants.DefaultLedgerBucket
	}

	conn, err := nats.Connect(config.URL, nats.Name(constants.LedgerConnectionName))
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("getting JetStream context: %w", err)
	}

	kv, err := js.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      bucket,
			Description: "cloud.gov dataset release records",
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening ledger bucket %s: %w", bucket, err)
	}

	return &NATSLedger{conn: conn, kv: kv}, nil
}

// Record stores a release record under the dataset ID.
func (l *NATSLedger) Record(ctx context.Context, record *ReleaseRecord) error {
	if record == nil {
		return ErrRecordRequired
	}

	if record.DatasetID == "" {
		return ErrDatasetIDRequired
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling release record: %w", err)
	}

	_, err = l.kv.Put(record.DatasetID, data)
	if err != nil {
		return fmt.Errorf("storing release record for %s: %w", record.DatasetID, err)
	}

	return nil
}

// Get retrieves the release record for a dataset.
func (l *NATSLedger) Get(ctx context.Context, datasetID string) (*ReleaseRecord, error) {
	entry, err := l.kv.Get(datasetID)
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, datasetID)
	}

	if err != nil {
		return nil, fmt.Errorf("loading release record for %s: %w", datasetID, err)
	}

	var record ReleaseRecord

	err = json.Unmarshal(entry.Value(), &record)
	if err != nil {
		return nil, fmt.Errorf("parsing release record for %s: %w", datasetID, err)
	}

	return &record, nil
}

// List returns all release records ordered by release time.
func (l *NATSLedger) List(ctx context.Context) ([]*ReleaseRecord, error) {
	keys, err := l.kv.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return []*ReleaseRecord{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing release records: %w", err)
	}

	records := make([]*ReleaseRecord, 0, len(keys))

	for _, key := range keys {
		record, err := l.Get(ctx, key)
		if errors.Is(err, ErrRecordNotFound) {
			// Deleted between Keys and Get.
			continue
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	sortReleaseRecords(records)

	return records, nil
}

// Close closes the NATS connection.
func (l *NATSLedger) Close() error {
	if l.conn != nil {
		l.conn.Close()
	}

	return nil
}
