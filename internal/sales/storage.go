package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNoData is returned when the ledger file is missing or holds no rows.
var ErrNoData = errors.New("no sales data available")

// Storage is the main interface for the ledger storage layer.
type Storage interface {
	Initialize() error
	Append(record SaleRecord) error
	Load() ([]SaleRecord, error)
	Export() ([]byte, error)
}

// CSVStorage persists the ledger as a single flat CSV file with the fixed
// four-column header. The file grows only by append and is never mutated in
// place. A RWMutex serializes the read-modify-write inside Append so that
// concurrent appends cannot lose rows; readers always see fully written
// prior state.
type CSVStorage struct {
	mu   sync.RWMutex
	path string
}

// NewCSVStorage instantiates a CSVStorage over the given file path. The file
// is not touched until Initialize or the first operation.
func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

// Initialize creates the backing file with the four-column header and no
// rows if it does not exist yet. Idempotent.
func (s *CSVStorage) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat ledger file: %w", err)
	}
	return s.writeAll(nil)
}

// Append reads the entire current ledger, adds the record as the final row,
// and writes the whole file back, all under the write lock.
func (s *CSVStorage) Append(record SaleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil && !errors.Is(err, ErrNoData) {
		return err
	}
	return s.writeAll(append(records, record))
}

// Load returns the full ordered snapshot of persisted records, or ErrNoData
// when the file is missing or has no data rows.
func (s *CSVStorage) Load() ([]SaleRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}
	return records, nil
}

// Export returns the raw persisted bytes of the ledger file, byte-for-byte.
func (s *CSVStorage) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	return data, nil
}

func (s *CSVStorage) readAll() ([]SaleRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows already persisted are accepted as-is
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil // header only
	}
	records := make([]SaleRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func (s *CSVStorage) writeAll(records []SaleRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create ledger file: %w", err)
	}
	w := csv.NewWriter(f)
	_ = w.Write(Header)
	for _, r := range records {
		_ = w.Write(r.row())
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close ledger file: %w", err)
	}
	return nil
}
