package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"dzpay/internal/models"
)

// FileStore keeps every transaction in memory and mirrors the full set to a
// JSON file, keyed by transaction ID. In-memory state is the source of truth
// for the process lifetime; the file write is best-effort and serialized
// through a single writer goroutine so partial writes never interleave.
type FileStore struct {
	path string

	mu      sync.RWMutex
	records map[string]*models.Transaction

	writes  chan struct{} // coalesced snapshot requests
	done    chan struct{}
	stopped chan struct{} // closed when the writer goroutine exits
	once    sync.Once
}

// NewFileStore loads any previously persisted transactions from path and
// starts the background writer.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		panic("file store path is required")
	}

	s := &FileStore{
		path:    path,
		records: make(map[string]*models.Transaction),
		writes:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	go s.writer()
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var records map[string]*models.Transaction
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, tx := range records {
		s.records[id] = tx
	}
	log.Printf("loaded %d transactions from %s", len(records), s.path)
	return nil
}

func (s *FileStore) Get(id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tx.Clone(), nil
}

func (s *FileStore) Save(tx *models.Transaction) error {
	s.mu.Lock()
	s.records[tx.ID] = tx.Clone()
	s.mu.Unlock()

	s.requestWrite()
	return nil
}

func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()

	s.requestWrite()
	return nil
}

func (s *FileStore) All() ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Transaction, 0, len(s.records))
	for _, tx := range s.records {
		out = append(out, tx.Clone())
	}
	return out, nil
}

func (s *FileStore) ByOrder(orderID string) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Transaction
	for _, tx := range s.records {
		if tx.OrderID == orderID {
			out = append(out, tx.Clone())
		}
	}
	return out, nil
}

// Close flushes the final snapshot and stops the writer.
func (s *FileStore) Close() error {
	s.once.Do(func() { close(s.done) })
	<-s.stopped
	return s.flush()
}

// requestWrite signals the writer goroutine; a pending signal already
// covers this mutation so a full channel is fine.
func (s *FileStore) requestWrite() {
	select {
	case s.writes <- struct{}{}:
	default:
	}
}

func (s *FileStore) writer() {
	defer close(s.stopped)
	for {
		// Prefer shutdown over pending writes; Close flushes the final
		// snapshot itself, so a skipped signal is never lost data.
		select {
		case <-s.done:
			return
		default:
		}
		select {
		case <-s.writes:
			if err := s.flush(); err != nil {
				log.Printf("failed to persist transactions: %v", err)
			}
		case <-s.done:
			return
		}
	}
}

// flush rewrites the whole transaction map. Written to a temp file and
// renamed so a crash mid-write never corrupts the store.
func (s *FileStore) flush() error {
	s.mu.RLock()
	snapshot := make(map[string]*models.Transaction, len(s.records))
	for id, tx := range s.records {
		snapshot[id] = tx
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".transactions-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
