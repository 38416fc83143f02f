package coinfolio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrUnknownRecord is returned when removing a record that is not stored.
var ErrUnknownRecord = errors.New("unknown asset record")

// Store is an append-only JSONL file of asset records. It is an AssetSink.
//
// A Store does not keep the file open, it can be shared by short lived
// processes. It is not safe for concurrent writes from several goroutines.
type Store struct {
	path  string
	newID func() uuid.UUID
}

// NewStore returns the store backed by the file at path. The file is created
// on the first write.
func NewStore(path string) *Store {
	return &Store{path: path, newID: uuid.New}
}

// Path returns the path of the backing file.
func (s *Store) Path() string { return s.path }

// AddAsset implements AssetSink. Write failures are logged.
func (s *Store) AddAsset(a Asset) {
	if _, err := s.Append(a); err != nil {
		log.Printf("cannot store asset %s: %v", a.CoinID(), err)
	}
}

// Append writes a at the end of the file and returns its record.
func (s *Store) Append(a Asset) (Record, error) {
	rec := Record{ID: s.newID(), Asset: a}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Record{}, fmt.Errorf("cannot open asset file %q: %w", s.path, err)
	}
	defer f.Close()

	if err := EncodeRecord(f, rec); err != nil {
		return Record{}, fmt.Errorf("cannot write to asset file %q: %w", s.path, err)
	}
	return rec, nil
}

// Records returns every record in file order. A missing file holds no record.
func (s *Store) Records() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read asset file %q: %w", s.path, err)
	}
	return records, nil
}

// Assets returns every stored asset in file order.
func (s *Store) Assets() ([]Asset, error) {
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	assets := make([]Asset, 0, len(records))
	for _, r := range records {
		assets = append(assets, r.Asset)
	}
	return assets, nil
}

// Remove deletes the record with the given id. The file is rewritten
// atomically.
func (s *Store) Remove(id uuid.UUID) error {
	records, err := s.Records()
	if err != nil {
		return err
	}
	var b bytes.Buffer
	found := false
	for _, r := range records {
		if r.ID == id {
			found = true
			continue
		}
		if err := EncodeRecord(&b, r); err != nil {
			return err
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownRecord, id)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b.Bytes()); err != nil {
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
