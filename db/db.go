package db

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"polarplotter/models"
)

// DB records export metadata in an embedded badger store. The exported files
// themselves live on disk; badger only keeps what the listing endpoints need.
type DB struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

// NewInMemory opens a throwaway store, used in tests.
func NewInMemory() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

func exportKey(filename string) []byte {
	return []byte(fmt.Sprintf("export:%s", filename))
}

func (d *DB) StoreExport(rec models.ExportRecord) error {
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return txn.Set(exportKey(rec.Filename), data)
	})
}

func (d *DB) GetExport(filename string) (*models.ExportRecord, error) {
	var rec models.ExportRecord

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(exportKey(filename))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("export %s not found", filename)
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// ListExports returns all export records, newest first.
func (d *DB) ListExports() ([]models.ExportRecord, error) {
	var records []models.ExportRecord

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("export:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var rec models.ExportRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt != records[j].CreatedAt {
			return records[i].CreatedAt > records[j].CreatedAt
		}
		return strings.Compare(records[i].Filename, records[j].Filename) > 0
	})

	return records, nil
}
