package accesslog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const defaultBucket = "access_log"

// Journal keeps access log entries in a BoltDB bucket ordered by time.
type Journal struct {
	db     *bolt.DB
	bucket []byte
}

// OpenJournal initializes the BoltDB file and ensures the bucket exists.
func OpenJournal(path string, bucket string) (*Journal, error) {
	if bucket == "" {
		bucket = defaultBucket
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Record implements Sink.
func (j *Journal) Record(entry Entry) error {
	return j.Append(entry)
}

// Append stores the entry under a time-ordered key.
func (j *Journal) Append(entry Entry) error {
	if j == nil || j.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(j.bucket).Put(buildKey(entry.Timestamp), payload)
	})
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil || j.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 50
	}

	entries := make([]Entry, 0, limit)
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// Size returns the number of stored entries.
func (j *Journal) Size() (int, error) {
	if j == nil || j.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := j.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(j.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Cleanup removes entries recorded before olderThan and reports how many were dropped.
func (j *Journal) Cleanup(olderThan time.Time) (int, error) {
	if j == nil || j.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	limit := []byte(fmt.Sprintf("%020d", olderThan.UnixNano()))

	var removed int
	err := j.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		// keys sort by timestamp, so stop at the first one past the limit
		for k, _ := c.First(); k != nil && bytes.Compare(k[:len(limit)], limit) < 0; k, _ = c.First() {
			if err := c.Delete(); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// Close closes the Bolt database.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Stats reports transaction counters for the health status. A closed journal reports zeros.
func (j *Journal) Stats() (stats bolt.Stats) {
	if j != nil && j.db != nil {
		stats = j.db.Stats()
	}
	return stats
}

func buildKey(at time.Time) []byte {
	return []byte(fmt.Sprintf("%020d_%s", at.UnixNano(), uuid.NewString()))
}
