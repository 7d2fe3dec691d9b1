//go:generate go run go.uber.org/mock/mockgen -source=media.go -destination=../mocks/mock_media_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

type IMediaRepository interface {
	StoreUpload(record UploadRecord) error
	ListUploads(limit int) ([]UploadRecord, error)
}

type MediaRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMediaRepository(db *badger.DB, log *slog.Logger) MediaRepository {
	return MediaRepository{db: db, log: log}
}

// UploadRecord describes one stored media file. The relay core only ever
// forwards the URL; the record exists for the viewer CLI and the inspect
// page.
type UploadRecord struct {
	ID         uuid.UUID
	SessionID  string
	Filename   string
	StoredName string
	MediaType  string
	MIME       string
	URL        string
	Size       int64
	UploadedAt time.Time
}

// StoreUpload persists an upload record in BadgerDB.
// The key is formatted as "upload:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     uploads land at the same nanosecond.
func (m MediaRepository) StoreUpload(record UploadRecord) error {
	key := fmt.Sprintf("upload:%019d:%s",
		record.UploadedAt.UnixNano(),
		record.ID,
	)
	bytes, err := cbor.Marshal(record)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListUploads returns the most recent upload records, newest first,
// using a reverse prefix scan. Thanks to the padded timestamp in the
// key, records are naturally sorted by time.
func (m MediaRepository) ListUploads(limit int) ([]UploadRecord, error) {
	var records []UploadRecord
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte("upload:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// In reverse mode the iterator must be seeked past the last
		// possible key of the prefix.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var record UploadRecord
				if err := cbor.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}
