package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	options := badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(options)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_List_Uploads_Newest_First(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewMediaRepository(db, slog.Default())

	at := time.Now().UTC().Truncate(time.Second)
	records := []UploadRecord{
		{ID: uuid.New(), SessionID: "s-1", Filename: "a.png", MediaType: "image", UploadedAt: at},
		{ID: uuid.New(), SessionID: "s-2", Filename: "b.mp4", MediaType: "video", UploadedAt: at.Add(1 * time.Minute)},
		{ID: uuid.New(), SessionID: "s-1", Filename: "c.png", MediaType: "image", UploadedAt: at.Add(2 * time.Minute)},
	}
	for _, record := range records {
		req.NoError(repository.StoreUpload(record))
	}

	// When fetching the uploads
	fetched, err := repository.ListUploads(0)
	req.NoError(err)

	// Then they come back newest first
	req.Len(fetched, len(records))
	req.Equal(records[2].ID, fetched[0].ID)
	req.Equal(records[1].ID, fetched[1].ID)
	req.Equal(records[0].ID, fetched[2].ID)
	req.Equal("c.png", fetched[0].Filename)
	req.Equal("s-1", fetched[0].SessionID)
}

func Test_List_Uploads_Respects_Limit(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewMediaRepository(db, slog.Default())

	at := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		record := UploadRecord{
			ID:         uuid.New(),
			SessionID:  "s-1",
			Filename:   fmt.Sprintf("file-%d.png", i),
			UploadedAt: at.Add(time.Duration(i) * time.Minute),
		}
		req.NoError(repository.StoreUpload(record))
	}

	// When fetching with a limit
	fetched, err := repository.ListUploads(2)
	req.NoError(err)

	// Then only the most recent uploads are returned
	req.Len(fetched, 2)
	req.Equal("file-4.png", fetched[0].Filename)
	req.Equal("file-3.png", fetched[1].Filename)
}

func Test_List_Uploads_Empty_Store(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewMediaRepository(db, slog.Default())

	fetched, err := repository.ListUploads(10)
	req.NoError(err)
	req.Empty(fetched)
}
