package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"dm-relay/repositories"
)

type ViewerConfig struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	Limit          int    `envconfig:"VIEWER_LIMIT" default:"50"`
}

// The viewer opens the media index read-only while the relay may still
// hold the lock, and prints the most recent uploads.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config ViewerConfig
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the relay) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repository := repositories.NewMediaRepository(db, logs.GetLoggerFromString("ERROR"))
	uploads, err := repository.ListUploads(config.Limit)
	if err != nil {
		log.Fatalf("Failed to list uploads: %v", err)
	}

	color.Cyan.Printf("%d upload(s) in %s\n", len(uploads), config.BadgerFilepath)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Uploaded at", "Filename", "Media type", "MIME", "Size", "Session"})
	for _, upload := range uploads {
		table.Append([]string{
			upload.UploadedAt.Format("2006-01-02 15:04:05"),
			upload.Filename,
			upload.MediaType,
			upload.MIME,
			fmt.Sprintf("%d", upload.Size),
			upload.SessionID,
		})
	}
	table.Render()

	color.Green.Println("Done")
}
