package services

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"dm-relay/contract"
	"dm-relay/domain"
	"dm-relay/observability"
	"dm-relay/repositories"
)

// UploadCommand carries one media upload. SessionID and MediaType are
// optional: when both are present, the stored URL is parked on the
// session as pending media for the next message.
type UploadCommand struct {
	SessionID domain.SessionID
	MediaType string
	Filename  string
	Content   io.Reader
}

type UploadResult struct {
	FileURL string
}

type IMediaService interface {
	Upload(cmd UploadCommand) (UploadResult, error)
}

// MediaService is the binary object storage collaborator: it takes bytes
// and a filename and produces an opaque URL. The relay core never reads
// the file back; it only stores and forwards the URL.
type MediaService struct {
	repository repositories.IMediaRepository
	relay      contract.IRelay
	monitor    *observability.RelayMonitor
	log        *slog.Logger
	uploadDir  string
	baseURL    string
}

func NewMediaService(
	repository repositories.IMediaRepository,
	relay contract.IRelay,
	monitor *observability.RelayMonitor,
	log *slog.Logger,
	uploadDir, baseURL string) *MediaService {
	return &MediaService{
		repository: repository,
		relay:      relay,
		monitor:    monitor,
		log:        log,
		uploadDir:  uploadDir,
		baseURL:    baseURL,
	}
}

// Upload writes the bytes under "{unix-millis}-{filename}", sniffs the
// real content type, records the upload, and returns the public URL.
func (s *MediaService) Upload(cmd UploadCommand) (UploadResult, error) {
	name := filepath.Base(cmd.Filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "file"
	}
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	path := filepath.Join(s.uploadDir, storedName)

	f, err := os.Create(path)
	if err != nil {
		return UploadResult{}, fmt.Errorf("creating upload file: %w", err)
	}
	size, err := io.Copy(f, cmd.Content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return UploadResult{}, fmt.Errorf("writing upload file: %w", err)
	}

	// The declared mediaType drives rendering; the sniffed MIME is kept
	// alongside for the operator's benefit only.
	detected := "application/octet-stream"
	if mime, err := mimetype.DetectFile(path); err == nil {
		detected = mime.String()
	}

	fileURL := s.baseURL + "/uploads/" + url.PathEscape(storedName)
	record := repositories.UploadRecord{
		ID:         uuid.New(),
		SessionID:  string(cmd.SessionID),
		Filename:   name,
		StoredName: storedName,
		MediaType:  cmd.MediaType,
		MIME:       detected,
		URL:        fileURL,
		Size:       size,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repository.StoreUpload(record); err != nil {
		// The file is already on disk and reachable; losing the index
		// entry only degrades the viewer.
		s.log.Error("Failed to index upload", "stored_name", storedName, "error", err)
	}

	if cmd.SessionID != "" && cmd.MediaType != "" {
		s.relay.AttachMedia(cmd.SessionID, domain.PendingMedia{
			MediaType: cmd.MediaType,
			MediaURL:  fileURL,
		})
	}

	s.monitor.IncrUploads()
	s.log.Info("Media stored", "stored_name", storedName, "mime", detected, "size", size)
	return UploadResult{FileURL: fileURL}, nil
}
