// Package transport is the connection layer in front of the relay core:
// an HTTP server carrying the websocket relay endpoint, the media upload
// collaborator, and static serving of uploaded files.
package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dm-relay/auth"
	"dm-relay/domain"
	"dm-relay/errors"
	"dm-relay/services"
)

type Server struct {
	log            *slog.Logger
	relayService   services.IRelayService
	mediaService   services.IMediaService
	tokens         *auth.TokenIssuer
	connBufferSize int
	echo           *echo.Echo
}

func NewServer(
	log *slog.Logger,
	relayService services.IRelayService,
	mediaService services.IMediaService,
	tokens *auth.TokenIssuer,
	connBufferSize int,
	uploadDir string) *Server {
	s := &Server{
		log:            log,
		relayService:   relayService,
		mediaService:   mediaService,
		tokens:         tokens,
		connBufferSize: connBufferSize,
		echo:           echo.New(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.GET("/", s.health)
	s.echo.GET("/ws", s.handleSocket)
	s.echo.POST("/upload", s.handleUpload)
	s.echo.Static("/uploads", uploadDir)
	return s
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "Health ok")
}

// handleUpload receives a multipart file, stores it, and answers with its
// public URL. The media token issued at login ties the upload to a
// session, so a sessionId form field is only honoured when it matches.
func (s *Server) handleUpload(c echo.Context) error {
	sessionID, err := s.tokens.ValidateMediaToken(bearerToken(c))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": errors.ErrInvalidToken.Error()})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errors.ErrNoFile.Error()})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Unreadable file"})
	}
	defer src.Close()

	mediaType := c.FormValue("mediaType")
	var attachTo domain.SessionID
	if sid := c.FormValue("sessionId"); sid != "" {
		if sid != string(sessionID) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Session mismatch"})
		}
		attachTo = sessionID
	}

	result, err := s.mediaService.Upload(services.UploadCommand{
		SessionID: attachTo,
		MediaType: mediaType,
		Filename:  fileHeader.Filename,
		Content:   src,
	})
	if err != nil {
		s.log.Error("Upload failed", "filename", fileHeader.Filename, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Upload failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"fileUrl": result.FileURL})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	// Browser FormData uploads cannot always set headers.
	return c.FormValue("token")
}
