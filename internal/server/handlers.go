package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/jonathan/brd-generator/internal/extraction"
)

// UploadResponse represents the success response for /api/upload and
// /api/google/process
type UploadResponse struct {
	Success bool   `json:"success"`
	BRDID   string `json:"brd_id"`
	Message string `json:"message"`
}

// GoogleProcessRequest represents the request body for /api/google/process
type GoogleProcessRequest struct {
	FileID   string `json:"fileId" validate:"required"`
	FileType string `json:"fileType" validate:"required,oneof=document spreadsheet"`
	Token    string `json:"token" validate:"required"`
}

// AuthURLResponse represents the response for /api/google/auth
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// handleUpload accepts a multipart file upload and runs the full pipeline
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "File exceeds the upload size limit")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file part")
		return
	}
	defer func() { _ = file.Close() }()

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		s.errorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if !s.cfg.ExtensionAllowed(ext) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	// Store the upload under a unique name to avoid collisions
	path := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filename))
	if err := saveUpload(file, path); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}

	src, err := extraction.ForUpload(path, filename)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	brdID, err := s.runner.Run(r.Context(), src)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success: true,
		BRDID:   brdID,
		Message: "File processed successfully",
	})
}

// handleGoogleAuth returns the OAuth consent URL for the configured client
func (s *Server) handleGoogleAuth(w http.ResponseWriter, _ *http.Request) {
	if s.oauth == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Google OAuth is not configured")
		return
	}

	url := s.oauth.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("include_granted_scopes", "true"))
	s.jsonResponse(w, http.StatusOK, AuthURLResponse{AuthURL: url})
}

// handleGoogleProcess runs the pipeline over a Google Doc or Sheet
func (s *Server) handleGoogleProcess(w http.ResponseWriter, r *http.Request) {
	var req GoogleProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	var src extraction.Source
	switch req.FileType {
	case "document":
		src = &extraction.GoogleDocSource{FileID: req.FileID, AccessToken: req.Token}
	case "spreadsheet":
		src = &extraction.GoogleSheetSource{FileID: req.FileID, AccessToken: req.Token}
	}

	brdID, err := s.runner.Run(r.Context(), src)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success: true,
		BRDID:   brdID,
		Message: "Google file processed successfully",
	})
}

// handleGetBRD returns a persisted BRD by id
func (s *Server) handleGetBRD(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	if _, err := uuid.Parse(idStr); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid BRD ID format")
		return
	}

	record, err := s.store.Get(r.Context(), idStr)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// saveUpload copies the uploaded stream to its storage path
func saveUpload(file io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, file)
	return err
}
