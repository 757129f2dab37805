package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxUploadSize mirrors the backend's upload limit.
const MaxUploadSize = 50 * 1024 * 1024

var (
	ErrFileTooLarge    = errors.New("file size too large, maximum 50MB allowed")
	ErrUnsupportedFile = errors.New("only image or video files can be uploaded")
)

var uploadExtensions = map[string]string{
	".jpg": "image", ".jpeg": "image", ".png": "image", ".gif": "image", ".webp": "image",
	".mp4": "video", ".webm": "video", ".mov": "video", ".avi": "video",
}

// ValidateUpload checks name and size against the backend's constraints
// before any bytes are sent, and returns the file_type to submit.
func ValidateUpload(filename string, size int64) (string, error) {
	if size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	fileType, ok := uploadExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", ErrUnsupportedFile
	}
	return fileType, nil
}

// Upload sends a media file as multipart form data and returns the URL
// the backend stored it under.
func (c *Client) Upload(ctx context.Context, filename string, fileType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := w.WriteField("file_type", fileType); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var resp struct {
		OK      bool   `json:"ok"`
		FileURL string `json:"file_url"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.FileURL, nil
}
