// Package media defines the blob-store boundary for article imagery. The
// store itself is an external collaborator: implementations receive file
// bytes and return a permanent public URL.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 10MB, matching the storage bucket policy.
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrFileTooLarge    = errors.New("media: file exceeds the 10MB upload limit")
	ErrInvalidFileType = errors.New("media: unsupported file type, use JPG, PNG, GIF or WEBP")
	ErrEmptyFile       = errors.New("media: file has no content")
)

// allowed MIME types for article imagery.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// File carries an image selected in the editor but not yet uploaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Validate checks size and MIME type before any network round-trip.
func (f File) Validate() error {
	if len(f.Data) == 0 {
		return ErrEmptyFile
	}
	if len(f.Data) > MaxFileSize {
		return ErrFileTooLarge
	}
	if _, ok := allowedTypes[strings.ToLower(f.ContentType)]; !ok {
		return ErrInvalidFileType
	}
	return nil
}

// DataURI renders the file as an inline preview so the editor can display an
// image immediately, before the durable upload happens at save time.
func (f File) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", f.ContentType, base64.StdEncoding.EncodeToString(f.Data))
}

// Uploader persists a file in the blob store and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file File) (string, error)
}

// ObjectName derives a collision-resistant storage path for the file, keeping
// the original extension when the MIME type is recognised.
func ObjectName(f File, now time.Time) string {
	ext, ok := allowedTypes[strings.ToLower(f.ContentType)]
	if !ok {
		ext = "jpg"
		if idx := strings.LastIndex(f.Name, "."); idx >= 0 && idx < len(f.Name)-1 {
			ext = strings.ToLower(f.Name[idx+1:])
		}
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s.%s", now.UnixMilli(), suffix, ext)
}

// UploadError wraps a blob-store failure so callers can surface the cause and
// abort the save attempt.
type UploadError struct {
	Name string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("media: upload of %q failed: %v", e.Name, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
