package media

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryUploader is an in-memory implementation for scaffolding and tests. It
// records every upload and serves deterministic URLs under a fake base.
type MemoryUploader struct {
	mu      sync.Mutex
	now     func() time.Time
	baseURL string
	uploads []File
	failure error
}

// MemoryOption customises the in-memory uploader.
type MemoryOption func(*MemoryUploader)

// WithMemoryClock overrides the clock used to derive object names.
func WithMemoryClock(clock func() time.Time) MemoryOption {
	return func(u *MemoryUploader) {
		if clock != nil {
			u.now = clock
		}
	}
}

// WithMemoryBaseURL overrides the URL prefix of returned locations.
func WithMemoryBaseURL(base string) MemoryOption {
	return func(u *MemoryUploader) {
		if base != "" {
			u.baseURL = base
		}
	}
}

// NewMemoryUploader creates an empty in-memory uploader.
func NewMemoryUploader(opts ...MemoryOption) *MemoryUploader {
	u := &MemoryUploader{
		now:     time.Now,
		baseURL: "https://storage.test/images",
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// FailWith makes every subsequent Upload return the supplied error.
func (u *MemoryUploader) FailWith(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failure = err
}

// Upload validates and records the file, returning its public URL.
func (u *MemoryUploader) Upload(_ context.Context, file File) (string, error) {
	if err := file.Validate(); err != nil {
		return "", err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.failure != nil {
		return "", &UploadError{Name: file.Name, Err: u.failure}
	}

	u.uploads = append(u.uploads, file)
	return fmt.Sprintf("%s/%s", u.baseURL, ObjectName(file, u.now())), nil
}

// Uploads returns the files stored so far.
func (u *MemoryUploader) Uploads() []File {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]File, len(u.uploads))
	copy(out, u.uploads)
	return out
}
