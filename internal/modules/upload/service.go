package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chatflows/internal/storage"
)

const MaxFileSize = 5 * 1024 * 1024 // 5 MB

type Category string

const (
	CategoryMenu     Category = "menu"
	CategoryFAQ      Category = "faq"
	CategoryDocument Category = "document"
)

func (c Category) bucket() string {
	switch c {
	case CategoryMenu:
		return storage.BucketMenus
	case CategoryFAQ:
		return storage.BucketFAQs
	default:
		return storage.BucketDocuments
	}
}

// menuMimeTypes gates menu and FAQ files: images and PDF only.
var menuMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// documentMimeTypes additionally allows plain text and Word formats for
// generic additional documents.
var documentMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func (c Category) allows(mimeType string) bool {
	if c == CategoryDocument {
		return documentMimeTypes[mimeType]
	}
	return menuMimeTypes[mimeType]
}

// ObjectStore is the object-storage collaborator contract.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte) error
	PublicURL(bucket, path string) string
}

// Input carries the categorized files of one submission.
type Input struct {
	Menu      *multipart.FileHeader
	FAQ       *multipart.FileHeader
	Documents []*multipart.FileHeader
}

// Service uploads each category independently. One category failing never
// stops the others and never aborts the enclosing submission; failures are
// captured in the ResultSet and logged.
type Service struct {
	store   ObjectStore
	loggerf func(format string, args ...interface{})
}

func NewService(store ObjectStore, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{store: store, loggerf: loggerf}
}

// Process attempts every category and joins all attempts before returning,
// so persistence always sees final outcomes. Additional documents fan out
// concurrently; they share no state and are tracked independently.
func (s *Service) Process(ctx context.Context, in Input) ResultSet {
	var rs ResultSet

	rs.Menu = s.attempt(ctx, in.Menu, CategoryMenu)
	rs.FAQ = s.attempt(ctx, in.FAQ, CategoryFAQ)

	if len(in.Documents) > 0 {
		rs.Documents = make([]DocumentOutcome, len(in.Documents))
		var wg sync.WaitGroup
		for i, fh := range in.Documents {
			wg.Add(1)
			go func(i int, fh *multipart.FileHeader) {
				defer wg.Done()
				rs.Documents[i] = DocumentOutcome{
					Filename: fh.Filename,
					Outcome:  s.attempt(ctx, fh, CategoryDocument),
				}
			}(i, fh)
		}
		wg.Wait()
	}

	return rs
}

func (s *Service) attempt(ctx context.Context, fh *multipart.FileHeader, cat Category) Outcome {
	if fh == nil {
		return Outcome{State: NotAttempted}
	}
	url, err := s.uploadOne(ctx, fh, cat)
	if err != nil {
		s.loggerf("level=error msg=upload failed category=%s file=%q err=%v", cat, fh.Filename, err)
		return Outcome{State: Failed, Err: err}
	}
	s.loggerf("level=info msg=upload ok category=%s file=%q url=%s", cat, fh.Filename, url)
	return Outcome{State: Succeeded, URL: url}
}

// uploadOne validates size and type before any network call, then stores the
// object under a collision-resistant generated name.
func (s *Service) uploadOne(ctx context.Context, fh *multipart.FileHeader, cat Category) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	mimeType := declaredType(fh)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = strings.Split(http.DetectContentType(sniffSlice(data)), ";")[0]
	}
	if !cat.allows(mimeType) {
		return "", fmt.Errorf("%w: %s", ErrInvalidMimeType, mimeType)
	}

	bucket := cat.bucket()
	path := objectName(fh.Filename)
	if err := s.store.Upload(ctx, bucket, path, mimeType, data); err != nil {
		return "", err
	}
	return s.store.PublicURL(bucket, path), nil
}

func declaredType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	return strings.TrimSpace(strings.Split(ct, ";")[0])
}

func sniffSlice(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}

// objectName builds a timestamp + random suffix name, keeping the original
// extension so public URLs stay type-hinting.
func objectName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), suffix, ext)
}
