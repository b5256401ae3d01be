package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records uploads and can be told to fail whole buckets.
type fakeStore struct {
	mu          sync.Mutex
	uploads     []string // "bucket/path"
	failBuckets map[string]bool
}

func (f *fakeStore) Upload(ctx context.Context, bucket, path, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBuckets[bucket] {
		return errors.New("bucket unavailable")
	}
	f.uploads = append(f.uploads, bucket+"/"+path)
	return nil
}

func (f *fakeStore) PublicURL(bucket, path string) string {
	return "https://cdn.example/" + bucket + "/" + path
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// fileHeader builds a real multipart.FileHeader carrying the given bytes.
func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func pdfBytes() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 64)...)
}

func TestProcess_NoFilesMeansNotAttempted(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	rs := svc.Process(context.Background(), Input{})
	assert.Equal(t, NotAttempted, rs.Menu.State)
	assert.Equal(t, NotAttempted, rs.FAQ.State)
	assert.Empty(t, rs.Documents)
	assert.Empty(t, rs.StoredFiles())
}

func TestProcess_MenuFailureDoesNotStopFAQ(t *testing.T) {
	store := &fakeStore{failBuckets: map[string]bool{"menus": true}}
	svc := NewService(store, nil)

	rs := svc.Process(context.Background(), Input{
		Menu: fileHeader(t, "menu.pdf", "application/pdf", pdfBytes()),
		FAQ:  fileHeader(t, "faq.pdf", "application/pdf", pdfBytes()),
	})

	assert.Equal(t, Failed, rs.Menu.State)
	assert.Error(t, rs.Menu.Err)
	assert.Empty(t, rs.Menu.URL)

	assert.Equal(t, Succeeded, rs.FAQ.State)
	assert.True(t, strings.HasPrefix(rs.FAQ.URL, "https://cdn.example/faqs/"))
}

func TestProcess_RejectsOversizedFileBeforeUpload(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	big := fileHeader(t, "menu.pdf", "application/pdf", bytes.Repeat([]byte("x"), MaxFileSize+1))
	rs := svc.Process(context.Background(), Input{Menu: big})

	assert.Equal(t, Failed, rs.Menu.State)
	assert.ErrorIs(t, rs.Menu.Err, ErrFileTooLarge)
	assert.Zero(t, store.count())
}

func TestProcess_RejectsDisallowedMimeType(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	exe := fileHeader(t, "menu.exe", "application/x-msdownload", []byte("MZ......"))
	rs := svc.Process(context.Background(), Input{Menu: exe})

	assert.Equal(t, Failed, rs.Menu.State)
	assert.ErrorIs(t, rs.Menu.Err, ErrInvalidMimeType)
	assert.Zero(t, store.count())
}

func TestProcess_DocumentsAllowWordAndPlainText(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	rs := svc.Process(context.Background(), Input{
		Documents: []*multipart.FileHeader{
			fileHeader(t, "notes.txt", "text/plain", []byte("opening hours")),
			fileHeader(t, "contract.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("PK\x03\x04 word payload")),
		},
	})

	require.Len(t, rs.Documents, 2)
	for _, d := range rs.Documents {
		assert.Equal(t, Succeeded, d.State, d.Filename)
	}
	assert.Len(t, rs.DocumentURLs(), 2)
}

func TestProcess_DocumentFanOutTracksEachIndependently(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	rs := svc.Process(context.Background(), Input{
		Documents: []*multipart.FileHeader{
			fileHeader(t, "ok.pdf", "application/pdf", pdfBytes()),
			fileHeader(t, "empty.pdf", "application/pdf", nil),
			fileHeader(t, "also-ok.pdf", "application/pdf", pdfBytes()),
		},
	})

	require.Len(t, rs.Documents, 3)
	assert.Equal(t, Succeeded, rs.Documents[0].State)
	assert.Equal(t, Failed, rs.Documents[1].State)
	assert.ErrorIs(t, rs.Documents[1].Err, ErrEmptyFile)
	assert.Equal(t, Succeeded, rs.Documents[2].State)

	assert.Len(t, rs.DocumentURLs(), 2)
}

func TestProcess_SniffsTypeWhenHeaderIsGeneric(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	// Declared octet-stream, actual bytes are a PNG header.
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)
	rs := svc.Process(context.Background(), Input{
		Menu: fileHeader(t, "menu.png", "application/octet-stream", png),
	})

	assert.Equal(t, Succeeded, rs.Menu.State)
}

func TestStoredFiles_OrdersMenuAndFAQFirst(t *testing.T) {
	rs := ResultSet{
		Menu: Outcome{State: Succeeded, URL: "https://cdn.example/menus/m.pdf"},
		FAQ:  Outcome{State: Failed, Err: errors.New("nope")},
		Documents: []DocumentOutcome{
			{Filename: "a.pdf", Outcome: Outcome{State: Succeeded, URL: "https://cdn.example/documents/a.pdf"}},
		},
	}

	files := rs.StoredFiles()
	require.Len(t, files, 2)
	assert.Equal(t, "menu", files[0].Filename)
	assert.Equal(t, "a.pdf", files[1].Filename)
}

func TestObjectName_KeepsExtension(t *testing.T) {
	name := objectName("My Menu.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, " ")
}
