package upload

import (
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/drivedrop/service/internal/apperr"
	"github.com/drivedrop/service/internal/storage"
)

// fakeStorage records the last upload and replies with obj or err.
type fakeStorage struct {
	obj *storage.Object
	err error

	name        string
	data        []byte
	size        int64
	contentType string
	deadline    bool
}

func (f *fakeStorage) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*storage.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	_, f.deadline = ctx.Deadline()
	f.name, f.data, f.size, f.contentType = name, data, size, contentType
	if f.err != nil {
		return nil, f.err
	}
	return f.obj, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func staticBackend(s storage.Storage) *storage.Lazy {
	return storage.NewLazy(func(context.Context) (storage.Storage, error) { return s, nil })
}

func failingBackend(err error) *storage.Lazy {
	return storage.NewLazy(func(context.Context) (storage.Storage, error) { return nil, err })
}

// fixedClock returns times that advance by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(step)
		return t
	}
}

func newTestService(backend Backend) *Service {
	svc := NewService(backend, time.Minute, quietLogger())
	svc.now = fixedClock(time.Unix(1700000000, 0), 1234*time.Millisecond)
	return svc
}

func TestService_Upload(t *testing.T) {
	store := &fakeStorage{obj: &storage.Object{
		ID:          "1AbC",
		Name:        "1700000000_report.txt",
		Size:        5,
		ContentType: "text/plain",
		WebViewLink: "https://drive.google.com/file/d/1AbC/view",
	}}
	svc := newTestService(staticBackend(store))

	res, err := svc.Upload(context.Background(), Request{
		Data:        []byte("hello"),
		Filename:    "docs/report.txt",
		ContentType: "text/plain",
	})

	require.NoError(t, err)
	assert.Equal(t, "1700000000_report.txt", store.name)
	assert.Equal(t, []byte("hello"), store.data)
	assert.Equal(t, int64(5), store.size)
	assert.Equal(t, "text/plain", store.contentType)
	assert.True(t, store.deadline, "backend call must carry a timeout")

	assert.Equal(t, &Result{
		FileID:      "1AbC",
		FileName:    "1700000000_report.txt",
		FileSize:    5,
		MimeType:    "text/plain",
		UploadTime:  1.23,
		WebViewLink: "https://drive.google.com/file/d/1AbC/view",
	}, res)
}

func TestService_Upload_FallsBackToLocalValues(t *testing.T) {
	store := &fakeStorage{obj: &storage.Object{ID: "1AbC"}}
	svc := newTestService(staticBackend(store))

	res, err := svc.Upload(context.Background(), Request{
		Data:        []byte("0123456789"),
		Filename:    "a.bin",
		ContentType: "application/octet-stream",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), res.FileSize)
	assert.Equal(t, "application/octet-stream", res.MimeType)
	assert.Equal(t, "1700000000_a.bin", res.FileName)
}

func TestService_Upload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		backend  Backend
		wantKind apperr.Kind
		wantMsg  string
	}{
		{
			name:     "unresolvable credentials",
			backend:  failingBackend(apperr.New(apperr.KindConfiguration, "Invalid JSON in GOOGLE_SERVICE_ACCOUNT_KEY", nil)),
			wantKind: apperr.KindConfiguration,
			wantMsg:  "Server configuration error: Invalid JSON in GOOGLE_SERVICE_ACCOUNT_KEY",
		},
		{
			name: "backend rejects the call",
			backend: staticBackend(&fakeStorage{err: &storage.BackendError{
				Provider: "Google Drive",
				Op:       "create",
				Err:      errors.New("googleapi: Error 403: The user's Drive storage quota has been exceeded."),
			}}),
			wantKind: apperr.KindBackend,
			wantMsg:  "Google Drive API error: googleapi: Error 403",
		},
		{
			name: "service account refused by token endpoint",
			backend: staticBackend(&fakeStorage{err: &storage.BackendError{
				Provider: "Google Drive",
				Op:       "create",
				Err: &url.Error{Op: "Post", URL: "https://www.googleapis.com/upload/drive/v3/files",
					Err: &oauth2.RetrieveError{ErrorCode: "invalid_grant", ErrorDescription: "Invalid JWT Signature."}},
			}}),
			wantKind: apperr.KindBackend,
			wantMsg:  "invalid_grant",
		},
		{
			name:     "unexpected failure",
			backend:  staticBackend(&fakeStorage{err: errors.New("connection reset by peer")}),
			wantKind: apperr.KindInternal,
			wantMsg:  "Upload failed: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.backend)

			res, err := svc.Upload(context.Background(), Request{Data: []byte("x"), Filename: "x.txt", ContentType: "text/plain"})

			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRoundSeconds(t *testing.T) {
	assert.Equal(t, 0.0, roundSeconds(0))
	assert.Equal(t, 0.01, roundSeconds(5*time.Millisecond))
	assert.Equal(t, 1.23, roundSeconds(1234*time.Millisecond))
	assert.Equal(t, 2.0, roundSeconds(1999*time.Millisecond))
}
