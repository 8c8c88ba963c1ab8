package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/auth"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/drivedrop/service/internal/apperr"
)

const driveProvider = "Google Drive"

// driveFields are the file properties requested back from files.create.
const driveFields = "id, name, size, mimeType, webViewLink"

// DriveStorage implements Storage by creating files inside a single Drive folder.
type DriveStorage struct {
	svc      *drive.Service
	folderID string
}

// NewDriveStorage creates a Drive client. Pass option.WithCredentials in
// production; tests point it at a fake server with option.WithEndpoint.
func NewDriveStorage(ctx context.Context, folderID string, opts ...option.ClientOption) (*DriveStorage, error) {
	if folderID == "" {
		return nil, apperr.New(apperr.KindConfiguration, "GOOGLE_DRIVE_FOLDER_ID environment variable is not set", nil)
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, apperr.Configuration("create drive client: %w", err)
	}

	return &DriveStorage{svc: svc, folderID: folderID}, nil
}

// Upload creates name in the configured folder. The whole payload goes out in
// one request; size is only informational for Drive.
func (s *DriveStorage) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (*Object, error) {
	meta := &drive.File{
		Name:    name,
		Parents: []string{s.folderID},
	}

	f, err := s.svc.Files.Create(meta).
		Media(reader, googleapi.ContentType(contentType)).
		Fields(driveFields).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		if isDriveRejection(err) {
			return nil, &BackendError{Provider: driveProvider, Op: "create", Err: err}
		}
		return nil, fmt.Errorf("create drive file %q: %w", name, err)
	}

	return &Object{
		ID:          f.Id,
		Name:        f.Name,
		Size:        f.Size,
		ContentType: f.MimeType,
		WebViewLink: f.WebViewLink,
	}, nil
}

// isDriveRejection reports whether err is an answer from Google rather than a
// transport failure: an API error, or a token endpoint refusing the service
// account (revoked key, disabled account, wrong token_uri).
func isDriveRejection(err error) bool {
	var (
		apiErr   *googleapi.Error
		tokenErr *oauth2.RetrieveError
		authErr  *auth.Error
	)
	return errors.As(err, &apiErr) || errors.As(err, &tokenErr) || errors.As(err, &authErr)
}
