// Package upload accepts file uploads and forwards them to object storage.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/drivedrop/service/internal/apperr"
	"github.com/drivedrop/service/internal/storage"
)

// Backend hands out the storage the service writes to.
type Backend interface {
	Get(ctx context.Context) (storage.Storage, error)
}

// Request is one uploaded file, held in memory for the duration of a request.
type Request struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Result describes the stored object.
type Result struct {
	FileID      string
	FileName    string
	FileSize    int64
	MimeType    string
	UploadTime  float64 // seconds, rounded to two decimals
	WebViewLink string
}

// Service contains the upload workflow.
type Service struct {
	backend Backend
	timeout time.Duration
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewService creates an upload Service. timeout bounds the backend call.
func NewService(backend Backend, timeout time.Duration, log logrus.FieldLogger) *Service {
	return &Service{
		backend: backend,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Upload stores req and reports what the backend recorded. Errors are
// *apperr.Error values of kind Configuration, Backend or Internal.
func (s *Service) Upload(ctx context.Context, req Request) (*Result, error) {
	start := s.now()
	log := s.log.WithField("filename", req.Filename)

	store, err := s.backend.Get(ctx)
	if err != nil {
		return nil, s.fail(log, err)
	}

	size := int64(len(req.Data))
	log.WithField("size", size).Info("file size determined")

	name := StoredName(start, req.Filename)
	log.WithField("stored_name", name).Info("uploading file to storage")

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	obj, err := store.Upload(ctx, name, bytes.NewReader(req.Data), size, req.ContentType)
	if err != nil {
		return nil, s.fail(log, err)
	}

	res := &Result{
		FileID:      obj.ID,
		FileName:    obj.Name,
		FileSize:    obj.Size,
		MimeType:    obj.ContentType,
		UploadTime:  roundSeconds(s.now().Sub(start)),
		WebViewLink: obj.WebViewLink,
	}
	if res.FileSize == 0 {
		res.FileSize = size
	}
	if res.MimeType == "" {
		res.MimeType = req.ContentType
	}
	if res.FileName == "" {
		res.FileName = name
	}

	log.WithFields(logrus.Fields{
		"file_id":     res.FileID,
		"stored_name": res.FileName,
		"upload_time": res.UploadTime,
	}).Info("file uploaded successfully")

	return res, nil
}

// fail classifies err and logs it at error level.
func (s *Service) fail(log logrus.FieldLogger, err error) error {
	classified := classify(err)
	log.WithError(err).WithField("kind", classified.Kind).Error("upload failed")
	return classified
}

func classify(err error) *apperr.Error {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind == apperr.KindConfiguration {
		return apperr.New(apperr.KindConfiguration, "Server configuration error: "+ae.Error(), err)
	}

	var be *storage.BackendError
	if errors.As(err, &be) {
		return apperr.New(apperr.KindBackend, fmt.Sprintf("%s API error: %v", be.Provider, be.Err), err)
	}

	return apperr.New(apperr.KindInternal, "Upload failed: "+err.Error(), err)
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
