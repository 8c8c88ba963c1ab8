package upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/drivedrop/service/internal/apperr"
	"github.com/drivedrop/service/internal/response"
)

// formField is the multipart field carrying the file.
const formField = "file"

// multipartMemory is how much of a form ParseMultipartForm keeps in memory
// before spilling file parts to disk.
const multipartMemory = 8 << 20

// Handler holds the HTTP handler for the upload endpoint.
type Handler struct {
	svc      *Service
	maxBytes int64
	log      logrus.FieldLogger
}

// NewHandler creates a new upload Handler. Request bodies larger than maxBytes are rejected.
func NewHandler(svc *Service, maxBytes int64, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes, log: log}
}

// UploadResponse is returned on a successful upload.
type UploadResponse struct {
	Message     string  `json:"message"                 example:"File uploaded successfully!"`
	FileID      string  `json:"file_id"                 example:"1AbCdEfGhIjKlMnOp"`
	FileName    string  `json:"file_name"               example:"1700000000_report.pdf"`
	FileSize    int64   `json:"file_size"               example:"52431"`
	MimeType    string  `json:"mime_type"               example:"application/pdf"`
	UploadTime  float64 `json:"upload_time"             example:"0.84"`
	WebViewLink string  `json:"web_view_link,omitempty" example:"https://drive.google.com/file/d/1AbCdEfGhIjKlMnOp/view"`
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Stores the multipart field "file" in the configured folder under "<unix seconds>_<basename>".
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to upload"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		413		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, apperr.KindTooLarge, "file exceeds the upload limit")
			return
		}
		response.BadRequest(w, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formField)
	if err != nil {
		response.BadRequest(w, `multipart field "file" is required`)
		return
	}
	defer file.Close()

	h.log.WithField("filename", header.Filename).Info("received upload request")

	data, err := io.ReadAll(file)
	if err != nil {
		response.FromError(w, apperr.New(apperr.KindInternal, "Upload failed: "+err.Error(), err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	res, err := h.svc.Upload(r.Context(), Request{
		Data:        data,
		Filename:    header.Filename,
		ContentType: contentType,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, UploadResponse{
		Message:     "File uploaded successfully!",
		FileID:      res.FileID,
		FileName:    res.FileName,
		FileSize:    res.FileSize,
		MimeType:    res.MimeType,
		UploadTime:  res.UploadTime,
		WebViewLink: res.WebViewLink,
	})
}
