package handler

import (
	"errors"
	"io"
	"net/http"

	"hospital-admin-api/internal/delivery/dto"
	"hospital-admin-api/internal/infrastructure/storage"
)

const maxUploadSize = 10 << 20 // 10 MiB

var (
	errPhotoRequired  = errors.New("Photo is required")
	errPhotoExtension = errors.New("Invalid file type. Allowed extensions are jpg, jpeg, png")
)

// readPhotoUpload extracts an image upload from a multipart form. The
// extension check runs before the content is read so a rejected upload causes
// no side effect anywhere down the line.
func readPhotoUpload(r *http.Request, field string, required bool) (*dto.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			if required {
				return nil, errPhotoRequired
			}
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if !storage.AllowedImageExt(header.Filename) {
		return nil, errPhotoExtension
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &dto.FileUpload{
		OriginalName: header.Filename,
		Content:      content,
	}, nil
}

// formValue returns a pointer to the first value of a multipart form field,
// or nil when the field was absent, so partial updates can tell "not sent"
// apart from "sent empty".
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}
