package handler

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const maxImageBytes = 5 << 20

// readImage buffers an uploaded file and reports its extension and MIME type.
func readImage(fh *multipart.FileHeader) (data []byte, ext, contentType string, err error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()

	data, err = io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, "", "", err
	}

	ext = strings.ToLower(filepath.Ext(fh.Filename))
	contentType = fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, ext, contentType, nil
}

// formValue pulls a single value out of a parsed multipart form.
func formValue(form *multipart.Form, key string) string {
	if v, ok := form.Value[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}
