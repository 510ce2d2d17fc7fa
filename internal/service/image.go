package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

var (
	// ErrNotAnImage is returned when the uploaded content is not an image.
	ErrNotAnImage = errors.New(MsgImageInvalid)
	// ErrImageTooLarge is returned when the upload exceeds the size cap.
	ErrImageTooLarge = errors.New("image exceeds maximum size")
)

// EncodeImage reads r to completion and returns it as a base64 data URI.
// An empty contentType is sniffed from the content.
func EncodeImage(r io.Reader, contentType string, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", ErrImageTooLarge
	}
	if len(data) == 0 {
		return "", ErrNotAnImage
	}

	if strings.TrimSpace(contentType) == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
