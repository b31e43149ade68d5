package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURL = errors.New("value is not a base64 data url")

func GetContentType(file string) string {
	start := len(dataPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// IsDataURL reports whether value looks like "data:<type>;base64,<payload>".
func IsDataURL(value string) bool {
	return strings.HasPrefix(value, dataPrefix) && GetContentType(value) != ""
}

// Decode splits a data url into its content type and decoded payload.
func Decode(value string) (contentType string, data []byte, err error) {
	if !IsDataURL(value) {
		return "", nil, ErrNotDataURL
	}

	contentType = GetContentType(value)
	payload := value[strings.Index(value, base64Marker)+len(base64Marker):]

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data url payload: %w", err)
	}

	return contentType, data, nil
}

// Encode builds a data url from a payload.
func Encode(contentType string, data []byte) string {
	return dataPrefix + contentType + base64Marker + base64.StdEncoding.EncodeToString(data)
}

// Extension returns a file extension for common data url content types.
func Extension(contentType string) string {
	switch strings.ToLower(strings.SplitN(contentType, ";", 2)[0]) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
