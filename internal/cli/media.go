package cli

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"
)

// encodeMediaRef reads a file and encodes it as an opaque data URI, the form
// media references are stored in. Unknown extensions fall back to a generic
// content type.
func encodeMediaRef(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
