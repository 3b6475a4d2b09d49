package images

import (
	"encoding/base64"
	"fmt"
)

// DataURI embeds raw image bytes as a data URI so uploaded photos can be
// stored inline when no media bucket is configured.
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf(
		"data:%s;base64,%s",
		mimeType,
		base64.StdEncoding.EncodeToString(data),
	)
}
