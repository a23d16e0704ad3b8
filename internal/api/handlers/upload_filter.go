package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Container/type allow-lists, checked against both the file extension and
// the declared media type.
var (
	videoTypes = []string{"mp4", "avi", "mov", "wmv", "flv", "mkv", "webm"}
	imageTypes = []string{"jpeg", "jpg", "png", "gif", "webp"}
)

func matchesAllowList(filename, contentType string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	extOK := false
	typeOK := false
	for _, t := range allowed {
		if ext == t {
			extOK = true
		}
		if strings.Contains(contentType, t) {
			typeOK = true
		}
	}
	return extOK && typeOK
}

// allowedVideoFile true when the upload passes the video allow-list
func allowedVideoFile(filename, contentType string) bool {
	return matchesAllowList(filename, contentType, videoTypes)
}

// allowedImageFile true when the upload passes the image allow-list
func allowedImageFile(filename, contentType string) bool {
	return matchesAllowList(filename, contentType, imageTypes)
}

// tempFileName unique name for a received upload, timestamp plus random suffix
func tempFileName(prefix, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d-%s%s", prefix, time.Now().UnixMilli(), suffix, ext)
}
