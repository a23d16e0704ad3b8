package domain

import (
	"strings"
	"time"

	userdomain "lifetube/internal/user/domain"
)

// DefaultCategory assigned when the uploader leaves category empty
const DefaultCategory = "General"

// Video definition video metadata row, binary assets live in the asset store
type Video struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       string          `gorm:"type:uuid;index;not null" json:"user_id"`
	Title        string          `gorm:"not null" json:"title"`
	Description  string          `json:"description"`
	Category     string          `gorm:"default:General" json:"category"`
	Tags         []string        `gorm:"serializer:json;type:jsonb" json:"tags"`
	VideoURL     string          `json:"video_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Duration     int             `json:"duration"`
	Views        uint            `json:"views"`
	CreatedAt    time.Time       `json:"created_at"`
	User         userdomain.User `gorm:"foreignKey:UserID;references:ID" json:"users"`
}

// VideoDetail video row plus like aggregates, computed at read time
type VideoDetail struct {
	Video
	LikeCount    int64 `json:"likeCount"`
	DislikeCount int64 `json:"dislikeCount"`
}

// UploadVideoReq usecase upload video request, file parts already sit in
// temp storage when the pipeline starts
type UploadVideoReq struct {
	UserID      string
	Title       string
	Description string
	Category    string
	Tags        string // comma separated

	VideoPath        string // temp file of the received video, required
	VideoExt         string // ".mp4" etc
	VideoContentType string

	ThumbPath        string // temp file of the received thumbnail, optional
	ThumbExt         string
	ThumbContentType string
}

// ListVideosQuery filters for the browse endpoint
type ListVideosQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ParseTags split a comma separated tag string into trimmed tags,
// empty entries dropped, order preserved
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
