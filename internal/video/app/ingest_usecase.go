package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"lifetube/internal/video/domain"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/logger"

	"github.com/google/uuid"
)

// seams for tests, same pattern as the ffmpeg vars
var (
	removeFile = func(path string) error {
		return os.Remove(path)
	}

	nowMillis = func() int64 {
		return time.Now().UnixMilli()
	}

	randomSuffix = func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
)

// assetName unique object file name, timestamp plus a high-entropy suffix.
// Collisions under clock skew across processes are treated as negligible.
func assetName(prefix, ext string) string {
	return fmt.Sprintf("%s%d-%s%s", prefix, nowMillis(), randomSuffix(), ext)
}

// Upload run the ingestion pipeline: probe duration, resolve a thumbnail,
// persist the video bytes, create the metadata row. The received temp files
// are owned and cleaned up by the handler on every exit path.
func (u *videoUseCase) Upload(ctx context.Context, up domain.UploadVideoReq) (*domain.Video, error) {
	if strings.TrimSpace(up.Title) == "" || up.VideoPath == "" {
		return nil, errprocess.New(errprocess.Validation, "Title and video file are required")
	}

	category := up.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	// best-effort metadata, never fails the upload
	duration := ProbeDuration(up.VideoPath)

	thumbnailURL, err := u.resolveThumbnail(ctx, up)
	if err != nil {
		return nil, err
	}

	videoObject := "videos/" + assetName("video-", up.VideoExt)
	if err := u.store.Save(ctx, videoObject, up.VideoPath, up.VideoContentType); err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error during video upload", err)
	}

	video := &domain.Video{
		UserID:       up.UserID,
		Title:        up.Title,
		Description:  up.Description,
		Category:     category,
		Tags:         domain.ParseTags(up.Tags),
		VideoURL:     u.store.PublicURL(videoObject),
		ThumbnailURL: thumbnailURL,
		Duration:     duration,
	}

	if err := u.videoRepo.Create(video); err != nil {
		// the blob is already durable at this point; removal is best-effort
		// and the orphaned-blob gap is accepted
		u.removeAsset(ctx, video.VideoURL)
		u.removeAsset(ctx, video.ThumbnailURL)
		return nil, errprocess.Wrap(errprocess.Internal, "Server error during video upload", err)
	}

	return video, nil
}

// resolveThumbnail persist the supplied image, or synthesize a frame from
// the video. Synthesis failure falls back to the placeholder URL; a supplied
// thumbnail that cannot be persisted fails the upload.
func (u *videoUseCase) resolveThumbnail(ctx context.Context, up domain.UploadVideoReq) (string, error) {
	if up.ThumbPath != "" {
		object := "thumbnails/" + assetName("thumb-", up.ThumbExt)
		if err := u.store.Save(ctx, object, up.ThumbPath, up.ThumbContentType); err != nil {
			return "", errprocess.Wrap(errprocess.Internal, "Server error during video upload", err)
		}
		return u.store.PublicURL(object), nil
	}

	framePath := up.VideoPath + ".thumb.png"
	if err := extractFrame(up.VideoPath, framePath); err != nil {
		logger.Log.Errorf("thumbnail extraction failed, using placeholder :", err)
		return u.placeholderThumb, nil
	}
	defer func() {
		if err := removeFile(framePath); err != nil {
			logger.Log.Errorf("remove extracted frame failed :", err)
		}
	}()

	object := "thumbnails/" + assetName("thumb-", ".png")
	if err := u.store.Save(ctx, object, framePath, "image/png"); err != nil {
		logger.Log.Errorf("thumbnail persistence failed, using placeholder :", err)
		return u.placeholderThumb, nil
	}
	return u.store.PublicURL(object), nil
}
