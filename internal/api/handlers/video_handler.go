package handlers

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lifetube/internal/video/app"
	"lifetube/internal/video/domain"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/logger"
	"lifetube/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// VideoHandler definition video endpoints
type VideoHandler struct {
	Usecase app.VideoUseCase

	TempDir       string
	MaxVideoBytes int64
	MaxImageBytes int64
}

func parseVideoID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, errprocess.New(errprocess.Validation, "Invalid video ID")
	}
	return uint(id), nil
}

// ListVideos browse, search and filter videos
// @Summary List videos
// @Description Paginated video list with optional category filter and keyword search
// @Tags Videos
// @Param category query string false "Category filter, 'All' disables it"
// @Param search query string false "Keyword over title and description"
// @Param limit query int false "Page size, default 20"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /api/videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	videos, err := h.Usecase.List(domain.ListVideosQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// Trending top videos by view count
// @Summary Trending videos
// @Tags Videos
// @Success 200 {object} map[string]interface{}
// @Router /api/videos/trending [get]
func (h *VideoHandler) Trending(c *fiber.Ctx) error {
	videos, err := h.Usecase.Trending()
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// GetVideo video detail with like/dislike counts
// @Summary Video detail
// @Tags Videos
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/videos/{id} [get]
func (h *VideoHandler) GetVideo(c *fiber.Ctx) error {
	id, err := parseVideoID(c, "id")
	if err != nil {
		return errprocess.Reply(c, err)
	}

	detail, err := h.Usecase.GetDetail(id)
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"video": detail})
}

// IncrementViews bump the view counter
// @Summary Increment views
// @Tags Videos
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/videos/{id}/view [post]
func (h *VideoHandler) IncrementViews(c *fiber.Ctx) error {
	id, err := parseVideoID(c, "id")
	if err != nil {
		return errprocess.Reply(c, err)
	}

	if err := h.Usecase.IncrementViews(id); err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"message": "View count incremented"})
}

// UploadVideo receive the multipart upload and run the ingestion pipeline.
// Temp files are released on every exit path.
// @Summary Upload a video
// @Tags Videos
// @Accept multipart/form-data
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category formData string false "Category, default General"
// @Param tags formData string false "Comma separated tags"
// @Param video formData file true "Video file"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/videos/upload [post]
func (h *VideoHandler) UploadVideo(c *fiber.Ctx) error {
	title := c.FormValue("title")

	videoFile, err := c.FormFile("video")
	if strings.TrimSpace(title) == "" || err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Title and video file are required"))
	}

	contentType := videoFile.Header.Get("Content-Type")
	if !allowedVideoFile(videoFile.Filename, contentType) {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Only video files are allowed!"))
	}
	if videoFile.Size > h.MaxVideoBytes {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Video file too large"))
	}

	if err := os.MkdirAll(h.TempDir, 0755); err != nil {
		return errprocess.Reply(c, errprocess.Wrap(errprocess.Internal, "Server error during video upload", err))
	}

	videoPath := filepath.Join(h.TempDir, tempFileName("video-", filepath.Ext(videoFile.Filename)))
	if err := c.SaveFile(videoFile, videoPath); err != nil {
		return errprocess.Reply(c, errprocess.Wrap(errprocess.Internal, "Server error during video upload", err))
	}
	defer removeTemp(videoPath)

	req := domain.UploadVideoReq{
		UserID:      middlewares.CallerID(c),
		Title:       title,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Tags:        c.FormValue("tags"),

		VideoPath:        videoPath,
		VideoExt:         strings.ToLower(filepath.Ext(videoFile.Filename)),
		VideoContentType: contentType,
	}

	if thumbFile, err := c.FormFile("thumbnail"); err == nil && thumbFile != nil {
		thumbType := thumbFile.Header.Get("Content-Type")
		if !allowedImageFile(thumbFile.Filename, thumbType) {
			return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Only image files are allowed!"))
		}
		if thumbFile.Size > h.MaxImageBytes {
			return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Thumbnail file too large"))
		}

		thumbPath := filepath.Join(h.TempDir, tempFileName("thumb-", filepath.Ext(thumbFile.Filename)))
		if err := c.SaveFile(thumbFile, thumbPath); err != nil {
			return errprocess.Reply(c, errprocess.Wrap(errprocess.Internal, "Server error during video upload", err))
		}
		defer removeTemp(thumbPath)

		req.ThumbPath = thumbPath
		req.ThumbExt = strings.ToLower(filepath.Ext(thumbFile.Filename))
		req.ThumbContentType = thumbType
	}

	video, err := h.Usecase.Upload(c.UserContext(), req)
	if err != nil {
		return errprocess.Reply(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Video uploaded successfully",
		"video":   video,
	})
}

// ToggleLike like/dislike toggle
// @Summary Toggle like or dislike
// @Tags Videos
// @Param id path int true "Video ID"
// @Param body body object true "{\"type\":\"like\"}"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/videos/{id}/like [post]
func (h *VideoHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := parseVideoID(c, "id")
	if err != nil {
		return errprocess.Reply(c, err)
	}

	var body struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Invalid type"))
	}

	label, err := h.Usecase.ToggleLike(middlewares.CallerID(c), id, body.Type)
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"message": label})
}

// DeleteVideo owner-only delete
// @Summary Delete a video
// @Tags Videos
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	id, err := parseVideoID(c, "id")
	if err != nil {
		return errprocess.Reply(c, err)
	}

	if err := h.Usecase.Delete(c.UserContext(), middlewares.CallerID(c), id); err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video deleted successfully"})
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		logger.Log.Errorf("cleanup temp upload failed :", err)
	}
}
