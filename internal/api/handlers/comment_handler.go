package handlers

import (
	"strconv"

	"lifetube/internal/comment/app"
	"lifetube/internal/comment/domain"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// CommentHandler definition comment endpoints
type CommentHandler struct {
	Usecase app.CommentUseCase
}

// ListComments top-level comments with one level of replies
// @Summary List comments for a video
// @Tags Comments
// @Param videoId path int true "Video ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/comments/video/{videoId} [get]
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	videoID, err := strconv.ParseUint(c.Params("videoId"), 10, 32)
	if err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Invalid video ID"))
	}

	comments, err := h.Usecase.ListByVideo(uint(videoID))
	if err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// CreateComment add a comment or a reply
// @Summary Create comment
// @Tags Comments
// @Param body body object true "{\"videoId\":1,\"text\":\"...\",\"parentId\":2}"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/comments [post]
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	var body struct {
		VideoID  uint   `json:"videoId"`
		Text     string `json:"text"`
		ParentID *uint  `json:"parentId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Video ID and text are required"))
	}

	comment, err := h.Usecase.Create(domain.CreateCommentReq{
		UserID:   middlewares.CallerID(c),
		VideoID:  body.VideoID,
		ParentID: body.ParentID,
		Text:     body.Text,
	})
	if err != nil {
		return errprocess.Reply(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// DeleteComment author-only delete
// @Summary Delete comment
// @Tags Comments
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return errprocess.Reply(c, errprocess.New(errprocess.Validation, "Invalid comment ID"))
	}

	if err := h.Usecase.Delete(middlewares.CallerID(c), uint(id)); err != nil {
		return errprocess.Reply(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
