package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifetube/internal/comment/domain"
	errprocess "lifetube/pkg/err"
	"lifetube/pkg/logger"
	"lifetube/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase mock of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) Create(req domain.CreateCommentReq) (*domain.Comment, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListByVideo(videoID uint) ([]domain.CommentWithReplies, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentWithReplies), args.Error(1)
}

func (m *MockCommentUseCase) Delete(userID string, commentID uint) error {
	args := m.Called(userID, commentID)
	return args.Error(0)
}

const testUserID = "9f4c8a1e-0000-0000-0000-000000000001"

// newCommentApp fiber app with the caller identity pinned, the JWT middleware
// is exercised separately
func newCommentApp(usecase *MockCommentUseCase) *fiber.App {
	logger.SetNewNop()
	handler := &CommentHandler{Usecase: usecase}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middlewares.TokenUserID, testUserID)
		return c.Next()
	})
	app.Get("/api/comments/video/:videoId", handler.ListComments)
	app.Post("/api/comments", handler.CreateComment)
	app.Delete("/api/comments/:id", handler.DeleteComment)
	return app
}

func TestListCommentsEndpoint(t *testing.T) {
	usecase := new(MockCommentUseCase)
	app := newCommentApp(usecase)

	usecase.On("ListByVideo", uint(7)).Return([]domain.CommentWithReplies{
		{Comment: domain.Comment{ID: 1, VideoID: 7, Text: "first"}, Replies: []domain.Comment{}},
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/comments/video/7", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Comments []domain.CommentWithReplies `json:"comments"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Comments, 1)
	assert.Equal(t, "first", body.Comments[0].Text)
	usecase.AssertExpectations(t)
}

func TestListCommentsEndpointBadID(t *testing.T) {
	usecase := new(MockCommentUseCase)
	app := newCommentApp(usecase)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/comments/video/abc", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	usecase.AssertNotCalled(t, "ListByVideo", mock.Anything)
}

func TestCreateCommentEndpoint(t *testing.T) {
	usecase := new(MockCommentUseCase)
	app := newCommentApp(usecase)

	t.Run("created", func(t *testing.T) {
		usecase.On("Create", domain.CreateCommentReq{
			UserID:  testUserID,
			VideoID: 7,
			Text:    "nice video",
		}).Return(&domain.Comment{ID: 11, VideoID: 7, UserID: testUserID, Text: "nice video"}, nil).Once()

		payload, _ := json.Marshal(fiber.Map{"videoId": 7, "text": "nice video"})
		req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Message string         `json:"message"`
			Comment domain.Comment `json:"comment"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Comment added successfully", body.Message)
		assert.Equal(t, uint(11), body.Comment.ID)
		usecase.AssertExpectations(t)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		usecase.On("Create", mock.Anything).
			Return(nil, errprocess.New(errprocess.Validation, "Video ID and text are required")).Once()

		payload, _ := json.Marshal(fiber.Map{"videoId": 7})
		req := httptest.NewRequest(http.MethodPost, "/api/comments", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Video ID and text are required", body.Error)
	})
}

func TestDeleteCommentEndpoint(t *testing.T) {
	usecase := new(MockCommentUseCase)
	app := newCommentApp(usecase)

	t.Run("author deletes", func(t *testing.T) {
		usecase.On("Delete", testUserID, uint(11)).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/comments/11", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		usecase.AssertExpectations(t)
	})

	t.Run("non-author maps to 403", func(t *testing.T) {
		usecase.On("Delete", testUserID, uint(11)).
			Return(errprocess.New(errprocess.Unauthorized, "Unauthorized")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/comments/11", nil))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
