package app

import (
	"errors"
	"strings"

	"lifetube/internal/comment/domain"
	"lifetube/internal/comment/repository"
	errprocess "lifetube/pkg/err"

	"gorm.io/gorm"
)

// CommentUseCase application service for the comment context
type CommentUseCase interface {
	Create(req domain.CreateCommentReq) (*domain.Comment, error)
	ListByVideo(videoID uint) ([]domain.CommentWithReplies, error)
	Delete(userID string, commentID uint) error
}

type commentUseCase struct {
	commentRepo repository.CommentRepo
}

// NewCommentUseCase create a new CommentUseCase
func NewCommentUseCase(commentRepo repository.CommentRepo) CommentUseCase {
	return &commentUseCase{commentRepo: commentRepo}
}

// Create add a comment or a reply. Threading is flat two-level: a reply's
// parent must itself be a top-level comment on the same video.
func (u *commentUseCase) Create(req domain.CreateCommentReq) (*domain.Comment, error) {
	if req.VideoID == 0 || strings.TrimSpace(req.Text) == "" {
		return nil, errprocess.New(errprocess.Validation, "Video ID and text are required")
	}

	if req.ParentID != nil {
		parent, err := u.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errprocess.New(errprocess.Validation, "Parent comment not found")
			}
			return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
		}
		if parent.ParentID != nil {
			return nil, errprocess.New(errprocess.Validation, "Replies cannot be nested")
		}
		if parent.VideoID != req.VideoID {
			return nil, errprocess.New(errprocess.Validation, "Parent comment belongs to a different video")
		}
	}

	comment := &domain.Comment{
		VideoID:  req.VideoID,
		UserID:   req.UserID,
		ParentID: req.ParentID,
		Text:     req.Text,
	}
	if err := u.commentRepo.Create(comment); err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	// reload with the author joined for the response projection
	created, err := u.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return created, nil
}

// ListByVideo top-level comments newest first, each with its replies oldest first
func (u *commentUseCase) ListByVideo(videoID uint) ([]domain.CommentWithReplies, error) {
	topLevel, err := u.commentRepo.TopLevelByVideo(videoID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	replies, err := u.commentRepo.RepliesByVideo(videoID)
	if err != nil {
		return nil, errprocess.Wrap(errprocess.Internal, "Server error", err)
	}

	byParent := make(map[uint][]domain.Comment)
	for _, reply := range replies {
		byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
	}

	result := make([]domain.CommentWithReplies, len(topLevel))
	for i, c := range topLevel {
		r := byParent[c.ID]
		if r == nil {
			r = []domain.Comment{}
		}
		result[i] = domain.CommentWithReplies{Comment: c, Replies: r}
	}
	return result, nil
}

// Delete author-only
func (u *commentUseCase) Delete(userID string, commentID uint) error {
	comment, err := u.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errprocess.New(errprocess.Unauthorized, "Unauthorized")
		}
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	if comment.UserID != userID {
		return errprocess.New(errprocess.Unauthorized, "Unauthorized")
	}

	if err := u.commentRepo.Delete(commentID); err != nil {
		return errprocess.Wrap(errprocess.Internal, "Server error", err)
	}
	return nil
}
