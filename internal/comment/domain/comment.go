package domain

import (
	"time"

	userdomain "lifetube/internal/user/domain"
)

// Comment definition comment row, ParentID points at a top-level comment
// for replies (flat two-level threading, enforced at write time)
type Comment struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	VideoID   uint            `gorm:"not null;index" json:"video_id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	ParentID  *uint           `gorm:"index" json:"parent_id"`
	Text      string          `gorm:"not null" json:"text"`
	CreatedAt time.Time       `json:"created_at"`
	User      userdomain.User `gorm:"foreignKey:UserID;references:ID" json:"users"`
}

// CommentWithReplies top-level comment plus its replies, oldest reply first
type CommentWithReplies struct {
	Comment
	Replies []Comment `json:"replies"`
}

// CreateCommentReq usecase create comment request
type CreateCommentReq struct {
	UserID   string
	VideoID  uint
	ParentID *uint
	Text     string
}
