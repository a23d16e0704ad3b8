package domain

import "time"

// Like kinds accepted by the toggle
const (
	LikeKindLike    = "like"
	LikeKindDislike = "dislike"
)

// Like definition one mark per (user, video) pair, the unique index backs
// up the application level toggle lock
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_user_video_like" json:"user_id"`
	VideoID   uint      `gorm:"not null;uniqueIndex:uq_user_video_like;index" json:"video_id"`
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeAction what the toggle does to the relation row
type LikeAction int

const (
	// LikeInsert no mark existed, create one with the requested kind
	LikeInsert LikeAction = iota
	// LikeDelete the same kind existed, un-mark
	LikeDelete
	// LikeUpdate a different kind existed, flip it in place
	LikeUpdate
)

// ValidLikeKind reject anything outside {like, dislike}
func ValidLikeKind(kind string) bool {
	return kind == LikeKindLike || kind == LikeKindDislike
}

type likeTransition struct {
	Action LikeAction
	Label  string
}

type likeState struct {
	exists   bool
	sameKind bool
}

// The toggle is a pure function of (current state, requested kind).
// Kept as an explicit transition table instead of nested conditionals.
var likeTransitions = map[likeState]likeTransition{
	{exists: false, sameKind: false}: {Action: LikeInsert, Label: "Like added"},
	{exists: true, sameKind: true}:   {Action: LikeDelete, Label: "Like removed"},
	{exists: true, sameKind: false}:  {Action: LikeUpdate, Label: "Like updated"},
}

// NextLikeState decide the toggle outcome. current is the existing mark's
// kind, or "" when no mark exists.
func NextLikeState(current, requested string) (LikeAction, string) {
	t := likeTransitions[likeState{
		exists:   current != "",
		sameKind: current == requested,
	}]
	return t.Action, t.Label
}
