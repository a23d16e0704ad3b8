package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLikeKind(t *testing.T) {
	assert.True(t, ValidLikeKind(LikeKindLike))
	assert.True(t, ValidLikeKind(LikeKindDislike))
	assert.False(t, ValidLikeKind(""))
	assert.False(t, ValidLikeKind("love"))
	assert.False(t, ValidLikeKind("Like"))
}

func TestNextLikeState(t *testing.T) {
	t.Run("no existing mark inserts", func(t *testing.T) {
		action, label := NextLikeState("", LikeKindLike)
		assert.Equal(t, LikeInsert, action)
		assert.Equal(t, "Like added", label)
	})

	t.Run("same kind removes", func(t *testing.T) {
		action, label := NextLikeState(LikeKindLike, LikeKindLike)
		assert.Equal(t, LikeDelete, action)
		assert.Equal(t, "Like removed", label)

		action, label = NextLikeState(LikeKindDislike, LikeKindDislike)
		assert.Equal(t, LikeDelete, action)
		assert.Equal(t, "Like removed", label)
	})

	t.Run("different kind flips in place", func(t *testing.T) {
		action, label := NextLikeState(LikeKindLike, LikeKindDislike)
		assert.Equal(t, LikeUpdate, action)
		assert.Equal(t, "Like updated", label)

		action, label = NextLikeState(LikeKindDislike, LikeKindLike)
		assert.Equal(t, LikeUpdate, action)
		assert.Equal(t, "Like updated", label)
	})

	t.Run("toggling the same kind twice returns to absent", func(t *testing.T) {
		action, _ := NextLikeState("", LikeKindDislike)
		assert.Equal(t, LikeInsert, action)

		action, _ = NextLikeState(LikeKindDislike, LikeKindDislike)
		assert.Equal(t, LikeDelete, action)
	})
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"go", "tutorial"}, ParseTags("go, tutorial"))
	assert.Equal(t, []string{"music"}, ParseTags("music"))
	assert.Empty(t, ParseTags(""))
	assert.Equal(t, []string{"a", "b"}, ParseTags(" a ,, b , "))
}
