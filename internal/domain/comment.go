package domain

import (
	"time"

	"github.com/google/uuid"
)

// TombstoneContent replaces a deleted comment's text. Deletion is
// logical: the row keeps its identity and place in the thread.
const TombstoneContent = "[this comment has been removed.]"

type Comment struct {
	ID        uuid.UUID  `json:"id" db:"comment_id"`
	ReviewID  uuid.UUID  `json:"review_id" db:"review_id"`
	AuthorID  *uuid.UUID `json:"author_id" db:"author_id"`
	ParentID  *uuid.UUID `json:"parent_comment,omitempty" db:"parent_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	Upvotes   []uuid.UUID `json:"upvotes" db:"-"`
	Downvotes []uuid.UUID `json:"downvotes" db:"-"`

	// Replies holds direct children once a thread has been assembled.
	Replies []*Comment `json:"replies,omitempty" db:"-"`
}

func (c *Comment) Deleted() bool {
	return c.AuthorID == nil && c.Content == TombstoneContent
}

type CreateCommentInput struct {
	Content         string     `json:"content"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty"`
}

type UpdateCommentInput struct {
	Content string `json:"content"`
}
