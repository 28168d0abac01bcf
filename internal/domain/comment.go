package domain

import "time"

// CommentMaxLength is the maximum trimmed comment length.
const CommentMaxLength = 1000

type Comment struct {
	Id          string
	StoryId     string
	Content     string
	AuthorName  *string
	IsAnonymous bool
	CreatedAt   time.Time
}

// DisplayAuthor returns the public author label for a comment.
func (c *Comment) DisplayAuthor() string {
	return displayAuthor(c.AuthorName, c.IsAnonymous)
}
