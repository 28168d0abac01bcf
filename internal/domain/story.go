package domain

import "time"

// AnonymousAuthor is the public label substituted for missing or hidden names.
const AnonymousAuthor = "Anonymous"

// AuthorNameMaxLength is the longest stored author name; longer names are truncated.
const AuthorNameMaxLength = 50

// StoryMinLength is the minimum trimmed story content length.
const StoryMinLength = 10

type Story struct {
	Id          string
	Content     string
	AuthorName  *string // nil when anonymous or not supplied
	IsAnonymous bool
	CreatedAt   time.Time

	// DeletionToken is only populated on the creation path. It is never
	// selected by list queries and never leaves the server except in the
	// creation response.
	DeletionToken string
}

// DisplayAuthor returns the public author label for a story.
func (s *Story) DisplayAuthor() string {
	return displayAuthor(s.AuthorName, s.IsAnonymous)
}

func displayAuthor(name *string, isAnonymous bool) string {
	if name != nil && *name != "" && !isAnonymous {
		return *name
	}
	return AnonymousAuthor
}
