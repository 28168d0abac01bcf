package domain

import "time"

// ReactionKind is one of the four fixed reaction categories.
type ReactionKind string

const (
	ReactionLove     ReactionKind = "love"
	ReactionSupport  ReactionKind = "support"
	ReactionRelate   ReactionKind = "relate"
	ReactionStrength ReactionKind = "strength"
)

// ReactionKinds lists every recognized kind.
var ReactionKinds = []ReactionKind{ReactionLove, ReactionSupport, ReactionRelate, ReactionStrength}

// ValidReactionKind reports whether s is one of the recognized kinds.
func ValidReactionKind(s string) bool {
	for _, k := range ReactionKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

type Reaction struct {
	Id        string
	StoryId   string
	Kind      ReactionKind
	UserToken string
	CreatedAt time.Time
}

// ReactionCounts maps each present kind to its total across all users.
// Kinds with zero reactions are absent.
type ReactionCounts map[ReactionKind]int64

// ReactionSummary is the aggregate view returned to callers: totals plus the
// subset of kinds the requesting user token has set on the story.
type ReactionSummary struct {
	Counts        ReactionCounts
	UserReactions []ReactionKind
}
