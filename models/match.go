package models

import "time"

// Match records an unordered pair of matched users. Matches are immutable
// once created; only creation is in scope, never update or delete.
type Match struct {
	MatchID   string    `json:"id"`
	Users     []string  `json:"users"`
	CreatedAt time.Time `json:"timestamp"`
}

// Contains reports whether userID is one of the match participants.
func (m Match) Contains(userID string) bool {
	for _, id := range m.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// Other returns the counterpart of userID in the pair, or "" when userID is
// not a participant.
func (m Match) Other(userID string) string {
	for _, id := range m.Users {
		if id != userID {
			return id
		}
	}
	return ""
}

// MatchWithProfile pairs a match with the counterpart's resolved profile.
type MatchWithProfile struct {
	Match   Match       `json:"match"`
	Profile UserProfile `json:"profile"`
}

// KeyMatches is the store key holding the match list
const KeyMatches = "matches"
