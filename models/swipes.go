package models

// Swipe actions
const (
	SwipeActionLike = "like"
	SwipeActionPass = "pass"
)

// SwipeRecord holds the profile ids one user has swiped on. Append-only;
// membership is idempotent, and an id lands in at most one of the two sets.
type SwipeRecord struct {
	Liked  []string `json:"liked"`
	Passed []string `json:"passed"`
}

// Contains reports whether userID was swiped in either direction.
func (r SwipeRecord) Contains(userID string) bool {
	return contains(r.Liked, userID) || contains(r.Passed, userID)
}

// HasLiked reports whether userID is in the liked set.
func (r SwipeRecord) HasLiked(userID string) bool {
	return contains(r.Liked, userID)
}

// Add records a swipe, skipping ids already present in either set. It
// reports whether the record changed.
func (r *SwipeRecord) Add(action, userID string) bool {
	if r.Contains(userID) {
		return false
	}
	if action == SwipeActionLike {
		r.Liked = append(r.Liked, userID)
	} else {
		r.Passed = append(r.Passed, userID)
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// KeySwipedUsers is the store key holding the per-user swipe ledgers
const KeySwipedUsers = "swipedUsers"
