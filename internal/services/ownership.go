package services

// Owned is any resource with a single, immutable owning user.
type Owned interface {
	OwnerID() int64
}

// isOwner is the one ownership predicate in the system; every mutating
// path on posts and comments goes through it.
func isOwner(res Owned, callerID int64) bool {
	return res.OwnerID() == callerID
}
