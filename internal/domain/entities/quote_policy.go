package entities

// Actor identifies who issues a store operation.
//
// Privileged actors are the back-office path; every other actor is a
// customer identified by UserID.
type Actor struct {
	UserID     string
	Privileged bool
}

// SystemActor is the privileged identity used by back-office commands.
var SystemActor = Actor{Privileged: true}

// IsAnonymous reports whether the actor carries no identity at all.
func (a Actor) IsAnonymous() bool {
	return !a.Privileged && a.UserID == ""
}

// Quote access policies. Stores evaluate them against the row's current
// state on every operation; callers never cache a status to decide.

// CanReadQuote: owners read their quotes in any status.
func CanReadQuote(a Actor, q Quote) bool {
	if a.Privileged {
		return true
	}
	return a.UserID != "" && q.UserID == a.UserID
}

// CanWriteQuote: owners write only while draft.
func CanWriteQuote(a Actor, q Quote) bool {
	if a.Privileged {
		return true
	}
	return a.UserID != "" && q.UserID == a.UserID && q.IsDraft()
}

// CanInsertQuote: owners insert draft quotes for themselves.
func CanInsertQuote(a Actor, q Quote) bool {
	if a.Privileged {
		return true
	}
	return a.UserID != "" && q.UserID == a.UserID && q.IsDraft()
}

// CanDeleteQuote: only the privileged path deletes.
func CanDeleteQuote(a Actor, _ Quote) bool {
	return a.Privileged
}

// CanFinalizeQuote: only the privileged path finalizes, and only drafts.
func CanFinalizeQuote(a Actor, q Quote) bool {
	return a.Privileged && q.IsDraft()
}

// CanReadQuoteItem follows the parent quote.
func CanReadQuoteItem(a Actor, parent Quote) bool {
	return CanReadQuote(a, parent)
}

// CanWriteQuoteItem covers insert and update and follows the parent's
// current status.
func CanWriteQuoteItem(a Actor, parent Quote) bool {
	return CanWriteQuote(a, parent)
}

// CanDeleteQuoteItem: never through the owner path.
func CanDeleteQuoteItem(a Actor, _ Quote) bool {
	return a.Privileged
}
