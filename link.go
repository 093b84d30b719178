package ilist

import (
	"sync/atomic"

	"github.com/mgnsk/ilist/arena"
)

// Link is embedded in a record to make the record insertable into a List.
// A record may embed several links to belong to several lists at once.
//
// The zero value is a detached link. A Link must not be copied while attached.
type Link struct {
	// owner is the id of the list the link is attached to, or 0.
	owner      atomic.Uint64
	next, prev arena.Handle
}

// Attached reports whether the link currently belongs to a list.
func (ln *Link) Attached() bool {
	return ln.owner.Load() != 0
}
