package ilist

import "errors"

var (
	// ErrInvalidHandle indicates a handle that is None or does not reference a live record.
	ErrInvalidHandle = errors.New("ilist: invalid handle")

	// ErrAttached indicates that the record's link already belongs to a list.
	ErrAttached = errors.New("ilist: link already attached")

	// ErrNotMember indicates that the record's link does not belong to the list.
	ErrNotMember = errors.New("ilist: link not attached to this list")
)
