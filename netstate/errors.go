package netstate

import "errors"

// Sentinel errors of State's invariant checks. Provision panics with
// ErrSlotAlreadyUsed, ErrSharingConflict or ErrPriBkpOverlap when the
// Provisioning it is given would break an invariant; SanityCheck returns
// ErrSlotAlreadyUsed or ErrSharingInconsistent instead of panicking.
var (
	ErrSlotAlreadyUsed    = errors.New("netstate: primary slot already occupied")
	ErrSharingConflict    = errors.New("netstate: backup slot already shared with this primary")
	ErrPriBkpOverlap      = errors.New("netstate: backup path shares a link with its own primary")
	ErrSharingInconsistent = errors.New("netstate: anyUse diverges from primaryUse union sharing")
)
