package session

import (
	"errors"

	"instore/internal/core/domain/model/kernel"
	"instore/internal/core/domain/model/order"
	"instore/internal/pkg/errs"
	"instore/internal/pkg/guard"
)

var (
	ErrOrderIsRequired       = errors.New("order is required")
	ErrSnapshotIsRequired    = errors.New("snapshot is required")
	ErrSessionIsNotConstructed = errors.New(
		"session is not constructed, use NewSession or RestoreSession")
)

// Session ties a shopper's client id to their working order and tracks
// sequence numbers for reconciling remote snapshots. Every remote call is
// tagged with a sequence number taken from NextSeq; a snapshot is applied
// only if its sequence number is newer than the last one applied, so late
// responses never overwrite fresher state.
type Session struct {
	clientID   kernel.UUID
	ord        *order.Order
	appliedSeq uint64
	nextSeq    uint64

	guard guard.ConstructorGuard
}

func NewSession(clientID kernel.UUID, ord *order.Order) (*Session, error) {
	if ord == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("ord", ErrOrderIsRequired)
	}

	return &Session{
		clientID: clientID,
		ord:      ord,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func RestoreSession(clientID kernel.UUID, ord *order.Order,
	appliedSeq uint64, nextSeq uint64) (*Session, error) {
	if ord == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("ord", ErrOrderIsRequired)
	}
	if nextSeq < appliedSeq {
		return nil, errs.NewValueIsInvalidError("nextSeq")
	}

	return &Session{
		clientID:   clientID,
		ord:        ord,
		appliedSeq: appliedSeq,
		nextSeq:    nextSeq,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s *Session) ClientID() kernel.UUID {
	return s.clientID
}

func (s *Session) Order() *order.Order {
	return s.ord
}

func (s *Session) AppliedSeq() uint64 {
	return s.appliedSeq
}

// IssuedSeq returns the highest sequence number handed out so far.
func (s *Session) IssuedSeq() uint64 {
	return s.nextSeq
}

// NextSeq allocates the sequence number for the next remote call.
func (s *Session) NextSeq() uint64 {
	s.nextSeq++
	return s.nextSeq
}

// Apply replaces the whole order with the snapshot. It reports whether the
// snapshot was applied; a snapshot whose sequence number is not newer than
// the last applied one is discarded.
func (s *Session) Apply(seq uint64, snapshot *order.Order) (bool, error) {
	if err := s.guard.Validate(ErrSessionIsNotConstructed); err != nil {
		return false, err
	}
	if snapshot == nil {
		return false, errs.NewValueIsRequiredErrorWithCause("snapshot", ErrSnapshotIsRequired)
	}

	if seq <= s.appliedSeq {
		return false, nil
	}

	s.ord = snapshot
	s.appliedSeq = seq
	return true, nil
}

// ApplyItems folds the snapshot's cart items into the order while keeping
// locally parked wishlist lines, then adopts the snapshot's status and
// charges. The same sequence gating as Apply holds.
func (s *Session) ApplyItems(seq uint64, snapshot *order.Order) (bool, error) {
	if err := s.guard.Validate(ErrSessionIsNotConstructed); err != nil {
		return false, err
	}
	if snapshot == nil {
		return false, errs.NewValueIsRequiredErrorWithCause("snapshot", ErrSnapshotIsRequired)
	}

	if seq <= s.appliedSeq {
		return false, nil
	}

	if err := s.ord.ReplaceItems(snapshot.Items()); err != nil {
		return false, err
	}
	if err := s.ord.AdoptStatus(snapshot.Status()); err != nil {
		return false, err
	}
	s.ord.AdoptCharges(snapshot.Tax())

	s.appliedSeq = seq
	return true, nil
}
