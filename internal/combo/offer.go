package combo

import (
	"errors"

	"github.com/merchkit/combobuilder/internal/schema"
)

// ErrNoOffer is returned when a discount is selected while the offer toggle
// is off.
var ErrNoOffer = errors.New("no discount offer enabled")

// EnableOffer turns the discount offer on. If no discount was chosen yet and
// the catalog has active discounts, the first one is auto-selected; otherwise
// the offer stays open without a selection until discount creation completes.
func (s *Store) EnableOffer(activeIDs []int64) {
	s.mu.Lock()
	next := s.cfg.Clone()
	next[schema.KeyHasDiscountOffer] = true
	if _, selected := next.SelectedDiscountID(); !selected && len(activeIDs) > 0 {
		next[schema.KeySelectedDiscountID] = activeIDs[0]
	}
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
}

// DisableOffer turns the offer off and clears the selection unconditionally.
func (s *Store) DisableOffer() {
	s.mu.Lock()
	next := s.cfg.Clone()
	next[schema.KeyHasDiscountOffer] = false
	next[schema.KeySelectedDiscountID] = nil
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
}

// SelectDiscount points the configuration at an existing discount. The offer
// must already be enabled; a selection can never exist without one.
func (s *Store) SelectDiscount(id int64) error {
	s.mu.Lock()
	if has, _ := s.cfg[schema.KeyHasDiscountOffer].(bool); !has {
		s.mu.Unlock()
		return ErrNoOffer
	}
	next := s.cfg.Clone()
	next[schema.KeySelectedDiscountID] = id
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
	return nil
}

// AttachCreatedDiscount completes the offer transition after an external
// discount creation succeeds: the new id is selected and the offer enabled
// in one commit.
func (s *Store) AttachCreatedDiscount(id int64) {
	s.mu.Lock()
	next := s.cfg.Clone()
	next[schema.KeyHasDiscountOffer] = true
	next[schema.KeySelectedDiscountID] = id
	s.cfg = next
	s.mu.Unlock()

	s.notify(next)
}
