package negotiation

import (
	"fmt"
	"time"

	"nlistplanet/internal/domain/entity"
	"nlistplanet/pkg/errors"
)

// LatestActor returns the role that most recently proposed terms on the
// record: the last counter's author, or the original proposer when no
// counters exist. The other role is the one who must act next.
func LatestActor(n *entity.Negotiation) entity.Role {
	if e := n.LatestEntry(); e != nil {
		return e.By
	}
	return n.ProposerRole
}

// CanAccept reports whether the given role may accept the record as it
// stands. A party may accept only terms proposed by the other side.
func CanAccept(n *entity.Negotiation, actor entity.Role) bool {
	return n.Status.Negotiable() && actor != LatestActor(n)
}

// CanCounter reports whether the given role may propose new terms. The
// turn rule is the same as for accept.
func CanCounter(n *entity.Negotiation, actor entity.Role) bool {
	return n.Status.Negotiable() && actor != LatestActor(n)
}

// CanReject reports whether the record may be rejected. Either party
// may reject unilaterally at any point before a terminal state.
func CanReject(n *entity.Negotiation) bool {
	return n.Status.Negotiable()
}

// ActionRequired reports whether the given role is the one expected to
// act on the record. Every screen that shows an "action required"
// marker derives it from this function.
func ActionRequired(n *entity.Negotiation, viewer entity.Role) bool {
	return CanAccept(n, viewer)
}

// ValidateTerms checks proposed terms against the parent listing's
// constraints. Shared by place and counter.
func ValidateTerms(listing *entity.Listing, price float64, quantity int) error {
	if price <= 0 {
		return errors.Validation("price must be greater than zero")
	}
	if quantity < listing.MinLot {
		return errors.Validation(fmt.Sprintf("quantity %d is below the minimum lot of %d", quantity, listing.MinLot))
	}
	if quantity > listing.Quantity {
		return errors.Validation(fmt.Sprintf("quantity %d exceeds the listed quantity of %d", quantity, listing.Quantity))
	}
	return nil
}

// CheckPlace validates that actorID may open a new negotiation against
// the listing at the given terms.
func CheckPlace(listing *entity.Listing, actorID string, price float64, quantity int) error {
	if IsOwner(listing, actorID) {
		return errors.Validation("cannot bid on your own listing")
	}
	if !listing.Status.Open() {
		return errors.InvalidTransition(fmt.Sprintf("listing is %s and no longer accepts bids", listing.Status))
	}
	return ValidateTerms(listing, price, quantity)
}

// CheckAccept validates that actor may accept the record.
func CheckAccept(n *entity.Negotiation, actor entity.Role) error {
	if !n.Status.Negotiable() {
		return errors.InvalidTransition(fmt.Sprintf("negotiation is %s and cannot be accepted", n.Status))
	}
	if actor == LatestActor(n) {
		return errors.InvalidTransition("cannot accept your own proposal; waiting for the other party")
	}
	return nil
}

// CheckReject validates that the record may be rejected.
func CheckReject(n *entity.Negotiation) error {
	if !n.Status.Negotiable() {
		return errors.InvalidTransition(fmt.Sprintf("negotiation is %s and cannot be rejected", n.Status))
	}
	return nil
}

// CheckCounter validates that actor may counter the record with the
// given terms against the parent listing.
func CheckCounter(listing *entity.Listing, n *entity.Negotiation, actor entity.Role, price float64, quantity int) error {
	if !n.Status.Negotiable() {
		return errors.InvalidTransition(fmt.Sprintf("negotiation is %s and cannot be countered", n.Status))
	}
	if actor == LatestActor(n) {
		return errors.InvalidTransition("cannot counter your own proposal; waiting for the other party")
	}
	return ValidateTerms(listing, price, quantity)
}

// Place builds a new pending negotiation record for the listing, after
// running the place checks.
func Place(listing *entity.Listing, actorID string, price float64, quantity int, now time.Time) (*entity.Negotiation, error) {
	if err := CheckPlace(listing, actorID, price, quantity); err != nil {
		return nil, err
	}
	return &entity.Negotiation{
		ListingID:      listing.ID,
		CounterpartyID: actorID,
		ProposerRole:   ProposerRole(listing.Type),
		Price:          price,
		Quantity:       quantity,
		Status:         entity.NegotiationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ApplyAccept transitions the record to accepted in place.
func ApplyAccept(n *entity.Negotiation, actor entity.Role, now time.Time) error {
	if err := CheckAccept(n, actor); err != nil {
		return err
	}
	n.Status = entity.NegotiationStatusAccepted
	n.UpdatedAt = now
	return nil
}

// ApplyReject transitions the record to rejected in place. The history
// is frozen from here on.
func ApplyReject(n *entity.Negotiation, now time.Time) error {
	if err := CheckReject(n); err != nil {
		return err
	}
	n.Status = entity.NegotiationStatusRejected
	n.UpdatedAt = now
	return nil
}

// ApplyCounter appends a new counter-history entry and moves the record
// to countered. The original proposal counts as round 1, so the first
// counter lands on round 2; rounds are strictly increasing after that.
func ApplyCounter(listing *entity.Listing, n *entity.Negotiation, actor entity.Role, price float64, quantity int, now time.Time) error {
	if err := CheckCounter(listing, n, actor, price, quantity); err != nil {
		return err
	}
	round := 2
	if e := n.LatestEntry(); e != nil {
		round = e.Round + 1
	}
	n.History = append(n.History, entity.CounterEntry{
		By:       actor,
		Price:    price,
		Quantity: quantity,
		Round:    round,
		At:       now,
	})
	n.Status = entity.NegotiationStatusCountered
	n.UpdatedAt = now
	return nil
}
