package usecase

import "github.com/bellj/connect-api-examples/internal/square"

// Stage is the checkout stage implied by the server-side order state. The
// flow itself is stateless, so each step derives the stage from a fresh
// fetch rather than trusting where the browser came from.
type Stage int

const (
	StageNew            Stage = iota // order exists, no fulfillment chosen
	StageFulfillmentSet              // delivery/pickup chosen
	StagePaid                        // at least one tender recorded
)

func (s Stage) String() string {
	switch s {
	case StageNew:
		return "new"
	case StageFulfillmentSet:
		return "fulfillment_set"
	case StagePaid:
		return "paid"
	default:
		return "unknown"
	}
}

// CanPay reports whether the payment page may render for this stage.
func (s Stage) CanPay() bool { return s >= StageFulfillmentSet }

func StageOf(o *square.Order) Stage {
	switch {
	case len(o.Tenders) > 0:
		return StagePaid
	case len(o.Fulfillments) > 0:
		return StageFulfillmentSet
	default:
		return StageNew
	}
}
