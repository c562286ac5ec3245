package service

import (
	"context"

	"tollgate/internal/domain/entity"
)

// BillingResponse classifies a billing provider response code the way the
// acknowledgement retry policy needs it: idempotent success, worth retrying,
// or give up.
type BillingResponse int

const (
	// BillingResponseOK is plain success.
	BillingResponseOK BillingResponse = iota
	// BillingResponseAlreadyOwned means the provider already considers the
	// token acknowledged or owned; treated as success.
	BillingResponseAlreadyOwned
	// BillingResponseRecoverable covers transient provider failures
	// (service disconnected, internal error) worth retrying.
	BillingResponseRecoverable
	// BillingResponseTerminal covers everything that retrying cannot fix
	// (developer error, item not owned, user cancellation).
	BillingResponseTerminal
)

// String returns a readable name for logging.
func (r BillingResponse) String() string {
	switch r {
	case BillingResponseOK:
		return "ok"
	case BillingResponseAlreadyOwned:
		return "already_owned"
	case BillingResponseRecoverable:
		return "recoverable"
	default:
		return "terminal"
	}
}

// BillingProvider is the capability surface of the billing provider's
// server API. Purchase queries and purchase-flow launches happen on the
// device; this service only ever acknowledges tokens the device reported.
type BillingProvider interface {
	// Acknowledge tells the provider the purchase token has been granted.
	// The provider refunds unacknowledged purchases after its window, so
	// this must eventually succeed for every registered purchase. The
	// returned response is already classified; err carries detail for logs.
	Acknowledge(ctx context.Context, kind entity.ProductKind, product, purchaseToken string) (BillingResponse, error)
}
