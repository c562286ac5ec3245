// Package entity contains the core business objects of the project.
package entity

// Entitlement is the authoritative record of a user's right to a product,
// unified across subscription tiers and one-time products. It mirrors what
// the backend of record reports, enriched with what this device currently
// holds.
type Entitlement struct {
	Product             string `json:"product"`               // Product identifier (SKU) this entitlement is for.
	PurchaseToken       string `json:"purchase_token"`        // Provider purchase token; empty when unknown.
	IsEntitlementActive bool   `json:"is_entitlement_active"` // True while the user is entitled to the content.
	IsAcknowledged      bool   `json:"is_acknowledged"`       // True once the purchase has been acknowledged end to end.
	WillRenew           bool   `json:"will_renew"`            // Subscriptions only: auto-renew is on.
	IsConsumed          bool   `json:"is_consumed"`           // One-time products only.
	IsAccountHold       bool   `json:"is_account_hold"`
	IsGracePeriod       bool   `json:"is_grace_period"`
	IsPaused            bool   `json:"is_paused"`
	SubAlreadyOwned     bool   `json:"sub_already_owned"` // The backend reports another account owns this token.
	IsLocalPurchase     bool   `json:"is_local_purchase"` // A matching purchase is visible on this device.
	IsPrepaid           bool   `json:"is_prepaid"`
	Quantity            int    `json:"quantity"`
}

// AlreadyOwnedEntitlement builds the placeholder record the remote client
// synthesizes when the backend reports a token as bound to another account.
// The record is inactive but kept visible so the user can request a transfer.
func AlreadyOwnedEntitlement(product, purchaseToken string) Entitlement {
	return Entitlement{
		Product:         product,
		PurchaseToken:   purchaseToken,
		SubAlreadyOwned: true,
		IsLocalPurchase: true,
	}
}

// EntitlementForProduct returns the first entitlement for the given product,
// or nil when the list has none.
func EntitlementForProduct(entitlements []Entitlement, product string) *Entitlement {
	for i := range entitlements {
		if entitlements[i].Product == product {
			return &entitlements[i]
		}
	}

	return nil
}

// InsertOrUpdate replaces the entitlement for the record's product, or
// appends it when the product is not present yet. The input slice is not
// modified.
func InsertOrUpdate(entitlements []Entitlement, record Entitlement) []Entitlement {
	out := make([]Entitlement, 0, len(entitlements)+1)
	replaced := false
	for _, e := range entitlements {
		if e.Product == record.Product {
			out = append(out, record)
			replaced = true

			continue
		}
		out = append(out, e)
	}
	if !replaced {
		out = append(out, record)
	}

	return out
}

// IsTransferRequired reports whether the entitlement is owned by a different
// account and needs a transfer before it can be managed here.
func (e *Entitlement) IsTransferRequired() bool {
	return e != nil && e.SubAlreadyOwned
}

// IsGracePeriodVisible reports whether the grace period warning applies.
// An entitlement owned by another account never shows billing state.
func (e *Entitlement) IsGracePeriodVisible() bool {
	return e != nil && e.IsEntitlementActive && e.IsGracePeriod && !e.SubAlreadyOwned
}

// IsAccountHoldVisible reports whether the account hold state applies.
func (e *Entitlement) IsAccountHoldVisible() bool {
	return e != nil && !e.IsEntitlementActive && e.IsAccountHold && !e.SubAlreadyOwned
}

// IsPausedVisible reports whether the paused state applies.
func (e *Entitlement) IsPausedVisible() bool {
	return e != nil && !e.IsEntitlementActive && e.IsPaused && !e.SubAlreadyOwned
}

// IsRestoreOffered reports whether the user canceled renewal and should be
// offered a restore before the term ends.
func (e *Entitlement) IsRestoreOffered() bool {
	return e != nil && e.IsEntitlementActive && !e.WillRenew && !e.SubAlreadyOwned
}

// GrantsContent reports whether the entitlement currently grants access to
// the given product's content.
func (e *Entitlement) GrantsContent(product string) bool {
	return e != nil && e.IsEntitlementActive && e.Product == product && !e.SubAlreadyOwned
}
