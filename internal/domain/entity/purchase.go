package entity

// DevicePurchase is one purchase as reported by the billing provider on the
// device. It is ephemeral: only its derived effects on entitlements are
// persisted.
type DevicePurchase struct {
	Products       []string `json:"products"`       // Product identifiers the purchase covers; the first is primary.
	PurchaseToken  string   `json:"purchase_token"` // Token correlating this purchase across device, provider and backend.
	IsAutoRenewing bool     `json:"is_auto_renewing"`
	IsAcknowledged bool     `json:"is_acknowledged"` // Acknowledged on the device, as reported by the provider.
}

// PrimaryProduct returns the purchase's primary product identifier, or the
// empty string for a purchase with no products.
func (p *DevicePurchase) PrimaryProduct() string {
	if len(p.Products) == 0 {
		return ""
	}

	return p.Products[0]
}

// Covers reports whether the purchase includes the given product.
func (p *DevicePurchase) Covers(product string) bool {
	for _, candidate := range p.Products {
		if candidate == product {
			return true
		}
	}

	return false
}

// FindPurchaseForProduct returns the first device purchase covering the
// product, or nil when none does.
func FindPurchaseForProduct(purchases []DevicePurchase, product string) *DevicePurchase {
	for i := range purchases {
		if purchases[i].Covers(product) {
			return &purchases[i]
		}
	}

	return nil
}
