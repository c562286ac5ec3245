package entity

// ProductKind distinguishes how a product in the catalog is registered and
// acknowledged. Registration is dispatched over this enum rather than a map
// of product handlers so unknown products fail loudly in one place.
type ProductKind int

const (
	// ProductKindUnknown marks a product that is not in the catalog.
	ProductKindUnknown ProductKind = iota
	// ProductKindOneTime is a consumable one-time product.
	ProductKindOneTime
	// ProductKindBasic is the basic subscription tier.
	ProductKindBasic
	// ProductKindPremium is the premium subscription tier.
	ProductKindPremium
)

// String returns a readable name for logging.
func (k ProductKind) String() string {
	switch k {
	case ProductKindOneTime:
		return "one_time"
	case ProductKindBasic:
		return "basic"
	case ProductKindPremium:
		return "premium"
	default:
		return "unknown"
	}
}

// IsSubscription reports whether the kind is a subscription tier.
func (k ProductKind) IsSubscription() bool {
	return k == ProductKindBasic || k == ProductKindPremium
}

// Catalog is the fixed set of purchasable products this service manages.
type Catalog struct {
	BasicProduct   string
	PremiumProduct string
	OneTimeProduct string
}

// Products lists every non-empty product identifier in the catalog.
func (c Catalog) Products() []string {
	products := make([]string, 0, 3)
	for _, product := range []string{c.BasicProduct, c.PremiumProduct, c.OneTimeProduct} {
		if product != "" {
			products = append(products, product)
		}
	}

	return products
}

// KindOf resolves a product identifier to its kind.
func (c Catalog) KindOf(product string) ProductKind {
	switch product {
	case c.BasicProduct:
		return ProductKindBasic
	case c.PremiumProduct:
		return ProductKindPremium
	case c.OneTimeProduct:
		return ProductKindOneTime
	default:
		return ProductKindUnknown
	}
}
