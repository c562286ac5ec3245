package entity

// PlanState is the single discrete subscription state derived from a user's
// reconciled entitlement list. It drives which base-plan conversion actions
// (upgrade, downgrade, convert to prepaid) are offered.
type PlanState string

const (
	PlanStateNone             PlanState = "NONE"
	PlanStateBasicPrepaid     PlanState = "BASIC_PREPAID"
	PlanStateBasicRenewable   PlanState = "BASIC_RENEWABLE"
	PlanStatePremiumPrepaid   PlanState = "PREMIUM_PREPAID"
	PlanStatePremiumRenewable PlanState = "PREMIUM_RENEWABLE"
)

// ClassifyPlan derives the current plan state from the reconciled
// entitlement list. Renewable plans outrank prepaid plans, and when both
// tiers are simultaneously active in the same billing mode the premium tier
// wins, so the result is deterministic for every input.
func ClassifyPlan(catalog Catalog, entitlements []Entitlement) PlanState {
	var (
		renewableBasic   bool
		renewablePremium bool
		prepaidBasic     bool
		prepaidPremium   bool
	)

	for i := range entitlements {
		e := &entitlements[i]
		switch {
		case e.GrantsContent(catalog.BasicProduct):
			if e.IsPrepaid {
				prepaidBasic = true
			} else if e.WillRenew {
				renewableBasic = true
			}
		case e.GrantsContent(catalog.PremiumProduct):
			if e.IsPrepaid {
				prepaidPremium = true
			} else if e.WillRenew {
				renewablePremium = true
			}
		}
	}

	switch {
	case renewablePremium:
		return PlanStatePremiumRenewable
	case renewableBasic:
		return PlanStateBasicRenewable
	case prepaidPremium:
		return PlanStatePremiumPrepaid
	case prepaidBasic:
		return PlanStateBasicPrepaid
	default:
		return PlanStateNone
	}
}
