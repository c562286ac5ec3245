package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlreadyOwnedEntitlement(t *testing.T) {
	record := AlreadyOwnedEntitlement("premium_subscription", "token-2")

	assert.True(t, record.SubAlreadyOwned)
	assert.True(t, record.IsLocalPurchase)
	assert.False(t, record.IsEntitlementActive)
	assert.True(t, record.IsTransferRequired())
	assert.False(t, record.GrantsContent("premium_subscription"))
}

func TestInsertOrUpdate(t *testing.T) {
	records := []Entitlement{
		{Product: "basic_subscription", PurchaseToken: "token-1"},
	}

	updated := InsertOrUpdate(records, Entitlement{Product: "basic_subscription", PurchaseToken: "token-9"})
	require.Len(t, updated, 1)
	assert.Equal(t, "token-9", updated[0].PurchaseToken)

	appended := InsertOrUpdate(records, Entitlement{Product: "premium_subscription", PurchaseToken: "token-2"})
	require.Len(t, appended, 2)

	// Input slice stays untouched.
	assert.Equal(t, "token-1", records[0].PurchaseToken)
}

func TestEntitlement_StateVisibility(t *testing.T) {
	tests := []struct {
		name   string
		record Entitlement
		check  func(e *Entitlement) bool
		want   bool
	}{
		{
			name:   "grace period visible while active",
			record: Entitlement{Product: "basic_subscription", IsEntitlementActive: true, IsGracePeriod: true},
			check:  (*Entitlement).IsGracePeriodVisible,
			want:   true,
		},
		{
			name:   "grace period hidden for foreign-owned record",
			record: Entitlement{Product: "basic_subscription", IsEntitlementActive: true, IsGracePeriod: true, SubAlreadyOwned: true},
			check:  (*Entitlement).IsGracePeriodVisible,
			want:   false,
		},
		{
			name:   "account hold visible while inactive",
			record: Entitlement{Product: "basic_subscription", IsAccountHold: true},
			check:  (*Entitlement).IsAccountHoldVisible,
			want:   true,
		},
		{
			name:   "paused visible while inactive",
			record: Entitlement{Product: "basic_subscription", IsPaused: true},
			check:  (*Entitlement).IsPausedVisible,
			want:   true,
		},
		{
			name:   "restore offered after cancel",
			record: Entitlement{Product: "basic_subscription", IsEntitlementActive: true},
			check:  (*Entitlement).IsRestoreOffered,
			want:   true,
		},
		{
			name:   "restore not offered while renewing",
			record: Entitlement{Product: "basic_subscription", IsEntitlementActive: true, WillRenew: true},
			check:  (*Entitlement).IsRestoreOffered,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(&tt.record))
		})
	}
}

func TestEntitlement_NilReceiverIsSafe(t *testing.T) {
	var e *Entitlement

	assert.False(t, e.IsTransferRequired())
	assert.False(t, e.IsGracePeriodVisible())
	assert.False(t, e.IsAccountHoldVisible())
	assert.False(t, e.IsPausedVisible())
	assert.False(t, e.IsRestoreOffered())
	assert.False(t, e.GrantsContent("basic_subscription"))
}

func TestFindPurchaseForProduct(t *testing.T) {
	purchases := []DevicePurchase{
		{Products: []string{"basic_subscription"}, PurchaseToken: "token-1"},
		{Products: []string{"premium_subscription", "addon"}, PurchaseToken: "token-2"},
	}

	match := FindPurchaseForProduct(purchases, "addon")
	require.NotNil(t, match)
	assert.Equal(t, "token-2", match.PurchaseToken)

	assert.Nil(t, FindPurchaseForProduct(purchases, "missing"))
}
