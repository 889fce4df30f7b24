package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"149.95", 149.95, nil},
		{" 20 ", 20, nil},
		{"0", 0, nil},
		{"", 0, ErrMissingFields},
		{"abc", 0, ErrInvalidPrice},
		{"-5", 0, ErrInvalidPrice},
		{"NaN", 0, ErrInvalidPrice},
		{"Inf", 0, ErrInvalidPrice},
		{".5", 0.5, nil},
		{"12.", 12, nil},
		{"0x1p4", 0, ErrInvalidPrice},
		{"1e3", 0, ErrInvalidPrice},
		{"1_000", 0, ErrInvalidPrice},
		{"+5", 0, ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidatePaymentLinks(t *testing.T) {
	valid := "0x" + "aBcDeF0123456789aBcDeF0123456789aBcDeF01"

	got, err := ValidatePaymentLinks(PaymentLinks{Venmo: " @dad ", CashApp: "$dad", ETHAddress: valid})
	require.NoError(t, err)
	assert.Equal(t, PaymentLinks{Venmo: "@dad", CashApp: "$dad", ETHAddress: valid}, got)

	_, err = ValidatePaymentLinks(PaymentLinks{Venmo: "johndoe"})
	assert.ErrorIs(t, err, ErrInvalidVenmo)

	_, err = ValidatePaymentLinks(PaymentLinks{ETHAddress: "0x123"})
	assert.ErrorIs(t, err, ErrInvalidETH)

	_, err = ValidatePaymentLinks(PaymentLinks{ETHAddress: "0x" + "g0000000000000000000000000000000000000000"[:40]})
	assert.ErrorIs(t, err, ErrInvalidETH)

	empty, err := ValidatePaymentLinks(PaymentLinks{})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://amazon.com/baby", NormalizeURL("amazon.com/baby"))
	assert.Equal(t, "http://target.com", NormalizeURL("http://target.com"))
	assert.Equal(t, "https://target.com", NormalizeURL(" https://target.com "))
}

func TestPartitionPreservesOrder(t *testing.T) {
	items := []Item{
		{ID: "1", Status: StatusNeeded},
		{ID: "2", Status: StatusReceived},
		{ID: "3", Status: StatusNeeded},
		{ID: "4", Status: StatusReceived},
	}
	p := PartitionItems(items)
	assert.Equal(t, []Item{items[0], items[2]}, p.Needed)
	assert.Equal(t, []Item{items[1], items[3]}, p.Received)

	empty := PartitionItems(nil)
	assert.NotNil(t, empty.Needed)
	assert.NotNil(t, empty.Received)
}

func TestEssentials(t *testing.T) {
	groups := Essentials()
	require.Len(t, groups, 4)
	assert.Equal(t, "Sleep", groups[0].Category)
	assert.Equal(t, EssentialItem{Name: "Baby monitor", Priority: "high"}, groups[0].Items[3])

	groups[0].Items[0].Name = "changed"
	assert.Equal(t, "Crib", Essentials()[0].Items[0].Name)
}
