package taxengine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}

func TestCalculateWithoutRules(t *testing.T) {
	for _, tc := range []struct {
		rate   string
		nights int
	}{
		{"20000", 3},
		{"0.01", 1},
		{"15500.50", 14},
	} {
		b := Calculate(dec(tc.rate), tc.nights, decimal.Zero, nil)

		assertMoney(t, dec(tc.rate).Mul(decimal.NewFromInt(int64(tc.nights))).String(), b.GrandTotal)
		assert.True(t, b.TotalTaxes.IsZero())
		assert.NotNil(t, b.Taxes)
		assert.Empty(t, b.Taxes)
	}
}

func TestCalculateDegradesToRoomRateOnly(t *testing.T) {
	rules := []Rule{{Name: "VAT", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToRoomRate}}

	zeroNights := Calculate(dec("20000"), 0, dec("5000"), rules)
	assertMoney(t, "5000", zeroNights.GrandTotal)
	assert.Empty(t, zeroNights.Taxes)

	zeroRate := Calculate(decimal.Zero, 3, dec("1500"), rules)
	assertMoney(t, "1500", zeroRate.GrandTotal)
	assert.True(t, zeroRate.TotalTaxes.IsZero())
}

func TestCalculatePercentageOnRoomRate(t *testing.T) {
	rules := []Rule{{Name: "VAT", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToRoomRate}}

	b := Calculate(dec("20000"), 3, decimal.Zero, rules)

	assertMoney(t, "60000", b.RoomRate)
	assertMoney(t, "60000", b.Subtotal)
	require.Len(t, b.Taxes, 1)
	assert.Equal(t, "VAT", b.Taxes[0].Name)
	assertMoney(t, "6000", b.Taxes[0].Amount)
	assertMoney(t, "6000", b.TotalTaxes)
	assertMoney(t, "66000", b.GrandTotal)
}

func TestCalculateFixedIsPerNight(t *testing.T) {
	rules := []Rule{{Name: "City tax", Enabled: true, Type: TypeFixed, Rate: dec("500"), AppliesTo: AppliesToRoomRate}}

	b := Calculate(dec("20000"), 2, dec("5000"), rules)

	require.Len(t, b.Taxes, 1)
	assertMoney(t, "1000", b.Taxes[0].Amount)
	assertMoney(t, "46000", b.GrandTotal)
}

func TestCalculateSkipsDisabledRules(t *testing.T) {
	rules := []Rule{
		{Name: "VAT", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToRoomRate},
		{Name: "Tourism levy", Enabled: false, Type: TypeFixed, Rate: dec("1000"), AppliesTo: AppliesToRoomRate},
	}

	b := Calculate(dec("20000"), 3, decimal.Zero, rules)

	require.Len(t, b.Taxes, 1)
	assert.Equal(t, "VAT", b.Taxes[0].Name)
	assertMoney(t, "6000", b.TotalTaxes)
}

func TestCalculateBases(t *testing.T) {
	rules := []Rule{
		{Name: "Room", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToRoomRate},
		{Name: "Sub", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToSubtotal},
		{Name: "Total", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToTotal},
	}

	b := Calculate(dec("1000"), 2, dec("500"), rules)

	require.Len(t, b.Taxes, 3)
	assertMoney(t, "200", b.Taxes[0].Amount) // 10% of 2000
	assertMoney(t, "250", b.Taxes[1].Amount) // 10% of 2000 + 500
	assertMoney(t, "295", b.Taxes[2].Amount) // 10% of 2500 + 450
	assertMoney(t, "2000", b.Subtotal)
	assertMoney(t, "745", b.TotalTaxes)
	assertMoney(t, "3245", b.GrandTotal)
}

func TestCalculateOrderMatters(t *testing.T) {
	a := Rule{Name: "A", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToTotal}
	b := Rule{Name: "B", Enabled: true, Type: TypePercentage, Rate: dec("5"), AppliesTo: AppliesToTotal}

	ab := Calculate(dec("100"), 1, decimal.Zero, []Rule{a, b})
	ba := Calculate(dec("100"), 1, decimal.Zero, []Rule{b, a})

	assert.Equal(t, "A", ab.Taxes[0].Name)
	assert.Equal(t, "B", ba.Taxes[0].Name)
	assertMoney(t, "10", ab.Taxes[0].Amount)
	assertMoney(t, "5.50", ab.Taxes[1].Amount)
	assertMoney(t, "5", ba.Taxes[0].Amount)
	assertMoney(t, "10.50", ba.Taxes[1].Amount)

	fixed := Rule{Name: "Fixed", Enabled: true, Type: TypeFixed, Rate: dec("500"), AppliesTo: AppliesToTotal}
	pct := Rule{Name: "Pct", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: AppliesToTotal}

	first := Calculate(dec("20000"), 1, decimal.Zero, []Rule{fixed, pct})
	second := Calculate(dec("20000"), 1, decimal.Zero, []Rule{pct, fixed})

	assertMoney(t, "2550", first.TotalTaxes)
	assertMoney(t, "2500", second.TotalTaxes)
}

func TestCalculateRoundsToCents(t *testing.T) {
	rules := []Rule{{Name: "Half", Enabled: true, Type: TypePercentage, Rate: dec("0.5"), AppliesTo: AppliesToRoomRate}}

	b := Calculate(dec("101"), 1, decimal.Zero, rules)
	assert.Equal(t, "0.51", b.Taxes[0].Amount.StringFixed(2))

	b = Calculate(dec("10.05"), 1, decimal.Zero, []Rule{{Name: "VAT", Enabled: true, Type: TypePercentage, Rate: dec("7.5"), AppliesTo: AppliesToRoomRate}})
	assert.Equal(t, "0.75", b.Taxes[0].Amount.StringFixed(2))
}

func TestRoundMoneyHalfUp(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"0.005", "0.01"},
		{"0.004", "0.00"},
		{"2.675", "2.68"},
		{"-0.005", "0.00"},
		{"-0.015", "-0.01"},
		{"-0.016", "-0.02"},
		{"-2.675", "-2.67"},
		{"1234.5", "1234.50"},
	} {
		assert.Equal(t, tc.want, RoundMoney(dec(tc.in)).StringFixed(2), tc.in)
	}
}

func TestCalculateSkipsUnknownRules(t *testing.T) {
	rules := []Rule{
		{Name: "Odd base", Enabled: true, Type: TypePercentage, Rate: dec("10"), AppliesTo: "NIGHTLY"},
		{Name: "Odd type", Enabled: true, Type: "TIERED", Rate: dec("10"), AppliesTo: AppliesToRoomRate},
		{Name: "lower case", Enabled: true, Type: "percentage", Rate: dec("10"), AppliesTo: "room_rate"},
	}

	b := Calculate(dec("100"), 1, decimal.Zero, rules)

	require.Len(t, b.Taxes, 1)
	assert.Equal(t, "lower case", b.Taxes[0].Name)
	assert.Equal(t, TypePercentage, b.Taxes[0].Type)
	assertMoney(t, "110", b.GrandTotal)
}
