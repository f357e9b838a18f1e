package stockledger

import "testing"

func TestMoney_Text(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "2.50", want: "2.5"},
		{in: "0", want: "0"},
		{in: "1234.56", want: "1234.56"},
		{in: "0.1", want: "0.1"},
	}
	for _, tc := range testCases {
		m, err := ParseMoney(tc.in, "USD")
		if err != nil {
			t.Fatalf("ParseMoney(%q): %v", tc.in, err)
		}
		if got := m.Text(); got != tc.want {
			t.Errorf("ParseMoney(%q).Text() = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMoney("not-a-number", "USD"); err == nil {
		t.Error("ParseMoney accepted garbage")
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		value    float64
		currency string
		want     string
	}{
		{value: 2.5, currency: "USD", want: "$2.50"},
		{value: 10, currency: "USD", want: "$10.00"},
		{value: 0, currency: "USD", want: "$0.00"},
	}
	for _, tc := range testCases {
		if got := M(tc.value, tc.currency).String(); got != tc.want {
			t.Errorf("M(%v, %q).String() = %q, want %q", tc.value, tc.currency, got, tc.want)
		}
	}
}

func TestMoney_MulQty(t *testing.T) {
	// Decimal arithmetic must not pick up float dust: 2.50 x 4 is exactly 10.
	got := M(2.50, "USD").MulQty(4)
	if !got.Equal(M(10, "USD")) {
		t.Errorf("2.50 x 4 = %s, want 10", got.Text())
	}
	if got := M(0.1, "USD").MulQty(3); got.Text() != "0.3" {
		t.Errorf("0.1 x 3 = %s, want 0.3", got.Text())
	}
}

func TestMoney_AddWeakCurrency(t *testing.T) {
	// The zero Money carries no currency and adopts the other operand's.
	var zero Money
	got := zero.Add(M(5, "EUR"))
	if got.Currency() != "EUR" {
		t.Errorf("currency = %q, want EUR", got.Currency())
	}
	if got.Text() != "5" {
		t.Errorf("value = %s, want 5", got.Text())
	}
}
