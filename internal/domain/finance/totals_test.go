package finance

import "testing"

func TestLineTotal(t *testing.T) {
	cases := []struct {
		quantity, unitPrice, want string
	}{
		{"3", "100", "300"},
		{"5", "100", "500"},
		{"0", "250", "0"},
		{"2", "19.99", "39.98"},
	}
	for _, c := range cases {
		got := LineTotal(d(c.quantity), d(c.unitPrice))
		if !got.Equal(d(c.want)) {
			t.Errorf("LineTotal(%s, %s) = %s, want %s", c.quantity, c.unitPrice, got, c.want)
		}
	}
}

func TestLineTotalIdempotent(t *testing.T) {
	a := LineTotal(d("7"), d("42.5"))
	b := LineTotal(d("7"), d("42.5"))
	if !a.Equal(b) {
		t.Errorf("LineTotal not idempotent: %s != %s", a, b)
	}
}

func TestExpenseBalance(t *testing.T) {
	cases := []struct {
		amount, paid, want string
	}{
		{"300", "100", "200"},
		{"300", "300", "0"},
		// overpaid expenses clamp to zero instead of going negative
		{"100", "150", "0"},
		{"100", "0", "100"},
	}
	for _, c := range cases {
		got := ExpenseBalance(d(c.amount), d(c.paid))
		if !got.Equal(d(c.want)) {
			t.Errorf("ExpenseBalance(%s, %s) = %s, want %s", c.amount, c.paid, got, c.want)
		}
	}
}

func TestExpenseFullPaidScenario(t *testing.T) {
	balance := ExpenseBalance(d("300"), d("300"))
	status := PaymentStatusOf(d("300"), d("300"))
	if !balance.IsZero() {
		t.Errorf("balance = %s, want 0", balance)
	}
	if status != StatusFullPaid {
		t.Errorf("status = %q, want %q", status, StatusFullPaid)
	}
}
