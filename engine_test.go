package folio

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestComputeUpdates(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []Transaction
		want         map[HoldingKey][]string // running quantities per holding
	}{
		{
			name: "deposit then funded purchase",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("1000")),
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("150"), "USD"),
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"1000", "-500"},
				"AAPL":     {"10"},
			},
		},
		{
			name: "deposit fee in the deposit currency is netted",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("1000")).WithFee(dec("10"), "USD"),
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"990"},
			},
		},
		{
			name: "deposit fee in another currency",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("1000")).WithFee(dec("5"), "EUR"),
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"1000"},
				"Cash:EUR": {"-5"},
			},
		},
		{
			name: "payment is a deposit",
			transactions: []Transaction{
				{Type: Payment, Date: day("2025-01-01"), Asset: "EUR", AssetCurrency: "EUR", Quantity: dec("42"), PriceFactor: one, ExchangeRate: one},
			},
			want: map[HoldingKey][]string{
				"Cash:EUR": {"42"},
			},
		},
		{
			name: "withdrawal with fee",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("1000")),
				NewWithdrawal(day("2025-01-05"), "USD", dec("200")).WithFee(dec("2"), "USD"),
				NewWithdrawal(day("2025-01-06"), "USD", dec("100")).WithFee(dec("1"), "EUR"),
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"1000", "798", "698"},
				"Cash:EUR": {"-1"},
			},
		},
		{
			name: "fee transaction with a fee pays twice",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("100")),
				{Type: Fee, Date: day("2025-01-31"), Asset: "USD", AssetCurrency: "USD", Quantity: dec("10"), PriceFactor: one, ExchangeRate: one, Fee: dec("10"), FeeCurrency: "USD"},
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"100", "80"},
			},
		},
		{
			name: "purchase with the fee in the base currency",
			transactions: []Transaction{
				NewDeposit(day("2025-01-01"), "USD", dec("1000")),
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("2"), dec("100"), "USD").WithFee(dec("1"), "USD"),
			},
			want: map[HoldingKey][]string{
				"Cash:USD": {"1000", "799"},
				"AAPL":     {"2"},
			},
		},
		{
			name: "purchase converted, fee in a third currency",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("10"), "EUR").WithExchangeRate(dec("0.9")).WithFee(dec("2"), "CHF"),
			},
			want: map[HoldingKey][]string{
				"AAPL":     {"10"},
				"Cash:EUR": {"-90"},
				"Cash:CHF": {"-2"},
			},
		},
		{
			name: "exchange rate ignored when currencies match",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("10"), "USD").WithExchangeRate(dec("0.9")),
			},
			want: map[HoldingKey][]string{
				"AAPL":     {"10"},
				"Cash:USD": {"-100"},
			},
		},
		{
			name: "price factor",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "ES", "USD", dec("1"), dec("5"), "USD").WithPriceFactor(dec("50")),
			},
			want: map[HoldingKey][]string{
				"ES":       {"1"},
				"Cash:USD": {"-250"},
			},
		},
		{
			name: "sale with the fee in the base currency",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("50"), ""),
				NewSale(day("2025-02-02"), "AAPL", "USD", dec("4"), dec("50"), "USD").WithPriceFactor(dec("2")).WithFee(dec("3"), "USD"),
			},
			want: map[HoldingKey][]string{
				"AAPL":     {"10", "6"},
				"Cash:USD": {"397"},
			},
		},
		{
			name: "sale fee in another currency is paid",
			transactions: []Transaction{
				NewSale(day("2025-02-02"), "AAPL", "USD", dec("4"), dec("50"), "USD").WithFee(dec("3"), "EUR"),
			},
			want: map[HoldingKey][]string{
				"AAPL":     {"-4"},
				"Cash:USD": {"200"},
				"Cash:EUR": {"-3"},
			},
		},
		{
			name: "unfunded purchase is a grant",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("150"), ""),
			},
			want: map[HoldingKey][]string{
				"AAPL": {"10"},
			},
		},
		{
			name: "unfunded purchase still pays its fee",
			transactions: []Transaction{
				NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("150"), "").WithFee(dec("1"), "USD"),
			},
			want: map[HoldingKey][]string{
				"AAPL":     {"10"},
				"Cash:USD": {"-1"},
			},
		},
		{
			name:         "no transactions",
			transactions: nil,
			want:         map[HoldingKey][]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := ComputeUpdates(tc.transactions)
			if err != nil {
				t.Fatalf("ComputeUpdates() error = %v", err)
			}
			got := make(map[HoldingKey][]string)
			for key, h := range u.All() {
				got[key] = quantities(h)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ComputeUpdates() quantities mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeUpdates_Records(t *testing.T) {
	transactions := []Transaction{
		NewDeposit(day("2025-01-01"), "EUR", dec("1000")),
		NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("10"), "EUR").WithExchangeRate(dec("0.9")).WithPriceFactor(dec("2")),
	}
	u, err := ComputeUpdates(transactions)
	if err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}

	want := map[HoldingKey][]Update{
		"AAPL": {{
			Date:         day("2025-01-02"),
			Quantity:     dec("10"),
			Price:        decimal.NewNullDecimal(dec("10")),
			PriceFactor:  dec("2"),
			ExchangeRate: dec("0.9"),
			BaseCurrency: "EUR",
		}},
		"Cash:EUR": {
			{Date: day("2025-01-01"), Quantity: dec("1000"), PriceFactor: dec("1"), ExchangeRate: dec("1")},
			// funding rows carry the price factor of the trade
			{Date: day("2025-01-02"), Quantity: dec("820"), PriceFactor: dec("2"), ExchangeRate: dec("1")},
		},
	}
	for key, updates := range want {
		h := u.Holding(key)
		if h == nil {
			t.Fatalf("Holding(%q) is missing", key)
		}
		if diff := cmp.Diff(updates, h.Updates(), compareValues); diff != "" {
			t.Errorf("Holding(%q).Updates() mismatch (-want +got):\n%s", key, diff)
		}
	}
	if got := u.Holding("AAPL").AssetCurrency(); got != "USD" {
		t.Errorf("AAPL AssetCurrency() = %q, want USD", got)
	}
	if got := u.Holding("Cash:EUR").AssetCurrency(); got != "EUR" {
		t.Errorf("Cash:EUR AssetCurrency() = %q, want EUR", got)
	}
}

func TestComputeUpdates_SharedFeeHoldingHasOneRecord(t *testing.T) {
	for _, typ := range []TransactionType{Purchase, Sale} {
		t.Run(string(typ), func(t *testing.T) {
			tx := NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("3"), dec("7"), "USD").WithFee(dec("1"), "USD")
			tx.Type = typ
			u, err := ComputeUpdates([]Transaction{tx})
			if err != nil {
				t.Fatalf("ComputeUpdates() error = %v", err)
			}
			if got := u.Holding("Cash:USD").Len(); got != 1 {
				t.Errorf("Cash:USD has %d records, want 1", got)
			}
		})
	}
}

func TestComputeUpdates_RoundTrip(t *testing.T) {
	purchase := NewPurchase(day("2025-01-02"), "AAPL", "USD", dec("10"), dec("150.25"), "EUR").
		WithExchangeRate(dec("0.92")).
		WithPriceFactor(dec("3"))
	sale := purchase
	sale.Type = Sale
	sale.Date = day("2025-03-01")

	u, err := ComputeUpdates([]Transaction{
		NewDeposit(day("2025-01-01"), "EUR", dec("10000")),
		NewPurchase(day("2025-01-01"), "AAPL", "USD", dec("5"), dec("100"), ""),
		purchase,
		sale,
	})
	if err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}

	aapl := u.Holding("AAPL").Updates()
	if before, after := aapl[0].Quantity, aapl[len(aapl)-1].Quantity; !before.Equal(after) {
		t.Errorf("AAPL after round trip = %v, want %v", after, before)
	}
	cash := u.Holding("Cash:EUR").Updates()
	if before, after := cash[0].Quantity, cash[len(cash)-1].Quantity; !before.Equal(after) {
		t.Errorf("Cash:EUR after round trip = %v, want %v", after, before)
	}
}

func TestComputeUpdates_AssetCurrencyIsFixed(t *testing.T) {
	u, err := ComputeUpdates([]Transaction{
		NewPurchase(day("2025-01-02"), "GOLD", "USD", dec("1"), dec("2000"), ""),
		NewPurchase(day("2025-01-03"), "GOLD", "EUR", dec("1"), dec("1900"), ""),
	})
	if err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}
	if got := u.Holding("GOLD").AssetCurrency(); got != "USD" {
		t.Errorf("AssetCurrency() = %q, want the first one: USD", got)
	}
}

func TestComputeUpdates_AssetCurrencyOfFeeHolding(t *testing.T) {
	// Cash:EUR first appears as a fee holding, then as a primary holding.
	u, err := ComputeUpdates([]Transaction{
		NewDeposit(day("2025-01-01"), "USD", dec("1")).WithFee(dec("1"), "EUR"),
		{Type: Deposit, Date: day("2025-01-02"), Asset: "EUR", AssetCurrency: "XEU", Quantity: dec("1"), PriceFactor: one, ExchangeRate: one},
	})
	if err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}
	if got := u.Holding("Cash:EUR").AssetCurrency(); got != "XEU" {
		t.Errorf("AssetCurrency() = %q, want XEU", got)
	}
	if diff := cmp.Diff([]string{"-1", "0"}, quantities(u.Holding("Cash:EUR"))); diff != "" {
		t.Errorf("Cash:EUR quantities mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeUpdates_Errors(t *testing.T) {
	deposit := NewDeposit(day("2025-01-01"), "USD", dec("1000"))
	testCases := []struct {
		name string
		tx   Transaction
		want error
	}{
		{
			name: "unknown type",
			tx:   Transaction{Type: "Dividend", Date: day("2025-01-02"), Asset: "AAPL"},
			want: ErrUnknownTransactionType,
		},
		{
			name: "fee without currency",
			tx:   NewWithdrawal(day("2025-01-02"), "USD", dec("1")).WithFee(dec("1"), ""),
			want: ErrMissingFeeCurrency,
		},
		{
			name: "purchase without price",
			tx:   Transaction{Type: Purchase, Date: day("2025-01-02"), Asset: "AAPL", Quantity: dec("1"), PriceFactor: one, ExchangeRate: one, BaseCurrency: "USD"},
			want: ErrMissingPrice,
		},
		{
			name: "sale without price",
			tx:   Transaction{Type: Sale, Date: day("2025-01-02"), Asset: "AAPL", Quantity: dec("1"), PriceFactor: one, ExchangeRate: one},
			want: ErrMissingPrice,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// the faulty transaction is in the middle: nothing must be returned.
			u, err := ComputeUpdates([]Transaction{deposit, tc.tx, deposit})
			if !errors.Is(err, tc.want) {
				t.Fatalf("ComputeUpdates() error = %v, want %v", err, tc.want)
			}
			if u != nil {
				t.Errorf("ComputeUpdates() returned %d holdings on error, want none", u.Len())
			}
		})
	}
}

func TestComputeUpdates_UnknownTypeError(t *testing.T) {
	_, err := ComputeUpdates([]Transaction{{Type: "Split", Date: day("2025-01-02")}})
	var unknown *UnknownTransactionTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("ComputeUpdates() error = %v, want an UnknownTransactionTypeError", err)
	}
	if unknown.Type != "Split" {
		t.Errorf("UnknownTransactionTypeError.Type = %q, want Split", unknown.Type)
	}
}

func TestComputeUpdates_Independent(t *testing.T) {
	if _, err := ComputeUpdates([]Transaction{NewDeposit(day("2025-01-01"), "USD", dec("1000"))}); err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}
	u, err := ComputeUpdates([]Transaction{NewDeposit(day("2025-01-01"), "EUR", dec("10"))})
	if err != nil {
		t.Fatalf("ComputeUpdates() error = %v", err)
	}
	if diff := cmp.Diff([]HoldingKey{"Cash:EUR"}, u.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}
