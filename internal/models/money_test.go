package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	amount, _ := decimal.NewFromString("9.9")
	b, err := json.Marshal(NewMoneyFromDecimal(amount))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"9.90"` {
		t.Fatalf(`want "9.90" got %s`, b)
	}
}

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"12.345"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "12.35" {
		t.Fatalf("want 12.35 got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`7.5`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "7.50" {
		t.Fatalf("want 7.50 got %s", fromNumber.String())
	}
}

func TestMoneyMulRoundsHalfUp(t *testing.T) {
	// 29.97 * 0.08 = 2.3976 → 2.40
	subtotal, _ := decimal.NewFromString("29.97")
	rate, _ := decimal.NewFromString("0.08")
	tax := NewMoneyFromDecimal(subtotal).Mul(rate)
	if tax.String() != "2.40" {
		t.Fatalf("want 2.40 got %s", tax.String())
	}
}

func TestMoneyAdd(t *testing.T) {
	subtotal, _ := decimal.NewFromString("29.97")
	tax, _ := decimal.NewFromString("2.40")
	grand := NewMoneyFromDecimal(subtotal).Add(NewMoneyFromDecimal(tax))
	if grand.String() != "32.37" {
		t.Fatalf("want 32.37 got %s", grand.String())
	}
}
