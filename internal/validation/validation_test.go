package validation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/commerce-api/internal/apperr"
)

type line struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type payload struct {
	Name  string          `json:"name"  validate:"min=3,max=80"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
	Lines []line          `json:"lines" validate:"min=1,dive"`
}

type priced struct {
	Price decimal.Decimal `json:"price" validate:"gt=0,money"`
}

func (priced) ValidationMessages() map[string]string {
	return map[string]string{"price": "price must be positive", "price.money": "bad amount"}
}

type worded struct {
	Name string `json:"name" validate:"min=3"`
}

func (worded) ValidationMessages() map[string]string {
	return map[string]string{"name": "name is too short"}
}

func fieldsOf(t *testing.T, err error) []apperr.FieldMessage {
	t.Helper()
	ae, ok := err.(*apperr.Error)
	if !ok || ae.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %T %v", err, err)
	}
	return ae.Fields
}

func TestStruct_Valid(t *testing.T) {
	p := payload{Name: "Mouse", Price: decimal.RequireFromString("10.50"), Lines: []line{{Quantity: 1}}}
	if err := Struct(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_ReportsFieldsInDeclarationOrder(t *testing.T) {
	p := payload{Name: "ab", Price: decimal.Zero, Lines: nil}
	got := fieldsOf(t, Struct(p))
	if len(got) != 3 {
		t.Fatalf("len=%d fields=%+v", len(got), got)
	}
	want := []string{"name", "price", "lines"}
	for i, w := range want {
		if got[i].FieldName != w {
			t.Fatalf("fields[%d]=%q, expected %q", i, got[i].FieldName, w)
		}
	}
	if got[0].Message != "must have at least 3 characters" {
		t.Fatalf("message=%q", got[0].Message)
	}
}

func TestStruct_NegativeDecimal(t *testing.T) {
	p := payload{Name: "Mouse", Price: decimal.RequireFromString("-2"), Lines: []line{{Quantity: 1}}}
	got := fieldsOf(t, Struct(p))
	if len(got) != 1 || got[0].FieldName != "price" {
		t.Fatalf("fields=%+v", got)
	}
}

func TestStruct_NestedPath(t *testing.T) {
	p := payload{Name: "Mouse", Price: decimal.NewFromInt(1), Lines: []line{{Quantity: 1}, {Quantity: 0}}}
	got := fieldsOf(t, Struct(p))
	if len(got) != 1 || got[0].FieldName != "lines[1].quantity" {
		t.Fatalf("fields=%+v", got)
	}
}

func TestStruct_MessageOverride(t *testing.T) {
	got := fieldsOf(t, Struct(worded{Name: "x"}))
	if got[0].Message != "name is too short" {
		t.Fatalf("message=%q", got[0].Message)
	}
}

func TestStruct_Money(t *testing.T) {
	for _, ok := range []string{"0.01", "10.5", "10.50", "10.500", "9999999999.99"} {
		if err := Struct(priced{Price: decimal.RequireFromString(ok)}); err != nil {
			t.Fatalf("%s: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"0.001", "10.555", "10000000000", "99999999999"} {
		got := fieldsOf(t, Struct(priced{Price: decimal.RequireFromString(bad)}))
		if len(got) != 1 || got[0].FieldName != "price" || got[0].Message != "bad amount" {
			t.Fatalf("%s: fields=%+v", bad, got)
		}
	}
	got := fieldsOf(t, Struct(priced{Price: decimal.Zero}))
	if got[0].Message != "price must be positive" {
		t.Fatalf("zero price message=%q", got[0].Message)
	}
}
