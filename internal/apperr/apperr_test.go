package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_WrappedAndPlain(t *testing.T) {
	cause := errors.New("row missing")
	err := fmt.Errorf("load: %w", NotFound("product not found", cause))

	if KindOf(err) != KindNotFound {
		t.Fatalf("kind=%v, expected not found", KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause must stay reachable through Unwrap")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Fatalf("plain errors must be internal")
	}
	if Is(nil, KindInternal) {
		t.Fatalf("nil is never an app error")
	}
}

func TestValidation_KeepsFieldOrder(t *testing.T) {
	err := Validation(
		FieldMessage{FieldName: "name", Message: "a"},
		FieldMessage{FieldName: "price", Message: "b"},
	)
	if err.Kind != KindValidation || len(err.Fields) != 2 || err.Fields[0].FieldName != "name" {
		t.Fatalf("unexpected validation error: %+v", err)
	}
}
