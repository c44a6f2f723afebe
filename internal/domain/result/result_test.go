package result

import "testing"

func TestOkCarriesValue(t *testing.T) {
	r := Ok(42)
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatal("expected successful result")
	}
	if r.Value() != 42 {
		t.Fatalf("unexpected value %d", r.Value())
	}
	if len(r.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", r.Errors())
	}
}

func TestFailCarriesMessage(t *testing.T) {
	r := Fail[string]("No orders found.")
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatal("expected failed result")
	}
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Message != "No orders found." {
		t.Fatalf("unexpected errors %v", errs)
	}
	if errs[0].Reason != nil {
		t.Fatalf("expected no reason, got %+v", errs[0].Reason)
	}
}

func TestFailWithPreservesOrderAndReasons(t *testing.T) {
	first := Error{Message: "first"}.WithReason(ReasonNotFound, "no such row")
	second := Error{Message: "second"}

	r := FailWith[Void](first, second)
	errs := r.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %d", len(errs))
	}
	if errs[0].Message != "first" || errs[1].Message != "second" {
		t.Fatalf("error order not preserved: %v", errs)
	}
	if errs[0].Reason == nil || errs[0].Reason.Name != ReasonNotFound || errs[0].Reason.Description != "no such row" {
		t.Fatalf("unexpected reason %+v", errs[0].Reason)
	}
}

func TestWithReasonDoesNotMutateOriginal(t *testing.T) {
	base := Error{Message: "missing"}
	derived := base.WithReason(ReasonNotFound, "gone")
	if base.Reason != nil {
		t.Fatalf("base error mutated: %+v", base.Reason)
	}
	if derived.Reason == nil {
		t.Fatal("derived error lost its reason")
	}
}

func TestOkVoid(t *testing.T) {
	r := OkVoid()
	if !r.IsSuccess() {
		t.Fatal("expected success")
	}
}
