package validator

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSet(t *testing.T) {
	results, err := NewValidator([]string{"1fro", "2spd", "3egw"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results.Valid() {
		t.Fatalf("expected a valid set, got errors %v", results.Errors)
	}
	if len(results.Sets) != 1 {
		t.Errorf("expected 1 set, got %d", len(results.Sets))
	}
}

func TestValidateSetViolations(t *testing.T) {
	results, err := NewValidator([]string{"1fro", "2spd", "3erd"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"color: two the same and one different",
		"shape: two the same and one different",
	}
	if len(results.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), results.Errors)
	}
	for i, msg := range want {
		if results.Errors[i] != msg {
			t.Errorf("error %d: expected %q, got %q", i, msg, results.Errors[i])
		}
	}
	if len(results.Sets) != 0 {
		t.Errorf("expected no sets, got %v", results.Sets)
	}
}

func TestValidateParseErrors(t *testing.T) {
	results, err := NewValidator([]string{"1fro", "2sp", "3egw", "1frx"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %v", results.Errors)
	}
	if !strings.HasPrefix(results.Errors[0], "card 2:") || !strings.Contains(results.Errors[0], "missing shape") {
		t.Errorf("unexpected first error: %q", results.Errors[0])
	}
	if !strings.HasPrefix(results.Errors[1], "card 4:") {
		t.Errorf("unexpected second error: %q", results.Errors[1])
	}
	if !strings.HasPrefix(results.Errors[2], "only 2 valid card(s)") {
		t.Errorf("unexpected third error: %q", results.Errors[2])
	}
}

func TestValidateDuplicates(t *testing.T) {
	results, err := NewValidator([]string{"1fro", "o,r,f,1", "3egw"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results.Valid() {
		t.Fatal("expected duplicate card to be reported")
	}
	if !strings.HasPrefix(results.Errors[0], "duplicate card: 1fro") {
		t.Errorf("unexpected error: %q", results.Errors[0])
	}
}

func TestValidateSpread(t *testing.T) {
	results, err := NewValidator([]string{"1fro", "2spd", "1sro", "3egw", "1ero"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results.Valid() || len(results.Warnings) != 0 {
		t.Fatalf("unexpected report: %+v", results)
	}
	if len(results.Sets) != 2 {
		t.Errorf("expected 2 sets, got %d", len(results.Sets))
	}

	results, err = NewValidator([]string{"1fro", "1sro", "2ero", "2fro"}).Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results.Warnings) != 1 || results.Warnings[0] != "spread contains no set" {
		t.Errorf("expected a no-set warning, got %v", results.Warnings)
	}
}

func TestValidateInputCount(t *testing.T) {
	for _, inputs := range [][]string{nil, {"1fro"}, {"1fro", "2spd"}} {
		_, err := NewValidator(inputs).Validate()
		if !errors.Is(err, ErrInputCount) {
			t.Errorf("%v: expected ErrInputCount, got %v", inputs, err)
		}
	}
}
