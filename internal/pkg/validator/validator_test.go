package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPIN(t *testing.T) {
	valid := []string{"0000", "1234", "9999"}
	invalid := []string{"", "123", "12345", "12a4", " 123", "１２３４"}
	for _, s := range valid {
		if !IsValidPIN(s) {
			t.Errorf("IsValidPIN(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPIN(s) {
			t.Errorf("IsValidPIN(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2025-06"); !ok {
		t.Errorf("IsValidMonth(%q) = false, want true", "2025-06")
	}
	for _, s := range []string{"2025-13", "2025-6-01", "june"} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "wage", Message: "wage must not be negative"},
	}
	if errs.Error() != "name: name is required; wage: wage must not be negative" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["wage"] != "wage must not be negative" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
	if errs.First() != "name is required" {
		t.Errorf("unexpected First(): %q", errs.First())
	}
}
