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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "budi.santoso", "user_name-1", "a1b"}
	invalid := []string{"ab", "", "user name", "user@name", "x"}
	for _, username := range valid {
		if !IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = false, want true", username)
		}
	}
	for _, username := range invalid {
		if IsValidUsername(username) {
			t.Errorf("IsValidUsername(%q) = true, want false", username)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-01-31", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"31-01-2025", false},
		{"", false},
	}
	for _, c := range cases {
		if _, ok := IsValidDate(c.input); ok != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month int
		year  int
		want  bool
	}{
		{1, 2025, true},
		{12, 2025, true},
		{0, 2025, false},
		{13, 2025, false},
		{6, 0, false},
		{6, -1, false},
	}
	for _, c := range cases {
		got := IsValidPeriod(c.month, c.year)
		if got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month is invalid"},
		{Field: "date", Message: "date is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["month"] != "month is invalid" {
		t.Errorf("ToMap()[month] = %q", m["month"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
