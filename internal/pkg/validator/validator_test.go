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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-04"); !ok {
		t.Error("IsValidDate(2024-03-04) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "04-03-2024", "2024/03/04", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidCompanyUsername(t *testing.T) {
	valid := []string{"acme", "acme-corp", "acme_corp.01", "abc"}
	invalid := []string{"ab", "acme corp", "acme!", ""}
	for _, u := range valid {
		if !IsValidCompanyUsername(u) {
			t.Errorf("IsValidCompanyUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidCompanyUsername(u) {
			t.Errorf("IsValidCompanyUsername(%q) = true, want false", u)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is invalid"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap()[name] = %q", m["name"])
	}
	if errs.Error() != "name: name is required; email: email is invalid" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
