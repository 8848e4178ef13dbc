package profile

import "testing"

func TestValidate(t *testing.T) {
	p := &Profile{Name: "Ada", Gender: Female}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEmptyName(t *testing.T) {
	p := &Profile{Name: "   ", Gender: Other}
	if err := p.Validate(); err != ErrNoName {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender(" Male ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != Male {
		t.Fatalf("unexpected gender: %s", g)
	}

	if _, err := ParseGender("unknown"); err == nil {
		t.Fatalf("expected error for unknown gender")
	}
}
