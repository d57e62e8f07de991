package dialog

import "testing"

func TestValidDate(t *testing.T) {
	valid := []string{"2025-03-11", "2024-12-31", "2025-99-99"} // календарность не проверяется
	for _, d := range valid {
		if !validDate(d) {
			t.Errorf("Expected %q to be structurally valid", d)
		}
	}

	invalid := []string{"", "2025-3-11", "11.03.2025", "2025-03-111", "2025:03:11"}
	for _, d := range invalid {
		if validDate(d) {
			t.Errorf("Expected %q to be invalid", d)
		}
	}
}

func TestValidName(t *testing.T) {
	if validName("O") {
		t.Error("Single-character name must be rejected")
	}
	if validName("Ї") {
		t.Error("Single multibyte character must be rejected")
	}
	if !validName("Ол") {
		t.Error("Two-character name must be accepted")
	}
	if !validName("Olena") {
		t.Error("Longer name must be accepted")
	}
}

func TestValidPhone(t *testing.T) {
	accept := []string{"+380991234567", "+1"}
	for _, p := range accept {
		if !validPhone(normalizePhone(p)) {
			t.Errorf("Expected %q to be accepted", p)
		}
	}

	reject := []string{"380991234567", "+38099abc", "+", "", "++380991234567"}
	for _, p := range reject {
		if validPhone(normalizePhone(p)) {
			t.Errorf("Expected %q to be rejected", p)
		}
	}

	if !validPhone(normalizePhone("+380 99 123 45 67")) {
		t.Error("Spaces must be stripped before validation")
	}
}
