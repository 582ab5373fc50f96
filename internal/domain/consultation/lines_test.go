package consultation

import "testing"

func validLine() map[string]interface{} {
	return map[string]interface{}{
		"start_date": "2026-08-01",
		"type":       "Central Line",
		"site":       "Internal Jugular",
	}
}

func TestValidateLines_Conforming(t *testing.T) {
	line := validLine()
	line["other_type"] = "PICC"
	line["other_site"] = "Left Arm"
	if err := ValidateLines([]map[string]interface{}{line}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateLines_Empty(t *testing.T) {
	if err := ValidateLines(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLines([]map[string]interface{}{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateLines_MissingRequired(t *testing.T) {
	for _, field := range []string{"start_date", "type", "site"} {
		line := validLine()
		delete(line, field)
		if err := ValidateLines([]map[string]interface{}{line}); err == nil {
			t.Errorf("expected error for missing %s", field)
		}
	}
}

func TestValidateLines_ExtraProperty(t *testing.T) {
	line := validLine()
	line["inserted_by"] = "Dr. X"
	if err := ValidateLines([]map[string]interface{}{line}); err == nil {
		t.Error("expected error for unexpected property")
	}
}

func TestValidateLines_NonStringValue(t *testing.T) {
	line := validLine()
	line["site"] = 42
	if err := ValidateLines([]map[string]interface{}{line}); err == nil {
		t.Error("expected error for non-string site")
	}
}

func TestValidateLines_ReportsEntryIndex(t *testing.T) {
	bad := validLine()
	delete(bad, "type")
	err := ValidateLines([]map[string]interface{}{validLine(), bad})
	if err == nil {
		t.Fatal("expected error for second entry")
	}
}
