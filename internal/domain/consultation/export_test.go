package consultation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/export"
)

func TestExportMapping_Titles(t *testing.T) {
	want := []string{
		"Date of Consultation",
		"Date of Admission",
		"Date of Onset of Symptoms",
		"Symptoms at time of consultation",
		"Category",
		"Examination Details",
		"Suggestion",
	}
	got := ExportMapping.Titles()
	if len(got) != len(want) {
		t.Fatalf("expected %d titles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("title %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatCategory(t *testing.T) {
	if got := formatCategory("Mild"); got != "Category-A" {
		t.Errorf("expected Category-A, got %q", got)
	}
	if got := formatCategory("Severe"); got != "Category-C" {
		t.Errorf("expected Category-C, got %q", got)
	}
	if got := formatCategory("bogus"); got != "-" {
		t.Errorf("expected - for unknown code, got %q", got)
	}
	if got := formatCategory(nil); got != "-" {
		t.Errorf("expected - for nil, got %q", got)
	}
}

func TestFormatSuggestion(t *testing.T) {
	if got := formatSuggestion("R"); got != "REFERRAL" {
		t.Errorf("expected REFERRAL, got %q", got)
	}
	if got := formatSuggestion("DC"); got != "DOMICILIARY CARE" {
		t.Errorf("expected DOMICILIARY CARE, got %q", got)
	}
	if got := formatSuggestion("ZZ"); got != "-" {
		t.Errorf("expected - for unknown code, got %q", got)
	}
}

func TestFormatSymptoms(t *testing.T) {
	if got := formatSymptoms([]int{2, 4}); got != "FEVER, COUGH" {
		t.Errorf("expected FEVER, COUGH, got %q", got)
	}
	if got := formatSymptoms([]int(nil)); got != "-" {
		t.Errorf("expected - for empty symptoms, got %q", got)
	}
}

func TestWriteCSV_Consultations(t *testing.T) {
	onset := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	details := "stable, afebrile"
	cat := "Moderate"
	c := &Consultation{
		ID:                 uuid.New(),
		PatientID:          uuid.New(),
		FacilityID:         uuid.New(),
		Suggestion:         SuggestionAdmission,
		Symptoms:           []int{2, 5},
		SymptomsOnsetDate:  &onset,
		Category:           &cat,
		ExaminationDetails: &details,
		CreatedAt:          time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	err := export.WriteCSV(&buf, ExportMapping, []map[string]interface{}{ExportRecord(c)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Category-B") {
		t.Errorf("expected pretty category in row: %s", lines[1])
	}
	if !strings.Contains(lines[1], "ADMISSION") {
		t.Errorf("expected pretty suggestion in row: %s", lines[1])
	}
	if !strings.Contains(lines[1], "FEVER, BREATHLESSNESS") {
		t.Errorf("expected symptom labels in row: %s", lines[1])
	}
}

func TestWriteXLSX_Consultations(t *testing.T) {
	c := &Consultation{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		FacilityID: uuid.New(),
		Suggestion: SuggestionHomeIsolation,
		CreatedAt:  time.Now(),
	}

	var buf bytes.Buffer
	err := export.WriteXLSX(&buf, "Consultations", ExportMapping, []map[string]interface{}{ExportRecord(c)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected workbook bytes")
	}
}
