package consultation

import (
	"strings"

	"github.com/hms/hms/internal/platform/export"
)

// ExportMapping is the fixed column layout for consultation data
// exports, in declaration order.
var ExportMapping = export.Mapping{
	Columns: []export.Column{
		{Field: "created_at", Title: "Date of Consultation"},
		{Field: "admission_date", Title: "Date of Admission"},
		{Field: "symptoms_onset_date", Title: "Date of Onset of Symptoms"},
		{Field: "symptoms", Title: "Symptoms at time of consultation"},
		{Field: "category", Title: "Category"},
		{Field: "examination_details", Title: "Examination Details"},
		{Field: "suggestion", Title: "Suggestion"},
	},
	Formatters: map[string]export.Formatter{
		"category":   formatCategory,
		"suggestion": formatSuggestion,
		"symptoms":   formatSymptoms,
	},
}

func formatCategory(v interface{}) string {
	code, ok := v.(string)
	if !ok {
		return "-"
	}
	return CategoryLabel(code)
}

func formatSuggestion(v interface{}) string {
	code, ok := v.(string)
	if !ok {
		return "-"
	}
	return SuggestionLabel(code)
}

func formatSymptoms(v interface{}) string {
	codes, ok := v.([]int)
	if !ok || len(codes) == 0 {
		return "-"
	}
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = SymptomLabel(code)
	}
	return strings.Join(labels, ", ")
}

// ExportRecord flattens a consultation into the field map the export
// engine reads.
func ExportRecord(c *Consultation) map[string]interface{} {
	rec := map[string]interface{}{
		"created_at": c.CreatedAt,
		"symptoms":   c.Symptoms,
	}
	if c.AdmissionDate != nil {
		rec["admission_date"] = *c.AdmissionDate
	}
	if c.SymptomsOnsetDate != nil {
		rec["symptoms_onset_date"] = *c.SymptomsOnsetDate
	}
	if c.Category != nil {
		rec["category"] = *c.Category
	}
	if c.ExaminationDetails != nil {
		rec["examination_details"] = *c.ExaminationDetails
	}
	rec["suggestion"] = c.Suggestion
	return rec
}
