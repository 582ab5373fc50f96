package patient

import (
	"github.com/hms/hms/internal/platform/export"
)

// ExportMapping is the column layout for patient data exports.
var ExportMapping = export.Mapping{
	Columns: []export.Column{
		{Field: "id", Title: "Patient ID"},
		{Field: "name", Title: "Patient Name"},
		{Field: "phone_number", Title: "Patient Phone Number"},
		{Field: "date_of_birth", Title: "Date of Birth"},
		{Field: "age", Title: "Age"},
		{Field: "gender", Title: "Gender"},
		{Field: "address", Title: "Address"},
		{Field: "blood_group", Title: "Blood Group"},
		{Field: "allergies", Title: "Patient's Known Allergies"},
		{Field: "ongoing_medication", Title: "Already pescribed medication if any"},
	},
	Formatters: map[string]export.Formatter{
		"gender":      formatGender,
		"blood_group": formatBloodGroup,
	},
}

func formatGender(v interface{}) string {
	code, ok := v.(int)
	if !ok {
		return "-"
	}
	return GenderLabel(code)
}

func formatBloodGroup(v interface{}) string {
	switch val := v.(type) {
	case string:
		return BloodGroupLabel(val)
	case *string:
		if val == nil {
			return "-"
		}
		return BloodGroupLabel(*val)
	}
	return "-"
}

// ExportRecord flattens a patient into the field map the export engine reads.
func ExportRecord(p *Patient) map[string]interface{} {
	rec := map[string]interface{}{
		"id":     p.ID.String(),
		"name":   p.Name,
		"gender": p.Gender,
	}
	if p.PhoneNumber != nil {
		rec["phone_number"] = *p.PhoneNumber
	}
	if p.DateOfBirth != nil {
		rec["date_of_birth"] = p.DateOfBirth.Format("2006-01-02")
	}
	if p.Age != nil {
		rec["age"] = *p.Age
	}
	if p.Address != nil {
		rec["address"] = *p.Address
	}
	if p.BloodGroup != nil {
		rec["blood_group"] = *p.BloodGroup
	}
	if p.Allergies != nil {
		rec["allergies"] = *p.Allergies
	}
	if p.OngoingMedication != nil {
		rec["ongoing_medication"] = *p.OngoingMedication
	}
	return rec
}
