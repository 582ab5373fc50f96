package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the person a consultation belongs to.
type Patient struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Age                *int       `db:"age" json:"age,omitempty"`
	Gender             int        `db:"gender" json:"gender"`
	PhoneNumber        *string    `db:"phone_number" json:"phone_number,omitempty"`
	Address            *string    `db:"address" json:"address,omitempty"`
	DateOfBirth        *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	BloodGroup         *string    `db:"blood_group" json:"blood_group,omitempty"`
	FacilityID         *uuid.UUID `db:"facility_id" json:"facility_id,omitempty"`
	Allergies          *string    `db:"allergies" json:"allergies,omitempty"`
	OngoingMedication  *string    `db:"ongoing_medication" json:"ongoing_medication,omitempty"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	LastConsultationID *uuid.UUID `db:"last_consultation_id" json:"last_consultation_id,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	GenderMale      = 1
	GenderFemale    = 2
	GenderNonBinary = 3
)

var genderLabels = map[int]string{
	GenderMale:      "Male",
	GenderFemale:    "Female",
	GenderNonBinary: "Non-binary",
}

var bloodGroups = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
	"UNK": true,
}

// GenderLabel returns the display name for a gender code, "-" when unknown.
func GenderLabel(code int) string {
	if label, ok := genderLabels[code]; ok {
		return label
	}
	return "-"
}

// BloodGroupLabel spells out the UNK code; valid groups print as themselves.
func BloodGroupLabel(code string) string {
	if code == "UNK" {
		return "Unknown"
	}
	if bloodGroups[code] {
		return code
	}
	return "-"
}
