package consultation

import (
	"time"

	"github.com/google/uuid"
)

// Consultation is one clinical encounter between a patient and a
// facility, from first examination through discharge.
type Consultation struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	FacilityID uuid.UUID `db:"facility_id" json:"facility_id"`

	IPNo *string `db:"ip_no" json:"ip_no,omitempty"`

	// Clinical findings
	Diagnosis            *string                `db:"diagnosis" json:"diagnosis,omitempty"`
	Symptoms             []int                  `db:"symptoms" json:"symptoms,omitempty"`
	OtherSymptoms        *string                `db:"other_symptoms" json:"other_symptoms,omitempty"`
	SymptomsOnsetDate    *time.Time             `db:"symptoms_onset_date" json:"symptoms_onset_date,omitempty"`
	Category             *string                `db:"category" json:"category,omitempty"`
	ExaminationDetails   *string                `db:"examination_details" json:"examination_details,omitempty"`
	ExistingMedication   *string                `db:"existing_medication" json:"existing_medication,omitempty"`
	PrescribedMedication *string                `db:"prescribed_medication" json:"prescribed_medication,omitempty"`
	ConsultationNotes    *string                `db:"consultation_notes" json:"consultation_notes,omitempty"`
	CourseInFacility     *string                `db:"course_in_facility" json:"course_in_facility,omitempty"`
	DischargeAdvice      map[string]interface{} `db:"discharge_advice" json:"discharge_advice"`
	Prescriptions        map[string]interface{} `db:"prescriptions" json:"prescriptions"`

	// Disposition and admission lifecycle
	Suggestion    string     `db:"suggestion" json:"suggestion"`
	ReferredToID  *uuid.UUID `db:"referred_to_id" json:"referred_to_id,omitempty"`
	Admitted      bool       `db:"admitted" json:"admitted"`
	AdmittedTo    *int       `db:"admitted_to" json:"admitted_to,omitempty"`
	AdmissionDate *time.Time `db:"admission_date" json:"admission_date,omitempty"`
	DischargeDate *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	BedNumber     *string    `db:"bed_number" json:"bed_number,omitempty"`

	// Scheme and telemedicine flags
	IsKasp                    bool       `db:"is_kasp" json:"is_kasp"`
	KaspEnabledDate           *time.Time `db:"kasp_enabled_date" json:"kasp_enabled_date,omitempty"`
	IsTelemedicine            bool       `db:"is_telemedicine" json:"is_telemedicine"`
	LastUpdatedByTelemedicine bool       `db:"last_updated_by_telemedicine" json:"last_updated_by_telemedicine"`

	// User references, subjects from auth tokens
	AssignedToID   *uuid.UUID `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	CreatedByID    *uuid.UUID `db:"created_by_id" json:"created_by_id,omitempty"`
	LastEditedByID *uuid.UUID `db:"last_edited_by_id" json:"last_edited_by_id,omitempty"`
	VerifiedBy     *string    `db:"verified_by" json:"verified_by,omitempty"`

	// Physical information
	Height *float64 `db:"height" json:"height,omitempty"`
	Weight *float64 `db:"weight" json:"weight,omitempty"`

	// ICU information
	CpkMB              *int    `db:"cpk_mb" json:"cpk_mb,omitempty"`
	Operation          *string `db:"operation" json:"operation,omitempty"`
	SpecialInstruction *string `db:"special_instruction" json:"special_instruction,omitempty"`

	// Intubation details
	IntubationStartDate *time.Time               `db:"intubation_start_date" json:"intubation_start_date,omitempty"`
	IntubationEndDate   *time.Time               `db:"intubation_end_date" json:"intubation_end_date,omitempty"`
	CuffPressure        *int                     `db:"cuff_pressure" json:"cuff_pressure,omitempty"`
	EttTt               *int                     `db:"ett_tt" json:"ett_tt,omitempty"`
	IntubationHistory   []map[string]interface{} `db:"intubation_history" json:"intubation_history"`

	// Lines and catheters
	Lines []map[string]interface{} `db:"lines" json:"lines"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
