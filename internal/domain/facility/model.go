package facility

import (
	"time"

	"github.com/google/uuid"
)

// Facility maps to the facility table. Consultations happen at a facility
// and may refer the patient on to another one.
type Facility struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	FacilityType *string   `db:"facility_type" json:"facility_type,omitempty"`
	Address      *string   `db:"address" json:"address,omitempty"`
	District     *string   `db:"district" json:"district,omitempty"`
	State        *string   `db:"state" json:"state,omitempty"`
	PhoneNumber  *string   `db:"phone_number" json:"phone_number,omitempty"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
