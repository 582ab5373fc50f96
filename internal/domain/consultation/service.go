package consultation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("consultation not found")

// PatientLinker is implemented by the patient service so a new
// consultation can be recorded as the patient's most recent one.
type PatientLinker interface {
	SetLastConsultation(ctx context.Context, patientID uuid.UUID, consultationID *uuid.UUID) error
}

// TxRunner executes fn atomically. Repositories called inside fn resolve
// the same transaction through the context, so either every write in fn
// lands or none do.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo     Repository
	patients PatientLinker
	tx       TxRunner
}

func NewService(repo Repository, patients PatientLinker, tx TxRunner) *Service {
	return &Service{repo: repo, patients: patients, tx: tx}
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx(ctx, fn)
}

// Create stores the consultation and records it as the patient's most
// recent one in the same transaction, so a failed link leaves no row
// behind.
func (s *Service) Create(ctx context.Context, c *Consultation) error {
	if err := validate(c); err != nil {
		return err
	}
	return s.inTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, c); err != nil {
			return err
		}
		if s.patients == nil {
			return nil
		}
		return s.patients.SetLastConsultation(ctx, c.PatientID, &c.ID)
	})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *Service) Update(ctx context.Context, c *Consultation) error {
	if err := validate(c); err != nil {
		return err
	}
	if _, err := s.Get(ctx, c.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByFacility(ctx context.Context, facilityID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return s.repo.ListByFacility(ctx, facilityID, limit, offset)
}

// ListForExport returns all consultations, optionally scoped to one
// facility, without page bounds.
func (s *Service) ListForExport(ctx context.Context, facilityID *uuid.UUID) ([]*Consultation, error) {
	return s.repo.ListForExport(ctx, facilityID)
}

// Discharge closes the admission by stamping the discharge date. A zero
// date means now.
func (s *Service) Discharge(ctx context.Context, id uuid.UUID, date time.Time) (*Consultation, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	if c.AdmissionDate != nil && date.Before(*c.AdmissionDate) {
		return nil, fmt.Errorf("discharge date precedes admission date")
	}
	c.DischargeDate = &date
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(c *Consultation) error {
	if c.PatientID == uuid.Nil {
		return fmt.Errorf("patient reference is required")
	}
	if c.FacilityID == uuid.Nil {
		return fmt.Errorf("facility reference is required")
	}
	if _, ok := suggestionLabels[c.Suggestion]; !ok {
		return fmt.Errorf("invalid suggestion %q", c.Suggestion)
	}
	if c.Suggestion == SuggestionReferral && c.ReferredToID == nil {
		return fmt.Errorf("referral requires a referred-to facility")
	}
	if c.Admitted && c.AdmissionDate == nil {
		return fmt.Errorf("admission requires an admission date")
	}
	if c.Category != nil {
		if _, ok := categoryLabels[*c.Category]; !ok {
			return fmt.Errorf("invalid category %q", *c.Category)
		}
	}
	if c.AdmittedTo != nil {
		if _, ok := admitLabels[*c.AdmittedTo]; !ok {
			return fmt.Errorf("invalid admitted_to code %d", *c.AdmittedTo)
		}
	}
	for _, code := range c.Symptoms {
		if _, ok := symptomLabels[code]; !ok {
			return fmt.Errorf("invalid symptom code %d", code)
		}
	}
	if c.Height != nil && *c.Height < 0 {
		return fmt.Errorf("height must not be negative")
	}
	if c.Weight != nil && *c.Weight < 0 {
		return fmt.Errorf("weight must not be negative")
	}
	if c.CpkMB != nil && (*c.CpkMB < 0 || *c.CpkMB > 100) {
		return fmt.Errorf("cpk_mb must be between 0 and 100")
	}
	if c.CuffPressure != nil && *c.CuffPressure < 0 {
		return fmt.Errorf("cuff_pressure must not be negative")
	}
	if c.EttTt != nil && (*c.EttTt < 3 || *c.EttTt > 10) {
		return fmt.Errorf("ett_tt must be between 3 and 10")
	}
	return ValidateLines(c.Lines)
}
