package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("patient not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	if _, err := s.Get(ctx, p.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

// Delete removes the patient; their consultations go with them.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByFacility(ctx context.Context, facilityID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.repo.ListByFacility(ctx, facilityID, limit, offset)
}

// ListForExport returns all patients without page bounds.
func (s *Service) ListForExport(ctx context.Context) ([]*Patient, error) {
	return s.repo.ListForExport(ctx)
}

// SetLastConsultation records the patient's most recent consultation so
// exports and listings can surface it without a join per row.
func (s *Service) SetLastConsultation(ctx context.Context, id uuid.UUID, consultationID *uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.SetLastConsultation(ctx, id, consultationID)
}

func validate(p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("patient name is required")
	}
	if _, ok := genderLabels[p.Gender]; !ok {
		return fmt.Errorf("invalid gender code %d", p.Gender)
	}
	if p.BloodGroup != nil && !bloodGroups[*p.BloodGroup] {
		return fmt.Errorf("invalid blood group %q", *p.BloodGroup)
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	return nil
}
