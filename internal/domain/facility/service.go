package facility

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound   = errors.New("facility not found")
	ErrReferenced = errors.New("facility has consultations referred to it")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, f *Facility) error {
	if err := validate(f); err != nil {
		return err
	}
	return s.repo.Create(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return f, err
}

func (s *Service) Update(ctx context.Context, f *Facility) error {
	if err := validate(f); err != nil {
		return err
	}
	if _, err := s.Get(ctx, f.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, f)
}

// Delete removes a facility unless consultations still name it as a
// referral target.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountReferrals(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d consultation(s)", ErrReferenced, n)
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Facility, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func validate(f *Facility) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("facility name is required")
	}
	return nil
}
