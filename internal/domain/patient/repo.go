package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	ListByFacility(ctx context.Context, facilityID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	ListForExport(ctx context.Context) ([]*Patient, error)
	SetLastConsultation(ctx context.Context, id uuid.UUID, consultationID *uuid.UUID) error
}
