package consultation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -- Mock Repository --

type mockRepo struct {
	consultations map[uuid.UUID]*Consultation
}

func newMockRepo() *mockRepo {
	return &mockRepo{consultations: make(map[uuid.UUID]*Consultation)}
}

func (m *mockRepo) Create(_ context.Context, c *Consultation) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	m.consultations[c.ID] = c
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Consultation, error) {
	c, ok := m.consultations[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockRepo) Update(_ context.Context, c *Consultation) error {
	m.consultations[c.ID] = c
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.consultations, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Consultation, int, error) {
	var result []*Consultation
	for _, c := range m.consultations {
		result = append(result, c)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var result []*Consultation
	for _, c := range m.consultations {
		if c.PatientID == patientID {
			result = append(result, c)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListByFacility(_ context.Context, facilityID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	var result []*Consultation
	for _, c := range m.consultations {
		if c.FacilityID == facilityID {
			result = append(result, c)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ListForExport(_ context.Context, facilityID *uuid.UUID) ([]*Consultation, error) {
	var result []*Consultation
	for _, c := range m.consultations {
		if facilityID == nil || c.FacilityID == *facilityID {
			result = append(result, c)
		}
	}
	return result, nil
}

// runTx mimics transaction semantics for the in-memory store: when fn
// fails none of its writes survive.
func (m *mockRepo) runTx(ctx context.Context, fn func(context.Context) error) error {
	snapshot := make(map[uuid.UUID]*Consultation, len(m.consultations))
	for id, c := range m.consultations {
		snapshot[id] = c
	}
	if err := fn(ctx); err != nil {
		m.consultations = snapshot
		return err
	}
	return nil
}

type mockLinker struct {
	lastConsultation map[uuid.UUID]uuid.UUID
}

func newMockLinker() *mockLinker {
	return &mockLinker{lastConsultation: make(map[uuid.UUID]uuid.UUID)}
}

func (m *mockLinker) SetLastConsultation(_ context.Context, patientID uuid.UUID, consultationID *uuid.UUID) error {
	if consultationID == nil {
		delete(m.lastConsultation, patientID)
		return nil
	}
	m.lastConsultation[patientID] = *consultationID
	return nil
}

type failingLinker struct{}

func (failingLinker) SetLastConsultation(context.Context, uuid.UUID, *uuid.UUID) error {
	return errors.New("patient unavailable")
}

// -- Tests --

func newTestService() *Service {
	repo := newMockRepo()
	return NewService(repo, newMockLinker(), repo.runTx)
}

func validConsultation() *Consultation {
	return &Consultation{
		PatientID:  uuid.New(),
		FacilityID: uuid.New(),
		Suggestion: SuggestionHomeIsolation,
	}
}

func TestCreateConsultation(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateConsultation_LinksPatient(t *testing.T) {
	repo := newMockRepo()
	linker := newMockLinker()
	svc := NewService(repo, linker, repo.runTx)

	c := validConsultation()
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if linker.lastConsultation[c.PatientID] != c.ID {
		t.Error("expected patient's last consultation to be updated")
	}
}

func TestCreateConsultation_FailedLinkDiscardsRow(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, failingLinker{}, repo.runTx)

	c := validConsultation()
	if err := svc.Create(context.Background(), c); err == nil {
		t.Fatal("expected error from failed patient link")
	}
	if n := len(repo.consultations); n != 0 {
		t.Errorf("expected no consultations after rollback, got %d", n)
	}
}

func TestCreateConsultation_PatientRequired(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.PatientID = uuid.Nil
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for missing patient reference")
	}
}

func TestCreateConsultation_FacilityRequired(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.FacilityID = uuid.Nil
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for missing facility reference")
	}
}

func TestCreateConsultation_InvalidSuggestion(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.Suggestion = "XX"
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for invalid suggestion")
	}
}

func TestCreateConsultation_ReferralNeedsTarget(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.Suggestion = SuggestionReferral
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for referral without target facility")
	}

	target := uuid.New()
	c.ReferredToID = &target
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateConsultation_AdmittedNeedsDate(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.Suggestion = SuggestionAdmission
	c.Admitted = true
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for admission without admission date")
	}

	now := time.Now()
	c.AdmissionDate = &now
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateConsultation_NumericBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Consultation)
	}{
		{"negative height", func(c *Consultation) { h := -1.0; c.Height = &h }},
		{"negative weight", func(c *Consultation) { w := -0.5; c.Weight = &w }},
		{"negative cuff pressure", func(c *Consultation) { p := -1; c.CuffPressure = &p }},
		{"cpk_mb above 100", func(c *Consultation) { v := 101; c.CpkMB = &v }},
		{"cpk_mb below 0", func(c *Consultation) { v := -1; c.CpkMB = &v }},
		{"ett_tt above 10", func(c *Consultation) { v := 11; c.EttTt = &v }},
		{"ett_tt below 3", func(c *Consultation) { v := 2; c.EttTt = &v }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService()
			c := validConsultation()
			tc.mutate(c)
			if err := svc.Create(context.Background(), c); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateConsultation_BoundaryValues(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	cpk := 100
	ett := 3
	height := 0.0
	c.CpkMB = &cpk
	c.EttTt = &ett
	c.Height = &height
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("boundary values should pass: %v", err)
	}
}

func TestCreateConsultation_InvalidCategory(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	cat := "Critical"
	c.Category = &cat
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCreateConsultation_InvalidAdmittedTo(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	ward := 99
	c.AdmittedTo = &ward
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for unknown ward code")
	}
}

func TestCreateConsultation_InvalidSymptom(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.Symptoms = []int{2, 99}
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error for unknown symptom code")
	}
}

func TestUpdateConsultation_NotFound(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	c.ID = uuid.New()
	if err := svc.Update(context.Background(), c); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteConsultation(t *testing.T) {
	svc := newTestService()

	c := validConsultation()
	svc.Create(context.Background(), c)

	if err := svc.Delete(context.Background(), c.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), c.ID); err == nil {
		t.Error("expected error after deletion")
	}
}

func TestDischarge(t *testing.T) {
	svc := newTestService()

	admitted := time.Now().Add(-48 * time.Hour)
	c := validConsultation()
	c.Suggestion = SuggestionAdmission
	c.Admitted = true
	c.AdmissionDate = &admitted
	svc.Create(context.Background(), c)

	out, err := svc.Discharge(context.Background(), c.ID, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.DischargeDate == nil {
		t.Fatal("expected discharge date to be set")
	}
}

func TestDischarge_BeforeAdmission(t *testing.T) {
	svc := newTestService()

	admitted := time.Now()
	c := validConsultation()
	c.Suggestion = SuggestionAdmission
	c.Admitted = true
	c.AdmissionDate = &admitted
	svc.Create(context.Background(), c)

	_, err := svc.Discharge(context.Background(), c.ID, admitted.Add(-time.Hour))
	if err == nil {
		t.Error("expected error for discharge before admission")
	}
}

func TestListConsultationsByPatient(t *testing.T) {
	svc := newTestService()

	patientID := uuid.New()
	c1 := validConsultation()
	c1.PatientID = patientID
	c2 := validConsultation()
	c2.PatientID = patientID
	svc.Create(context.Background(), c1)
	svc.Create(context.Background(), c2)
	svc.Create(context.Background(), validConsultation())

	_, total, err := svc.ListByPatient(context.Background(), patientID, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2, got %d", total)
	}
}
