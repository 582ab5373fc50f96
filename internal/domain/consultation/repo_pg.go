package consultation

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const consultationCols = `id, patient_id, facility_id, ip_no, diagnosis, symptoms, other_symptoms,
	symptoms_onset_date, category, examination_details, existing_medication, prescribed_medication,
	consultation_notes, course_in_facility, discharge_advice, prescriptions, suggestion,
	referred_to_id, admitted, admitted_to, admission_date, discharge_date, bed_number,
	is_kasp, kasp_enabled_date, is_telemedicine, last_updated_by_telemedicine,
	assigned_to_id, created_by_id, last_edited_by_id, verified_by, height, weight, cpk_mb,
	operation, special_instruction, intubation_start_date, intubation_end_date,
	cuff_pressure, ett_tt, intubation_history, lines, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, c *Consultation) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO consultation (
			id, patient_id, facility_id, ip_no, diagnosis, symptoms, other_symptoms,
			symptoms_onset_date, category, examination_details, existing_medication,
			prescribed_medication, consultation_notes, course_in_facility, discharge_advice,
			prescriptions, suggestion, referred_to_id, admitted, admitted_to, admission_date,
			discharge_date, bed_number, is_kasp, kasp_enabled_date, is_telemedicine,
			last_updated_by_telemedicine, assigned_to_id, created_by_id, last_edited_by_id,
			verified_by, height, weight, cpk_mb, operation, special_instruction,
			intubation_start_date, intubation_end_date, cuff_pressure, ett_tt,
			intubation_history, lines
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,
			$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38,$39,$40,$41,$42
		)`,
		c.ID, c.PatientID, c.FacilityID, c.IPNo, c.Diagnosis, c.Symptoms, c.OtherSymptoms,
		c.SymptomsOnsetDate, c.Category, c.ExaminationDetails, c.ExistingMedication,
		c.PrescribedMedication, c.ConsultationNotes, c.CourseInFacility, c.DischargeAdvice,
		c.Prescriptions, c.Suggestion, c.ReferredToID, c.Admitted, c.AdmittedTo, c.AdmissionDate,
		c.DischargeDate, c.BedNumber, c.IsKasp, c.KaspEnabledDate, c.IsTelemedicine,
		c.LastUpdatedByTelemedicine, c.AssignedToID, c.CreatedByID, c.LastEditedByID,
		c.VerifiedBy, c.Height, c.Weight, c.CpkMB, c.Operation, c.SpecialInstruction,
		c.IntubationStartDate, c.IntubationEndDate, c.CuffPressure, c.EttTt,
		c.IntubationHistory, c.Lines,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Consultation, error) {
	return scanConsultation(r.conn(ctx).QueryRow(ctx,
		`SELECT `+consultationCols+` FROM consultation WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, c *Consultation) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE consultation SET
			patient_id=$2, facility_id=$3, ip_no=$4, diagnosis=$5, symptoms=$6,
			other_symptoms=$7, symptoms_onset_date=$8, category=$9, examination_details=$10,
			existing_medication=$11, prescribed_medication=$12, consultation_notes=$13,
			course_in_facility=$14, discharge_advice=$15, prescriptions=$16, suggestion=$17,
			referred_to_id=$18, admitted=$19, admitted_to=$20, admission_date=$21,
			discharge_date=$22, bed_number=$23, is_kasp=$24, kasp_enabled_date=$25,
			is_telemedicine=$26, last_updated_by_telemedicine=$27, assigned_to_id=$28,
			last_edited_by_id=$29, verified_by=$30, height=$31, weight=$32, cpk_mb=$33,
			operation=$34, special_instruction=$35, intubation_start_date=$36,
			intubation_end_date=$37, cuff_pressure=$38, ett_tt=$39, intubation_history=$40,
			lines=$41, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.PatientID, c.FacilityID, c.IPNo, c.Diagnosis, c.Symptoms,
		c.OtherSymptoms, c.SymptomsOnsetDate, c.Category, c.ExaminationDetails,
		c.ExistingMedication, c.PrescribedMedication, c.ConsultationNotes,
		c.CourseInFacility, c.DischargeAdvice, c.Prescriptions, c.Suggestion,
		c.ReferredToID, c.Admitted, c.AdmittedTo, c.AdmissionDate,
		c.DischargeDate, c.BedNumber, c.IsKasp, c.KaspEnabledDate,
		c.IsTelemedicine, c.LastUpdatedByTelemedicine, c.AssignedToID,
		c.LastEditedByID, c.VerifiedBy, c.Height, c.Weight, c.CpkMB,
		c.Operation, c.SpecialInstruction, c.IntubationStartDate,
		c.IntubationEndDate, c.CuffPressure, c.EttTt, c.IntubationHistory,
		c.Lines,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM consultation WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Consultation, int, error) {
	return r.list(ctx, ``, nil, limit, offset)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return r.list(ctx, `WHERE patient_id = $1`, []interface{}{patientID}, limit, offset)
}

func (r *repoPG) ListByFacility(ctx context.Context, facilityID uuid.UUID, limit, offset int) ([]*Consultation, int, error) {
	return r.list(ctx, `WHERE facility_id = $1`, []interface{}{facilityID}, limit, offset)
}

// ListForExport returns every matching row in consultation order; exports
// are not paginated.
func (r *repoPG) ListForExport(ctx context.Context, facilityID *uuid.UUID) ([]*Consultation, error) {
	where := ``
	var args []interface{}
	if facilityID != nil {
		where = `WHERE facility_id = $1`
		args = append(args, *facilityID)
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+consultationCols+` FROM consultation `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectConsultations(rows)
}

func (r *repoPG) list(ctx context.Context, where string, args []interface{}, limit, offset int) ([]*Consultation, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM consultation `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	n := len(args)
	query := `SELECT ` + consultationCols + ` FROM consultation ` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(n+1) + ` OFFSET $` + strconv.Itoa(n+2)
	rows, err := r.conn(ctx).Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	consultations, err := collectConsultations(rows)
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func collectConsultations(rows pgx.Rows) ([]*Consultation, error) {
	var consultations []*Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	return consultations, rows.Err()
}

func scanConsultation(row pgx.Row) (*Consultation, error) {
	var c Consultation
	err := row.Scan(
		&c.ID, &c.PatientID, &c.FacilityID, &c.IPNo, &c.Diagnosis, &c.Symptoms,
		&c.OtherSymptoms, &c.SymptomsOnsetDate, &c.Category, &c.ExaminationDetails,
		&c.ExistingMedication, &c.PrescribedMedication, &c.ConsultationNotes,
		&c.CourseInFacility, &c.DischargeAdvice, &c.Prescriptions, &c.Suggestion,
		&c.ReferredToID, &c.Admitted, &c.AdmittedTo, &c.AdmissionDate,
		&c.DischargeDate, &c.BedNumber, &c.IsKasp, &c.KaspEnabledDate,
		&c.IsTelemedicine, &c.LastUpdatedByTelemedicine, &c.AssignedToID,
		&c.CreatedByID, &c.LastEditedByID, &c.VerifiedBy, &c.Height, &c.Weight,
		&c.CpkMB, &c.Operation, &c.SpecialInstruction, &c.IntubationStartDate,
		&c.IntubationEndDate, &c.CuffPressure, &c.EttTt, &c.IntubationHistory,
		&c.Lines, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
