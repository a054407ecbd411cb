package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
)

// MedicalAssistanceRepository handles database operations for medical
// assistance records
type MedicalAssistanceRepository struct {
	db *pgxpool.Pool
}

// NewMedicalAssistanceRepository creates a new medical assistance repository
func NewMedicalAssistanceRepository(db *pgxpool.Pool) *MedicalAssistanceRepository {
	return &MedicalAssistanceRepository{
		db: db,
	}
}

// MedicalAssistanceFilter narrows List results.
type MedicalAssistanceFilter struct {
	BeneficiaryID    int64
	AssistanceTypeID int64
	Returned         *bool
}

const medicalAssistanceColumns = `
	ma.id, ma.beneficiary_id, ma.assistance_type_id, ma.assistance_sub_type,
	ma.donation_nature, ma.donation_state_id, ma.file_state_id, ma.assistance_date,
	ma.usage_duration_days, ma.expected_return_date, ma.actual_return_date,
	ma.returned, ma.created_at, ma.updated_at,
	at.name, ds.name, fs.name`

func scanMedicalAssistance(row pgx.Row) (*models.MedicalAssistance, error) {
	var m models.MedicalAssistance
	var typeName *string
	var donationStateName *string
	var fileStateName *string
	err := row.Scan(
		&m.ID,
		&m.BeneficiaryID,
		&m.AssistanceTypeID,
		&m.AssistanceSubType,
		&m.DonationNature,
		&m.DonationStateID,
		&m.FileStateID,
		&m.AssistanceDate,
		&m.UsageDurationDays,
		&m.ExpectedReturnDate,
		&m.ActualReturnDate,
		&m.Returned,
		&m.CreatedAt,
		&m.UpdatedAt,
		&typeName,
		&donationStateName,
		&fileStateName,
	)
	if err != nil {
		return nil, err
	}
	if typeName != nil {
		m.AssistanceType = &models.AssistanceType{ID: m.AssistanceTypeID, Name: *typeName}
	}
	if m.DonationStateID != nil && donationStateName != nil {
		m.DonationState = &models.DonationState{ID: *m.DonationStateID, Name: *donationStateName}
	}
	if m.FileStateID != nil && fileStateName != nil {
		m.FileState = &models.FileState{ID: *m.FileStateID, Name: *fileStateName}
	}
	return &m, nil
}

// Create creates a new medical assistance record
func (r *MedicalAssistanceRepository) Create(ctx context.Context, m *models.MedicalAssistance) error {
	query := `
		INSERT INTO medical_assistances (beneficiary_id, assistance_type_id, assistance_sub_type,
		                                 donation_nature, donation_state_id, file_state_id,
		                                 assistance_date, usage_duration_days, expected_return_date,
		                                 actual_return_date, returned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		m.BeneficiaryID, m.AssistanceTypeID, m.AssistanceSubType,
		m.DonationNature, m.DonationStateID, m.FileStateID,
		m.AssistanceDate, m.UsageDurationDays, m.ExpectedReturnDate,
		m.ActualReturnDate, m.Returned,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating medical assistance: %w", err)
	}

	return nil
}

// GetByID retrieves a medical assistance record with its lookups
func (r *MedicalAssistanceRepository) GetByID(ctx context.Context, id int64) (*models.MedicalAssistance, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM medical_assistances ma
		JOIN assistance_types at ON at.id = ma.assistance_type_id
		LEFT JOIN donation_states ds ON ds.id = ma.donation_state_id
		LEFT JOIN file_states fs ON fs.id = ma.file_state_id
		WHERE ma.id = $1
	`, medicalAssistanceColumns)

	m, err := scanMedicalAssistance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMedicalAssistanceNotFound
		}
		return nil, fmt.Errorf("error retrieving medical assistance: %w", err)
	}
	return m, nil
}

// List retrieves medical assistance records matching the filter.
func (r *MedicalAssistanceRepository) List(ctx context.Context, filter MedicalAssistanceFilter, offset uint64, limit int) ([]*models.MedicalAssistance, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.BeneficiaryID > 0 {
		conditions = append(conditions, fmt.Sprintf("ma.beneficiary_id = $%d", argPos))
		args = append(args, filter.BeneficiaryID)
		argPos++
	}
	if filter.AssistanceTypeID > 0 {
		conditions = append(conditions, fmt.Sprintf("ma.assistance_type_id = $%d", argPos))
		args = append(args, filter.AssistanceTypeID)
		argPos++
	}
	if filter.Returned != nil {
		conditions = append(conditions, fmt.Sprintf("ma.returned = $%d", argPos))
		args = append(args, *filter.Returned)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM medical_assistances ma WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting medical assistances: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM medical_assistances ma
		JOIN assistance_types at ON at.id = ma.assistance_type_id
		LEFT JOIN donation_states ds ON ds.id = ma.donation_state_id
		LEFT JOIN file_states fs ON fs.id = ma.file_state_id
		WHERE %s
		ORDER BY ma.assistance_date DESC, ma.id DESC
		LIMIT $%d OFFSET $%d
	`, medicalAssistanceColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*models.MedicalAssistance
	for rows.Next() {
		m, err := scanMedicalAssistance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update updates an existing medical assistance record
func (r *MedicalAssistanceRepository) Update(ctx context.Context, m *models.MedicalAssistance) error {
	query := `
		UPDATE medical_assistances
		SET assistance_type_id = $1, assistance_sub_type = $2, donation_nature = $3,
		    donation_state_id = $4, file_state_id = $5, assistance_date = $6,
		    usage_duration_days = $7, expected_return_date = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		m.AssistanceTypeID, m.AssistanceSubType, m.DonationNature,
		m.DonationStateID, m.FileStateID, m.AssistanceDate,
		m.UsageDurationDays, m.ExpectedReturnDate, m.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating medical assistance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMedicalAssistanceNotFound
	}

	return nil
}

// MarkReturned sets the returned flag and actual return date. It refuses
// records already marked returned.
func (r *MedicalAssistanceRepository) MarkReturned(ctx context.Context, id int64, returnDate time.Time) error {
	query := `
		UPDATE medical_assistances
		SET returned = TRUE, actual_return_date = $1, updated_at = NOW()
		WHERE id = $2 AND returned = FALSE
	`

	cmdTag, err := r.db.Exec(ctx, query, returnDate, id)
	if err != nil {
		return fmt.Errorf("error marking medical assistance returned: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either absent or already returned; disambiguate for the caller
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM medical_assistances WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking medical assistance: %w", err)
		}
		if !exists {
			return apperrors.ErrMedicalAssistanceNotFound
		}
		return apperrors.ErrAlreadyReturned
	}

	return nil
}

// Delete deletes a medical assistance record by ID
func (r *MedicalAssistanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM medical_assistances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting medical assistance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMedicalAssistanceNotFound
	}
	return nil
}
