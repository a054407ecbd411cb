package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/dberrors"
)

// BeneficiaryRepository handles database operations for beneficiaries
type BeneficiaryRepository struct {
	db *pgxpool.Pool
}

// NewBeneficiaryRepository creates a new beneficiary repository
func NewBeneficiaryRepository(db *pgxpool.Pool) *BeneficiaryRepository {
	return &BeneficiaryRepository{
		db: db,
	}
}

// BeneficiaryFilter narrows List results. Zero values mean no filtering;
// OutOfCampaign selects rows with no campaign.
type BeneficiaryFilter struct {
	CampaignID    int64
	OutOfCampaign bool
	Decision      models.Decision
	HasBenefited  *bool
	CommuneID     int64
	Query         string // matches name or CIN
}

const beneficiaryColumns = `
	b.id, b.campaign_id, b.first_name, b.last_name, b.cin, b.birth_date, b.sex,
	b.phone, b.address, b.commune_id, b.decision, b.has_benefited,
	b.child_in_school, b.device_side, b.created_by, b.updated_by,
	b.created_at, b.updated_at,
	co.id, co.name`

func scanBeneficiary(row pgx.Row) (*models.Beneficiary, error) {
	var b models.Beneficiary
	var communeID *int64
	var communeName *string
	err := row.Scan(
		&b.ID,
		&b.CampaignID,
		&b.FirstName,
		&b.LastName,
		&b.CIN,
		&b.BirthDate,
		&b.Sex,
		&b.Phone,
		&b.Address,
		&b.CommuneID,
		&b.Decision,
		&b.HasBenefited,
		&b.ChildInSchool,
		&b.DeviceSide,
		&b.CreatedBy,
		&b.UpdatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
		&communeID,
		&communeName,
	)
	if err != nil {
		return nil, err
	}
	if communeID != nil && communeName != nil {
		b.Commune = &models.Commune{ID: *communeID, Name: *communeName}
	}
	return &b, nil
}

// Create creates a new beneficiary
func (r *BeneficiaryRepository) Create(ctx context.Context, b *models.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (campaign_id, first_name, last_name, cin, birth_date, sex,
		                           phone, address, commune_id, decision, has_benefited,
		                           child_in_school, device_side, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.CampaignID, b.FirstName, b.LastName, b.CIN, b.BirthDate, b.Sex,
		b.Phone, b.Address, b.CommuneID, b.Decision, b.HasBenefited,
		b.ChildInSchool, b.DeviceSide, b.CreatedBy,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error creating beneficiary: %w", err)
	}

	return nil
}

// CreateTx creates a beneficiary inside an existing transaction.
func (r *BeneficiaryRepository) CreateTx(ctx context.Context, tx pgx.Tx, b *models.Beneficiary) error {
	query := `
		INSERT INTO beneficiaries (campaign_id, first_name, last_name, cin, birth_date, sex,
		                           phone, address, commune_id, decision, has_benefited,
		                           child_in_school, device_side, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		b.CampaignID, b.FirstName, b.LastName, b.CIN, b.BirthDate, b.Sex,
		b.Phone, b.Address, b.CommuneID, b.Decision, b.HasBenefited,
		b.ChildInSchool, b.DeviceSide, b.CreatedBy,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error creating beneficiary: %w", err)
	}

	return nil
}

// GetByID retrieves a beneficiary by ID with its commune and campaign
func (r *BeneficiaryRepository) GetByID(ctx context.Context, id int64) (*models.Beneficiary, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM beneficiaries b
		LEFT JOIN communes co ON co.id = b.commune_id
		WHERE b.id = $1
	`, beneficiaryColumns)

	b, err := scanBeneficiary(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBeneficiaryNotFound
		}
		return nil, fmt.Errorf("error retrieving beneficiary: %w", err)
	}

	if b.CampaignID != nil {
		var campaign models.Campaign
		err := r.db.QueryRow(ctx, `
			SELECT id, name, assistance_type_id, date_start, date_end, location,
			       budget, planned_beneficiary_count, created_at, updated_at
			FROM campaigns WHERE id = $1`, *b.CampaignID).Scan(
			&campaign.ID, &campaign.Name, &campaign.AssistanceTypeID,
			&campaign.DateStart, &campaign.DateEnd, &campaign.Location,
			&campaign.Budget, &campaign.PlannedBeneficiaryCount,
			&campaign.CreatedAt, &campaign.UpdatedAt,
		)
		if err == nil {
			b.Campaign = &campaign
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("error retrieving beneficiary campaign: %w", err)
		}
	}

	return b, nil
}

// List retrieves beneficiaries matching the filter.
func (r *BeneficiaryRepository) List(ctx context.Context, filter BeneficiaryFilter, offset uint64, limit int) ([]*models.Beneficiary, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.OutOfCampaign {
		conditions = append(conditions, "b.campaign_id IS NULL")
	} else if filter.CampaignID > 0 {
		conditions = append(conditions, fmt.Sprintf("b.campaign_id = $%d", argPos))
		args = append(args, filter.CampaignID)
		argPos++
	}
	if filter.Decision != "" {
		conditions = append(conditions, fmt.Sprintf("b.decision = $%d", argPos))
		args = append(args, filter.Decision)
		argPos++
	}
	if filter.HasBenefited != nil {
		conditions = append(conditions, fmt.Sprintf("b.has_benefited = $%d", argPos))
		args = append(args, *filter.HasBenefited)
		argPos++
	}
	if filter.CommuneID > 0 {
		conditions = append(conditions, fmt.Sprintf("b.commune_id = $%d", argPos))
		args = append(args, filter.CommuneID)
		argPos++
	}
	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(b.first_name ILIKE $%d OR b.last_name ILIKE $%d OR b.cin ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Query+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM beneficiaries b WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting beneficiaries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM beneficiaries b
		LEFT JOIN communes co ON co.id = b.commune_id
		WHERE %s
		ORDER BY b.last_name, b.first_name, b.id
		LIMIT $%d OFFSET $%d
	`, beneficiaryColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var beneficiaries []*models.Beneficiary
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, 0, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return beneficiaries, total, nil
}

// ListAllByCampaign retrieves every beneficiary of a campaign, for exports
// and statistics.
func (r *BeneficiaryRepository) ListAllByCampaign(ctx context.Context, campaignID int64) ([]*models.Beneficiary, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM beneficiaries b
		LEFT JOIN communes co ON co.id = b.commune_id
		WHERE b.campaign_id = $1
		ORDER BY b.last_name, b.first_name, b.id
	`, beneficiaryColumns)

	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var beneficiaries []*models.Beneficiary
	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			return nil, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return beneficiaries, nil
}

// Update updates an existing beneficiary
func (r *BeneficiaryRepository) Update(ctx context.Context, b *models.Beneficiary) error {
	query := `
		UPDATE beneficiaries
		SET campaign_id = $1, first_name = $2, last_name = $3, cin = $4, birth_date = $5,
		    sex = $6, phone = $7, address = $8, commune_id = $9, decision = $10,
		    has_benefited = $11, child_in_school = $12, device_side = $13,
		    updated_by = $14, updated_at = NOW()
		WHERE id = $15
	`

	cmdTag, err := r.db.Exec(ctx, query,
		b.CampaignID, b.FirstName, b.LastName, b.CIN, b.BirthDate,
		b.Sex, b.Phone, b.Address, b.CommuneID, b.Decision,
		b.HasBenefited, b.ChildInSchool, b.DeviceSide,
		b.UpdatedBy, b.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error updating beneficiary: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBeneficiaryNotFound
	}

	return nil
}

// ExistsByCIN checks whether a beneficiary with the CIN exists, excluding one
// record.
func (r *BeneficiaryRepository) ExistsByCIN(ctx context.Context, cin string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM beneficiaries WHERE cin = $1 AND id != $2)`,
		cin, exceptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking beneficiary CIN: %w", err)
	}
	return exists, nil
}

// ExistsInCampaign checks whether a beneficiary with the CIN already exists
// in a campaign. Used when converting participants.
func (r *BeneficiaryRepository) ExistsInCampaign(ctx context.Context, campaignID int64, cin string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM beneficiaries WHERE campaign_id = $1 AND cin = $2)`,
		campaignID, cin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking beneficiary in campaign: %w", err)
	}
	return exists, nil
}

// HasMedicalAssistances reports whether the beneficiary owns assistance
// records.
func (r *BeneficiaryRepository) HasMedicalAssistances(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM medical_assistances WHERE beneficiary_id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking beneficiary assistances: %w", err)
	}
	return exists, nil
}

// Delete deletes a beneficiary by ID
func (r *BeneficiaryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM beneficiaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting beneficiary: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBeneficiaryNotFound
	}
	return nil
}
