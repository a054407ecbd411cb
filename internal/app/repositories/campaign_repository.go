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
)

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *pgxpool.Pool
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{
		db: db,
	}
}

// CampaignFilter narrows List results. Zero values mean no filtering.
type CampaignFilter struct {
	Query            string
	AssistanceTypeID int64
	Year             int
	Status           models.CampaignStatus
}

// statusCondition translates a derived campaign status into its date-window
// predicate. The status is a pure function of the window, so filtering can
// happen in SQL and pagination totals stay exact.
func statusCondition(status models.CampaignStatus) (string, bool) {
	switch status {
	case models.CampaignUpcoming:
		return "c.date_start > CURRENT_DATE", true
	case models.CampaignOngoing:
		return "c.date_start <= CURRENT_DATE AND c.date_end >= CURRENT_DATE", true
	case models.CampaignEnded:
		return "c.date_end < CURRENT_DATE", true
	default:
		return "", false
	}
}

// buildCampaignWhere assembles the WHERE clause and its arguments for List.
func buildCampaignWhere(filter CampaignFilter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Query != "" {
		pos := len(args) + 1
		conditions = append(conditions, fmt.Sprintf("(c.name ILIKE $%d OR c.location ILIKE $%d)", pos, pos))
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.AssistanceTypeID > 0 {
		conditions = append(conditions, fmt.Sprintf("c.assistance_type_id = $%d", len(args)+1))
		args = append(args, filter.AssistanceTypeID)
	}
	if filter.Year > 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM c.date_start) = $%d", len(args)+1))
		args = append(args, filter.Year)
	}
	if cond, ok := statusCondition(filter.Status); ok {
		conditions = append(conditions, cond)
	}

	return strings.Join(conditions, " AND "), args
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	query := `
		INSERT INTO campaigns (name, assistance_type_id, date_start, date_end, location, budget, planned_beneficiary_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		campaign.Name,
		campaign.AssistanceTypeID,
		campaign.DateStart,
		campaign.DateEnd,
		campaign.Location,
		campaign.Budget,
		campaign.PlannedBeneficiaryCount,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating campaign: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by ID with its assistance type
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	query := `
		SELECT c.id, c.name, c.assistance_type_id, c.date_start, c.date_end,
		       c.location, c.budget, c.planned_beneficiary_count, c.created_at, c.updated_at,
		       at.id, at.name, at.parent_id
		FROM campaigns c
		JOIN assistance_types at ON at.id = c.assistance_type_id
		WHERE c.id = $1
	`

	var campaign models.Campaign
	var assistanceType models.AssistanceType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.AssistanceTypeID,
		&campaign.DateStart,
		&campaign.DateEnd,
		&campaign.Location,
		&campaign.Budget,
		&campaign.PlannedBeneficiaryCount,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
		&assistanceType.ID,
		&assistanceType.Name,
		&assistanceType.ParentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("error retrieving campaign: %w", err)
	}

	campaign.AssistanceType = &assistanceType
	return &campaign, nil
}

// List retrieves campaigns matching the filter, newest start date first.
func (r *CampaignRepository) List(ctx context.Context, filter CampaignFilter, offset uint64, limit int) ([]*models.Campaign, int64, error) {
	where, args := buildCampaignWhere(filter)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM campaigns c WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting campaigns: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.name, c.assistance_type_id, c.date_start, c.date_end,
		       c.location, c.budget, c.planned_beneficiary_count, c.created_at, c.updated_at,
		       at.id, at.name, at.parent_id
		FROM campaigns c
		JOIN assistance_types at ON at.id = c.assistance_type_id
		WHERE %s
		ORDER BY c.date_start DESC, c.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var campaigns []*models.Campaign
	for rows.Next() {
		var campaign models.Campaign
		var assistanceType models.AssistanceType
		if err := rows.Scan(
			&campaign.ID,
			&campaign.Name,
			&campaign.AssistanceTypeID,
			&campaign.DateStart,
			&campaign.DateEnd,
			&campaign.Location,
			&campaign.Budget,
			&campaign.PlannedBeneficiaryCount,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
			&assistanceType.ID,
			&assistanceType.Name,
			&assistanceType.ParentID,
		); err != nil {
			return nil, 0, err
		}
		campaign.AssistanceType = &assistanceType
		campaigns = append(campaigns, &campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

// Update updates an existing campaign
func (r *CampaignRepository) Update(ctx context.Context, campaign *models.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $1, assistance_type_id = $2, date_start = $3, date_end = $4,
		    location = $5, budget = $6, planned_beneficiary_count = $7, updated_at = NOW()
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		campaign.Name,
		campaign.AssistanceTypeID,
		campaign.DateStart,
		campaign.DateEnd,
		campaign.Location,
		campaign.Budget,
		campaign.PlannedBeneficiaryCount,
		campaign.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating campaign: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}

	return nil
}

// HasBeneficiaries reports whether any beneficiary references the campaign.
func (r *CampaignRepository) HasBeneficiaries(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM beneficiaries WHERE campaign_id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking campaign beneficiaries: %w", err)
	}
	return exists, nil
}

// Delete deletes a campaign. Its participants go with it; beneficiaries must
// be checked by the caller first.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting campaign: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCampaignNotFound
	}
	return nil
}
