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

// ParticipantRepository handles database operations for campaign participants
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
	}
}

// ParticipantFilter narrows List results. Zero values mean no filtering.
type ParticipantFilter struct {
	Status    models.ParticipantStatus
	CommuneID int64
	Query     string // matches name or CIN
}

const participantColumns = `
	p.id, p.campaign_id, p.first_name, p.last_name, p.cin, p.birth_date, p.sex,
	p.phone, p.address, p.commune_id, p.status, p.call_date, p.call_note,
	p.created_by, p.updated_by, p.created_at, p.updated_at,
	co.id, co.name`

func scanParticipant(row pgx.Row) (*models.Participant, error) {
	var p models.Participant
	var communeID *int64
	var communeName *string
	err := row.Scan(
		&p.ID,
		&p.CampaignID,
		&p.FirstName,
		&p.LastName,
		&p.CIN,
		&p.BirthDate,
		&p.Sex,
		&p.Phone,
		&p.Address,
		&p.CommuneID,
		&p.Status,
		&p.CallDate,
		&p.CallNote,
		&p.CreatedBy,
		&p.UpdatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&communeID,
		&communeName,
	)
	if err != nil {
		return nil, err
	}
	if communeID != nil && communeName != nil {
		p.Commune = &models.Commune{ID: *communeID, Name: *communeName}
	}
	return &p, nil
}

// Create creates a new participant
func (r *ParticipantRepository) Create(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (campaign_id, first_name, last_name, cin, birth_date, sex,
		                          phone, address, commune_id, status, call_date, call_note,
		                          created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.CampaignID, p.FirstName, p.LastName, p.CIN, p.BirthDate, p.Sex,
		p.Phone, p.Address, p.CommuneID, p.Status, p.CallDate, p.CallNote,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error creating participant: %w", err)
	}

	return nil
}

// CreateTx creates a new participant inside an existing transaction
func (r *ParticipantRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *models.Participant) error {
	query := `
		INSERT INTO participants (campaign_id, first_name, last_name, cin, birth_date, sex,
		                          phone, address, commune_id, status, call_date, call_note,
		                          created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		p.CampaignID, p.FirstName, p.LastName, p.CIN, p.BirthDate, p.Sex,
		p.Phone, p.Address, p.CommuneID, p.Status, p.CallDate, p.CallNote,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error creating participant: %w", err)
	}

	return nil
}

// UpdateTx updates an existing participant inside an existing transaction
func (r *ParticipantRepository) UpdateTx(ctx context.Context, tx pgx.Tx, p *models.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $1, last_name = $2, cin = $3, birth_date = $4, sex = $5,
		    phone = $6, address = $7, commune_id = $8, status = $9, call_date = $10,
		    call_note = $11, updated_by = $12, updated_at = NOW()
		WHERE id = $13
	`

	cmdTag, err := tx.Exec(ctx, query,
		p.FirstName, p.LastName, p.CIN, p.BirthDate, p.Sex,
		p.Phone, p.Address, p.CommuneID, p.Status, p.CallDate,
		p.CallNote, p.UpdatedBy, p.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error updating participant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}

	return nil
}

// GetByID retrieves a participant by ID with its commune
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		LEFT JOIN communes co ON co.id = p.commune_id
		WHERE p.id = $1
	`, participantColumns)

	p, err := scanParticipant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("error retrieving participant: %w", err)
	}
	return p, nil
}

// List retrieves participants of a campaign matching the filter.
func (r *ParticipantRepository) List(ctx context.Context, campaignID int64, filter ParticipantFilter, offset uint64, limit int) ([]*models.Participant, int64, error) {
	conditions := []string{"p.campaign_id = $1"}
	args := []interface{}{campaignID}
	argPos := 2

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.CommuneID > 0 {
		conditions = append(conditions, fmt.Sprintf("p.commune_id = $%d", argPos))
		args = append(args, filter.CommuneID)
		argPos++
	}
	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(p.first_name ILIKE $%d OR p.last_name ILIKE $%d OR p.cin ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Query+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM participants p WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting participants: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		LEFT JOIN communes co ON co.id = p.commune_id
		WHERE %s
		ORDER BY p.last_name, p.first_name, p.id
		LIMIT $%d OFFSET $%d
	`, participantColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, 0, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return participants, total, nil
}

// ListAllByCampaign retrieves every participant of a campaign, for exports
// and statistics.
func (r *ParticipantRepository) ListAllByCampaign(ctx context.Context, campaignID int64) ([]*models.Participant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		LEFT JOIN communes co ON co.id = p.commune_id
		WHERE p.campaign_id = $1
		ORDER BY p.last_name, p.first_name, p.id
	`, participantColumns)

	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// Update updates an existing participant
func (r *ParticipantRepository) Update(ctx context.Context, p *models.Participant) error {
	query := `
		UPDATE participants
		SET first_name = $1, last_name = $2, cin = $3, birth_date = $4, sex = $5,
		    phone = $6, address = $7, commune_id = $8, status = $9, call_date = $10,
		    call_note = $11, updated_by = $12, updated_at = NOW()
		WHERE id = $13
	`

	cmdTag, err := r.db.Exec(ctx, query,
		p.FirstName, p.LastName, p.CIN, p.BirthDate, p.Sex,
		p.Phone, p.Address, p.CommuneID, p.Status, p.CallDate,
		p.CallNote, p.UpdatedBy, p.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCINAlreadyExists
		}
		return fmt.Errorf("error updating participant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}

	return nil
}

// ExistsByCIN checks whether a participant with the CIN exists, excluding one
// record.
func (r *ParticipantRepository) ExistsByCIN(ctx context.Context, cin string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM participants WHERE cin = $1 AND id != $2)`,
		cin, exceptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking participant CIN: %w", err)
	}
	return exists, nil
}

// GetByCIN retrieves the participant carrying a CIN within a campaign,
// nil when absent. Used by imports for upsert decisions.
func (r *ParticipantRepository) GetByCIN(ctx context.Context, campaignID int64, cin string) (*models.Participant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		LEFT JOIN communes co ON co.id = p.commune_id
		WHERE p.campaign_id = $1 AND p.cin = $2
	`, participantColumns)

	p, err := scanParticipant(r.db.QueryRow(ctx, query, campaignID, cin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving participant by CIN: %w", err)
	}
	return p, nil
}

// Delete deletes a participant by ID
func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting participant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipantNotFound
	}
	return nil
}
