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

// KafalaRepository handles database operations for kafala guardianship cases
type KafalaRepository struct {
	db *pgxpool.Pool
}

// NewKafalaRepository creates a new kafala repository
func NewKafalaRepository(db *pgxpool.Pool) *KafalaRepository {
	return &KafalaRepository{
		db: db,
	}
}

const kafalaColumns = `
	id, reference, father_name, father_cin, mother_name, mother_cin,
	marriage_date, child_name, child_birth_date, child_sex,
	document_name, document_path, document_mime, document_size,
	created_at, updated_at`

func scanKafala(row pgx.Row) (*models.Kafala, error) {
	var k models.Kafala
	err := row.Scan(
		&k.ID,
		&k.Reference,
		&k.FatherName,
		&k.FatherCIN,
		&k.MotherName,
		&k.MotherCIN,
		&k.MarriageDate,
		&k.ChildName,
		&k.ChildBirthDate,
		&k.ChildSex,
		&k.DocumentName,
		&k.DocumentPath,
		&k.DocumentMime,
		&k.DocumentSize,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// NextReference generates the next KAF-<year>-<seq> reference inside the
// given transaction. The per-year sequence is kept in kafala_sequences and
// locked for the duration of the transaction.
func (r *KafalaRepository) NextReference(ctx context.Context, tx pgx.Tx, year int) (string, error) {
	var seq int64
	err := tx.QueryRow(ctx, `
		INSERT INTO kafala_sequences (year, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_seq = kafala_sequences.last_seq + 1
		RETURNING last_seq
	`, year).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("error generating kafala reference: %w", err)
	}
	return models.KafalaReference(year, seq), nil
}

// CreateTx creates a kafala case inside an existing transaction.
func (r *KafalaRepository) CreateTx(ctx context.Context, tx pgx.Tx, k *models.Kafala) error {
	query := `
		INSERT INTO kafalas (reference, father_name, father_cin, mother_name, mother_cin,
		                     marriage_date, child_name, child_birth_date, child_sex,
		                     document_name, document_path, document_mime, document_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := tx.QueryRow(ctx, query,
		k.Reference, k.FatherName, k.FatherCIN, k.MotherName, k.MotherCIN,
		k.MarriageDate, k.ChildName, k.ChildBirthDate, k.ChildSex,
		k.DocumentName, k.DocumentPath, k.DocumentMime, k.DocumentSize,
	).Scan(&k.ID, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrReferenceAlreadyExists
		}
		return fmt.Errorf("error creating kafala: %w", err)
	}

	return nil
}

// GetByID retrieves a kafala case by ID
func (r *KafalaRepository) GetByID(ctx context.Context, id int64) (*models.Kafala, error) {
	query := fmt.Sprintf(`SELECT %s FROM kafalas WHERE id = $1`, kafalaColumns)

	k, err := scanKafala(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrKafalaNotFound
		}
		return nil, fmt.Errorf("error retrieving kafala: %w", err)
	}
	return k, nil
}

// List retrieves kafala cases matching the query, newest first. The query
// matches the reference, parent names and CINs, and the child name.
func (r *KafalaRepository) List(ctx context.Context, search string, offset uint64, limit int) ([]*models.Kafala, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(reference ILIKE $%d OR father_name ILIKE $%d OR mother_name ILIKE $%d OR child_name ILIKE $%d OR father_cin ILIKE $%d OR mother_cin ILIKE $%d)",
			argPos, argPos, argPos, argPos, argPos, argPos))
		args = append(args, "%"+search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM kafalas WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting kafalas: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM kafalas
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, kafalaColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var kafalas []*models.Kafala
	for rows.Next() {
		k, err := scanKafala(rows)
		if err != nil {
			return nil, 0, err
		}
		kafalas = append(kafalas, k)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return kafalas, total, nil
}

// Update updates the case fields of a kafala. Document fields are managed
// through SetDocument and ClearDocument.
func (r *KafalaRepository) Update(ctx context.Context, k *models.Kafala) error {
	query := `
		UPDATE kafalas
		SET reference = $1, father_name = $2, father_cin = $3, mother_name = $4,
		    mother_cin = $5, marriage_date = $6, child_name = $7,
		    child_birth_date = $8, child_sex = $9, updated_at = NOW()
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		k.Reference, k.FatherName, k.FatherCIN, k.MotherName,
		k.MotherCIN, k.MarriageDate, k.ChildName,
		k.ChildBirthDate, k.ChildSex, k.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrReferenceAlreadyExists
		}
		return fmt.Errorf("error updating kafala: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafalaNotFound
	}

	return nil
}

// SetDocument attaches or replaces the case document metadata.
func (r *KafalaRepository) SetDocument(ctx context.Context, id int64, name, path, mime string, size int64) error {
	query := `
		UPDATE kafalas
		SET document_name = $1, document_path = $2, document_mime = $3,
		    document_size = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, name, path, mime, size, id)
	if err != nil {
		return fmt.Errorf("error setting kafala document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafalaNotFound
	}
	return nil
}

// ClearDocument removes the case document metadata.
func (r *KafalaRepository) ClearDocument(ctx context.Context, id int64) error {
	query := `
		UPDATE kafalas
		SET document_name = NULL, document_path = NULL, document_mime = NULL,
		    document_size = NULL, updated_at = NOW()
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error clearing kafala document: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafalaNotFound
	}
	return nil
}

// ReferenceExists checks whether a reference is taken, excluding one record.
func (r *KafalaRepository) ReferenceExists(ctx context.Context, reference string, exceptID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM kafalas WHERE reference = $1 AND id != $2)`,
		reference, exceptID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking kafala reference: %w", err)
	}
	return exists, nil
}

// Delete deletes a kafala case by ID
func (r *KafalaRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM kafalas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting kafala: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrKafalaNotFound
	}
	return nil
}
