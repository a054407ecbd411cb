package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/dberrors"
)

// dictionaryKindSpec binds one dictionary kind to its table and rules. The
// registry is closed; unknown kinds are a not-found, never a dynamic lookup.
type dictionaryKindSpec struct {
	table      string
	hasParent  bool
	inUseQuery string // EXISTS query with $1 = entry id; empty means always deletable
}

var dictionaryKinds = map[models.DictionaryKind]dictionaryKindSpec{
	models.DictCommunes: {
		table: "communes",
		inUseQuery: `SELECT EXISTS(
			SELECT 1 FROM participants WHERE commune_id = $1
			UNION SELECT 1 FROM beneficiaries WHERE commune_id = $1)`,
	},
	models.DictAssistanceTypes: {
		table:     "assistance_types",
		hasParent: true,
		inUseQuery: `SELECT EXISTS(
			SELECT 1 FROM campaigns WHERE assistance_type_id = $1
			UNION SELECT 1 FROM medical_assistances WHERE assistance_type_id = $1
			UNION SELECT 1 FROM assistance_types WHERE parent_id = $1)`,
	},
	models.DictDonationStates: {
		table:      "donation_states",
		inUseQuery: `SELECT EXISTS(SELECT 1 FROM medical_assistances WHERE donation_state_id = $1)`,
	},
	models.DictFileStates: {
		table:      "file_states",
		inUseQuery: `SELECT EXISTS(SELECT 1 FROM medical_assistances WHERE file_state_id = $1)`,
	},
}

// DictionaryRepository serves the generic reference-data CRUD surface over a
// fixed set of lookup tables.
type DictionaryRepository struct {
	db *pgxpool.Pool
}

// NewDictionaryRepository creates a new dictionary repository
func NewDictionaryRepository(db *pgxpool.Pool) *DictionaryRepository {
	return &DictionaryRepository{
		db: db,
	}
}

// Kinds returns the supported dictionary kind keys.
func (r *DictionaryRepository) Kinds() []models.DictionaryKind {
	return []models.DictionaryKind{
		models.DictCommunes,
		models.DictAssistanceTypes,
		models.DictDonationStates,
		models.DictFileStates,
	}
}

// KindSupportsParent reports whether entries of the kind may carry a parent
// reference.
func (r *DictionaryRepository) KindSupportsParent(kind models.DictionaryKind) (bool, error) {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return false, apperrors.ErrDictionaryKindNotFound
	}
	return spec.hasParent, nil
}

// List retrieves all entries of a kind ordered by name.
func (r *DictionaryRepository) List(ctx context.Context, kind models.DictionaryKind) ([]*models.DictionaryEntry, error) {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return nil, apperrors.ErrDictionaryKindNotFound
	}

	parentCol := "NULL"
	if spec.hasParent {
		parentCol = "parent_id"
	}
	query := fmt.Sprintf(`
		SELECT id, name, %s, created_at, updated_at
		FROM %s
		ORDER BY name, id
	`, parentCol, spec.table)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.DictionaryEntry
	for rows.Next() {
		var e models.DictionaryEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.ParentID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetByID retrieves one entry of a kind.
func (r *DictionaryRepository) GetByID(ctx context.Context, kind models.DictionaryKind, id int64) (*models.DictionaryEntry, error) {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return nil, apperrors.ErrDictionaryKindNotFound
	}

	parentCol := "NULL"
	if spec.hasParent {
		parentCol = "parent_id"
	}
	query := fmt.Sprintf(`
		SELECT id, name, %s, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, parentCol, spec.table)

	var e models.DictionaryEntry
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.ParentID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("error retrieving dictionary entry: %w", err)
	}

	return &e, nil
}

// NameExists checks name uniqueness within a kind, excluding one record.
func (r *DictionaryRepository) NameExists(ctx context.Context, kind models.DictionaryKind, name string, exceptID int64) (bool, error) {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return false, apperrors.ErrDictionaryKindNotFound
	}

	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE name = $1 AND id != $2)`, spec.table)
	if err := r.db.QueryRow(ctx, query, name, exceptID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking dictionary name: %w", err)
	}
	return exists, nil
}

// Create creates a new entry of a kind.
func (r *DictionaryRepository) Create(ctx context.Context, kind models.DictionaryKind, e *models.DictionaryEntry) error {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return apperrors.ErrDictionaryKindNotFound
	}

	var err error
	if spec.hasParent {
		query := fmt.Sprintf(`
			INSERT INTO %s (name, parent_id) VALUES ($1, $2)
			RETURNING id, created_at, updated_at`, spec.table)
		err = r.db.QueryRow(ctx, query, e.Name, e.ParentID).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	} else {
		query := fmt.Sprintf(`
			INSERT INTO %s (name) VALUES ($1)
			RETURNING id, created_at, updated_at`, spec.table)
		err = r.db.QueryRow(ctx, query, e.Name).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	}
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEntryAlreadyExists
		}
		return fmt.Errorf("error creating dictionary entry: %w", err)
	}

	return nil
}

// Update updates an entry of a kind.
func (r *DictionaryRepository) Update(ctx context.Context, kind models.DictionaryKind, e *models.DictionaryEntry) error {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return apperrors.ErrDictionaryKindNotFound
	}

	var cmdTag pgconn.CommandTag
	var err error
	if spec.hasParent {
		query := fmt.Sprintf(`UPDATE %s SET name = $1, parent_id = $2, updated_at = NOW() WHERE id = $3`, spec.table)
		cmdTag, err = r.db.Exec(ctx, query, e.Name, e.ParentID, e.ID)
	} else {
		query := fmt.Sprintf(`UPDATE %s SET name = $1, updated_at = NOW() WHERE id = $2`, spec.table)
		cmdTag, err = r.db.Exec(ctx, query, e.Name, e.ID)
	}
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEntryAlreadyExists
		}
		return fmt.Errorf("error updating dictionary entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}

// IsInUse evaluates the kind's in-use predicate for one entry.
func (r *DictionaryRepository) IsInUse(ctx context.Context, kind models.DictionaryKind, id int64) (bool, error) {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return false, apperrors.ErrDictionaryKindNotFound
	}
	if spec.inUseQuery == "" {
		return false, nil
	}

	var inUse bool
	if err := r.db.QueryRow(ctx, spec.inUseQuery, id).Scan(&inUse); err != nil {
		return false, fmt.Errorf("error checking dictionary entry usage: %w", err)
	}
	return inUse, nil
}

// Delete deletes an entry of a kind. Callers check IsInUse first.
func (r *DictionaryRepository) Delete(ctx context.Context, kind models.DictionaryKind, id int64) error {
	spec, ok := dictionaryKinds[kind]
	if !ok {
		return apperrors.ErrDictionaryKindNotFound
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, spec.table)
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEntryInUse
		}
		return fmt.Errorf("error deleting dictionary entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}
