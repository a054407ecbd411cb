package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanad-app/sanad-backend/internal/app/models"
)

// AuditLogRepository handles the append-only audit trail
type AuditLogRepository struct {
	db *pgxpool.Pool
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{
		db: db,
	}
}

// AuditLogFilter narrows List results.
type AuditLogFilter struct {
	Action  string
	Entity  string
	ActorID int64
}

// Insert appends one audit entry. Audit writes never fail the surrounding
// operation; callers log insert errors and move on.
func (r *AuditLogRepository) Insert(ctx context.Context, entry *models.AuditLog) error {
	query := `
		INSERT INTO audit_logs (action, actor_id, entity, entity_id, before_state, after_state)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.Action, entry.ActorID, entry.Entity, entry.EntityID,
		entry.Before, entry.After,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting audit log: %w", err)
	}

	return nil
}

// List retrieves audit entries matching the filter, newest first, with the
// actor email joined in.
func (r *AuditLogRepository) List(ctx context.Context, filter AuditLogFilter, offset uint64, limit int) ([]*models.AuditLog, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Action != "" {
		conditions = append(conditions, fmt.Sprintf("a.action = $%d", argPos))
		args = append(args, filter.Action)
		argPos++
	}
	if filter.Entity != "" {
		conditions = append(conditions, fmt.Sprintf("a.entity = $%d", argPos))
		args = append(args, filter.Entity)
		argPos++
	}
	if filter.ActorID > 0 {
		conditions = append(conditions, fmt.Sprintf("a.actor_id = $%d", argPos))
		args = append(args, filter.ActorID)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM audit_logs a WHERE %s", where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting audit logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.action, a.actor_id, a.entity, a.entity_id,
		       a.before_state, a.after_state, a.created_at,
		       COALESCE(u.email, '')
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.actor_id
		WHERE %s
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		var entry models.AuditLog
		if err := rows.Scan(
			&entry.ID, &entry.Action, &entry.ActorID, &entry.Entity, &entry.EntityID,
			&entry.Before, &entry.After, &entry.CreatedAt,
			&entry.ActorEmail,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
