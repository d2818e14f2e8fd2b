package sqlite

import (
	"context"
	"database/sql"

	"github.com/driftlock/noticeboard/internal/notice/domain"
)

type notificationsRepo struct {
	db dbtx
}

// Reads join the author's username so listings don't need a second query.
const notificationColumns = `n.id, n.title, n.body, n.priority, n.created_by, u.username,
	n.published, n.published_at, n.created_at, n.updated_at`

const notificationFrom = ` FROM notifications n JOIN users u ON u.id = n.created_by `

func scanNotification(scan func(dest ...any) error) (domain.Notification, error) {
	var (
		n           domain.Notification
		publishedAt sql.NullTime
	)
	err := scan(
		&n.ID,
		&n.Title,
		&n.Body,
		&n.Priority,
		&n.CreatedBy,
		&n.AuthorName,
		&n.Published,
		&publishedAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return domain.Notification{}, err
	}

	n.PublishedAt = mapNullTimePtr(publishedAt)
	return n, nil
}

func (r *notificationsRepo) GetNotificationByID(ctx context.Context, id string) (domain.Notification, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+notificationFrom+`WHERE n.id = ?`, id)

	n, err := scanNotification(row.Scan)
	if err != nil {
		return domain.Notification{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notificationsRepo) ListPublished(ctx context.Context, offset, limit int) ([]domain.Notification, int, error) {
	return r.list(ctx, `WHERE n.published = TRUE`, offset, limit)
}

func (r *notificationsRepo) ListAll(ctx context.Context, offset, limit int) ([]domain.Notification, int, error) {
	return r.list(ctx, ``, offset, limit)
}

// list pages notifications newest first. ULIDs sort chronologically so
// ordering by id is ordering by creation time.
func (r *notificationsRepo) list(ctx context.Context, where string, offset, limit int) ([]domain.Notification, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*)`+notificationFrom+where).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+notificationColumns+notificationFrom+where+`
		 ORDER BY n.id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *notificationsRepo) CreateNotification(ctx context.Context, n domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, title, body, priority, created_by, published, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Body, n.Priority, n.CreatedBy, n.Published, mapOptionalTime(n.PublishedAt))
	return mapConstraint(err)
}

func (r *notificationsRepo) UpdateNotification(ctx context.Context, n domain.Notification) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications
		 SET title = ?, body = ?, priority = ?, published = ?, published_at = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		n.Title, n.Body, n.Priority, n.Published, mapOptionalTime(n.PublishedAt), n.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *notificationsRepo) DeleteNotification(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, id)
	return err
}
