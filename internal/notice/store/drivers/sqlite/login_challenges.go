package sqlite

import (
	"context"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
)

type loginChallengesRepo struct {
	db dbtx
}

func (r *loginChallengesRepo) CreateLoginChallenge(ctx context.Context, c domain.LoginChallenge) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO login_challenges (id, user_id, attempts, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Attempts, c.CreatedAt, c.ExpiresAt)
	return mapConstraint(err)
}

func (r *loginChallengesRepo) GetLoginChallenge(ctx context.Context, token string) (domain.LoginChallenge, error) {
	var c domain.LoginChallenge
	// Expiry is compared against a bound parameter rather than
	// CURRENT_TIMESTAMP so both sides use the driver's time encoding.
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, attempts, created_at, expires_at
		 FROM login_challenges
		 WHERE id = ? AND expires_at > ?`,
		token, time.Now().UTC()).Scan(&c.ID, &c.UserID, &c.Attempts, &c.CreatedAt, &c.ExpiresAt)
	if err != nil {
		return domain.LoginChallenge{}, mapNotFound(err)
	}
	return c, nil
}

func (r *loginChallengesRepo) IncrementLoginChallengeAttempts(ctx context.Context, token string) (domain.LoginChallenge, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE login_challenges SET attempts = attempts + 1 WHERE id = ?`, token)
	if err != nil {
		return domain.LoginChallenge{}, err
	}
	return r.GetLoginChallenge(ctx, token)
}

func (r *loginChallengesRepo) DeleteLoginChallenge(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM login_challenges WHERE id = ?`, token)
	return err
}

func (r *loginChallengesRepo) DeleteExpiredLoginChallenges(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM login_challenges WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
