package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/internal/notice/store/drivers/sqlite"
	"github.com/driftlock/noticeboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, s store.Store, username string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$fake",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := createTestUser(t, s, "alice")

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.False(t, got.IsAdmin)
	require.Nil(t, got.TOTPEnabled)
	require.Nil(t, got.TOTPSecret)
	require.False(t, got.CreatedAt.IsZero())

	byID, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
}

func TestUserPasswordUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice")

	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "$argon2id$new"))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "$argon2id$new", got.PasswordHash)

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))
	_, err = s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice")

	err := s.Users().CreateUser(ctx, domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "$argon2id$other",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Users().GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTOTPLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice")

	require.NoError(t, s.Users().UpdateTOTPSecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TOTPSecret)
	require.Nil(t, got.TOTPEnabled, "secret alone should not enable TOTP")
	require.False(t, got.HasTOTP())

	require.NoError(t, s.Users().EnableTOTP(ctx, u.ID))

	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.HasTOTP())

	require.NoError(t, s.Users().DisableTOTP(ctx, u.ID))

	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got.TOTPEnabled)
	require.Nil(t, got.TOTPSecret)
}

func TestNotificationsPagination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	admin := createTestUser(t, s, "admin")

	for i := range 5 {
		n := domain.Notification{
			ID:        idx.New().String(),
			Title:     "notice",
			Body:      "body",
			Priority:  domain.PriorityMedium,
			CreatedBy: admin.ID,
			Published: i%2 == 0, // 3 published, 2 drafts
		}
		if n.Published {
			now := time.Now().UTC()
			n.PublishedAt = &now
		}
		require.NoError(t, s.Notifications().CreateNotification(ctx, n))
	}

	published, total, err := s.Notifications().ListPublished(ctx, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, published, 2)
	// Newest first
	require.Greater(t, published[0].ID, published[1].ID)

	rest, _, err := s.Notifications().ListPublished(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)

	all, total, err := s.Notifications().ListAll(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, all, 5)
}

func TestNotificationUpdateAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	admin := createTestUser(t, s, "admin")
	n := domain.Notification{
		ID:        idx.New().String(),
		Title:     "draft",
		Body:      "wip",
		Priority:  domain.PriorityLow,
		CreatedBy: admin.ID,
	}
	require.NoError(t, s.Notifications().CreateNotification(ctx, n))

	now := time.Now().UTC()
	n.Title = "final"
	n.Published = true
	n.PublishedAt = &now
	require.NoError(t, s.Notifications().UpdateNotification(ctx, n))

	got, err := s.Notifications().GetNotificationByID(ctx, n.ID)
	require.NoError(t, err)
	require.Equal(t, "final", got.Title)
	require.True(t, got.Published)
	require.NotNil(t, got.PublishedAt)

	require.NoError(t, s.Notifications().DeleteNotification(ctx, n.ID))
	_, err = s.Notifications().GetNotificationByID(ctx, n.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Notifications().UpdateNotification(ctx, n)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestBackupCodes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice")

	require.NoError(t, s.BackupCodes().CreateBackupCode(ctx, u.ID, "hash1"))
	require.NoError(t, s.BackupCodes().CreateBackupCode(ctx, u.ID, "hash2"))

	count, err := s.BackupCodes().CountUserBackupCodes(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	ok, err := s.BackupCodes().VerifyBackupCode(ctx, u.ID, "hash1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.BackupCodes().VerifyBackupCode(ctx, u.ID, "nope")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.BackupCodes().DeleteBackupCode(ctx, u.ID, "hash1"))
	ok, err = s.BackupCodes().VerifyBackupCode(ctx, u.ID, "hash1")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.BackupCodes().DeleteAllBackupCodes(ctx, u.ID))
	count, err = s.BackupCodes().CountUserBackupCodes(ctx, u.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestLoginChallenges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice")
	now := time.Now().UTC()

	c := domain.LoginChallenge{
		ID:        idx.New().String(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}
	require.NoError(t, s.LoginChallenges().CreateLoginChallenge(ctx, c))

	got, err := s.LoginChallenges().GetLoginChallenge(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.UserID)
	require.Zero(t, got.Attempts)

	got, err = s.LoginChallenges().IncrementLoginChallengeAttempts(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Attempts)

	require.NoError(t, s.LoginChallenges().DeleteLoginChallenge(ctx, c.ID))
	_, err = s.LoginChallenges().GetLoginChallenge(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestExpiredLoginChallengeHidden(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "alice")
	now := time.Now().UTC()

	expired := domain.LoginChallenge{
		ID:        idx.New().String(),
		UserID:    u.ID,
		CreatedAt: now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	}
	require.NoError(t, s.LoginChallenges().CreateLoginChallenge(ctx, expired))

	_, err := s.LoginChallenges().GetLoginChallenge(ctx, expired.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.LoginChallenges().DeleteExpiredLoginChallenges(ctx))
}

func TestWithTxRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	wantErr := context.Canceled
	err := s.WithTx(ctx, func(tx store.Tx) error {
		createErr := tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     "rollback",
			PasswordHash: "x",
		})
		require.NoError(t, createErr)
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	_, err = s.Users().GetUserByUsername(ctx, "rollback")
	require.ErrorIs(t, err, store.ErrNotFound)
}
