package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/driftlock/noticeboard/internal/notice/domain"
	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/cryptox"
	"github.com/driftlock/noticeboard/pkg/idx"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

var ErrBootstrapFailedToCreateAdmin = errors.New("failed to create admin user")

// BootstrapService seeds the default administrator account on first start so
// a fresh deployment is usable without manual database surgery.
type BootstrapService struct {
	Store store.Store
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the admin account if the user table is empty. It returns
// the admin's user ID, or "" when the system was already bootstrapped.
func (s *BootstrapService) Bootstrap(ctx context.Context, req domain.BootstrapData) (string, error) {
	l := slogx.FromContext(ctx)

	// 1. Check if already bootstrapped
	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return "", err
	} else if bootstrapped {
		return "", nil
	}

	// 2. Hash the admin password
	passHash, err := cryptox.HashPassword(req.AdminPassword)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", ErrBootstrapFailedToCreateAdmin
	}

	// 3. Create the admin user
	adminUserID := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           adminUserID,
		Username:     req.AdminUsername,
		PasswordHash: passHash,
		IsAdmin:      true,
	})
	if err != nil {
		// Another replica won the race; nothing to do.
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", nil
		}
		l.Error("failed to create admin user", slog.Any("error", err))
		return "", ErrBootstrapFailedToCreateAdmin
	}

	l.Warn("default admin account created, change its password",
		slog.String("username", req.AdminUsername),
		slog.String("user_id", adminUserID),
	)

	return adminUserID, nil
}
