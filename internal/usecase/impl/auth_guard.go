// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/usecase"

	"github.com/pkg/errors"
)

// requireSession re-validates the caller's session inside the current
// transaction. The middleware already resolved the token once, but a session
// revoked between that check and the write must still block the write, so the
// row is read again under the same transaction as the statement it guards.
func requireSession(ctx context.Context, repoFactory repository.RepositoryFactory, identity usecase.Identity) (*entity.Session, error) {
	session, err := repoFactory.SessionRepo().FindByID(ctx, identity.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session expired or revoked")
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

// requireAdmin is requireSession plus the admin role check. A role mismatch
// reports the same unauthorized signal as a missing session.
func requireAdmin(ctx context.Context, repoFactory repository.RepositoryFactory, identity usecase.Identity) (*entity.Session, error) {
	session, err := requireSession(ctx, repoFactory, identity)
	if err != nil {
		return nil, err
	}

	if session.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("admin role required")
	}

	return session, nil
}
