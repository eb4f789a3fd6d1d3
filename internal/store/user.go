package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/entity"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin
func (as *adminStore) AddAdmin(ctx context.Context, email, pwHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		_, err := ExecNamed(ctx, rep.DB(), `
		INSERT INTO admins
		(email, password_hash)
		VALUES
		(:email, :passwordHash)`, map[string]any{
			"email":        email,
			"passwordHash": pwHash,
		})
		if err != nil {
			if rep.IsErrUniqueViolation(err) {
				return gerr.ErrAdminExists
			}
			return fmt.Errorf("can't add admin: %w", err)
		}
		return nil
	})
}

// DeleteAdmin deletes an admin
func (as *adminStore) DeleteAdmin(ctx context.Context, email string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		ra, err := ExecNamed(ctx, rep.DB(), `DELETE FROM admins WHERE email = :email`, map[string]any{
			"email": email,
		})
		if err != nil {
			return fmt.Errorf("failed to delete admin: %w", err)
		}
		if ra == 0 {
			return gerr.ErrAdminNotFound
		}
		return nil
	})
}

// ChangePassword changes the password of an admin
func (as *adminStore) ChangePassword(ctx context.Context, email, newHash string) error {
	return as.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		ra, err := ExecNamed(ctx, rep.DB(), `
			UPDATE admins
			SET password_hash = :passwordHash
			WHERE email = :email`, map[string]any{
			"email":        email,
			"passwordHash": newHash,
		})
		if err != nil {
			return fmt.Errorf("failed change admin password: %w", err)
		}
		if ra == 0 {
			return gerr.ErrAdminNotFound
		}
		return nil
	})
}

// PasswordHashByEmail returns password hash of an admin
func (as *adminStore) PasswordHashByEmail(ctx context.Context, email string) (string, error) {
	adm, err := as.GetAdminByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return adm.PasswordHash, nil
}

// GetAdminByEmail returns admin by email
func (as *adminStore) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	adm, err := QueryNamedOne[entity.Admin](ctx, as.DB(), `
		SELECT
		id,
		email,
		password_hash
		FROM admins WHERE email = :email`, map[string]any{
		"email": email,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrAdminNotFound
		}
		return nil, fmt.Errorf("can't get admin: %w", err)
	}
	return &adm, nil
}
