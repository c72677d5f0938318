package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/commerce-api/internal/auth"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// GetByEmail loads the user and its roles in one round trip. Email matching
// ignores case.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.db).Query(ctx, `
		SELECT u.id, u.name, u.email, u.phone, u.birth_date, u.password, r.id, r.authority
		FROM tb_user u
		LEFT JOIN tb_user_role ur ON ur.user_id = u.id
		LEFT JOIN tb_role r ON r.id = ur.role_id
		WHERE LOWER(u.email) = LOWER($1)
		ORDER BY r.id
	`, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	defer rows.Close()

	var u *User
	for rows.Next() {
		var (
			row       User
			roleID    *int64
			authority *string
		)
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.Phone, &row.BirthDate,
			&row.PasswordHash, &roleID, &authority); err != nil {
			return nil, err
		}
		if u == nil {
			u = &row
		}
		if roleID != nil && authority != nil {
			u.Roles = append(u.Roles, Role{ID: *roleID, Authority: auth.Role(*authority)})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
