package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/internal/domain/repository"
)

const userColumns = `id, first_name, last_name, email, phone, password_hash, role, is_verified, is_approved, COALESCE(profile_image, ''), created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Password,
		&u.Role, &u.IsVerified, &u.IsApproved, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	// is_approved follows the role at creation: buyers and admins are
	// auto-approved, listing roles wait for an admin.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, phone, password_hash, role, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $6 IN ('buyer', 'admin'))
		RETURNING id, is_verified, is_approved, created_at, updated_at
	`, u.FirstName, u.LastName, u.Email, u.Phone, u.Password, u.Role)

	return row.Scan(&u.ID, &u.IsVerified, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = lower($1)`, email))
}

func (r *UserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = lower($1) OR phone = $2)
	`, email, phone).Scan(&exists)
	return exists, err
}

func (r *UserRepository) List(ctx context.Context, f repository.UserFilter) ([]entity.User, int64, error) {
	where := " WHERE 1=1"
	args := []any{}
	idx := 1
	if f.Role != "" {
		where += fmt.Sprintf(" AND role = $%d", idx)
		args = append(args, f.Role)
		idx++
	}
	if f.IsApproved != nil {
		where += fmt.Sprintf(" AND is_approved = $%d", idx)
		args = append(args, *f.IsApproved)
		idx++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) SetApproval(ctx context.Context, id string, approved bool) (*entity.User, error) {
	// Approval also marks the account verified; revocation leaves the
	// verification flag untouched.
	return scanUser(r.pool.QueryRow(ctx, `
		UPDATE users
		SET is_approved = $2,
		    is_verified = CASE WHEN $2 THEN true ELSE is_verified END,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, approved))
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context) (map[entity.Role]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[entity.Role]int64{}
	for rows.Next() {
		var role entity.Role
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		out[role] = n
	}
	return out, rows.Err()
}

func (r *UserRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE is_approved = false AND role IN ('seller', 'landlord', 'agent')
	`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
