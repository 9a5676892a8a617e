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

const inquiryColumns = `i.id, i.property_id, i.inquirer_id, i.property_owner_id, i.subject, i.message,
	i.inquirer_email, i.inquirer_phone, i.status, COALESCE(i.response_message, ''),
	i.responded_at, COALESCE(i.responded_by::text, ''), i.is_read, i.priority, i.created_at, i.updated_at`

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	iq := &entity.Inquiry{}
	err := row.Scan(&iq.ID, &iq.PropertyID, &iq.InquirerID, &iq.PropertyOwnerID, &iq.Subject, &iq.Message,
		&iq.InquirerContact.Email, &iq.InquirerContact.Phone, &iq.Status, &iq.Response.Message,
		&iq.Response.RespondedAt, &iq.Response.RespondedBy, &iq.IsRead, &iq.Priority,
		&iq.CreatedAt, &iq.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return iq, nil
}

func (r *InquiryRepository) Create(ctx context.Context, iq *entity.Inquiry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO inquiries (property_id, inquirer_id, property_owner_id, subject, message,
			inquirer_email, inquirer_phone, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, is_read, created_at, updated_at
	`, iq.PropertyID, iq.InquirerID, iq.PropertyOwnerID, iq.Subject, iq.Message,
		iq.InquirerContact.Email, iq.InquirerContact.Phone, iq.Priority)

	return row.Scan(&iq.ID, &iq.Status, &iq.IsRead, &iq.CreatedAt, &iq.UpdatedAt)
}

func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	return scanInquiry(r.pool.QueryRow(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries i WHERE i.id = $1`, id))
}

func (r *InquiryRepository) List(ctx context.Context, f repository.InquiryFilter) ([]entity.Inquiry, int64, error) {
	where := " WHERE 1=1"
	args := []any{}
	idx := 1
	if f.PropertyOwnerID != "" {
		where += fmt.Sprintf(" AND i.property_owner_id = $%d", idx)
		args = append(args, f.PropertyOwnerID)
		idx++
	}
	if f.InquirerID != "" {
		where += fmt.Sprintf(" AND i.inquirer_id = $%d", idx)
		args = append(args, f.InquirerID)
		idx++
	}
	if f.Status != "" {
		where += fmt.Sprintf(" AND i.status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries i`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// Join the property title and the inquirer's contact for list views.
	query := `SELECT ` + inquiryColumns + `,
			p.id, p.title, p.price, p.currency, p.status,
			u.id, u.first_name, u.last_name, u.email, u.phone
		FROM inquiries i
		JOIN properties p ON p.id = i.property_id
		JOIN users u ON u.id = i.inquirer_id` + where +
		fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []entity.Inquiry{}
	for rows.Next() {
		iq := entity.Inquiry{}
		prop := entity.Property{}
		inquirer := entity.User{}
		err := rows.Scan(&iq.ID, &iq.PropertyID, &iq.InquirerID, &iq.PropertyOwnerID, &iq.Subject, &iq.Message,
			&iq.InquirerContact.Email, &iq.InquirerContact.Phone, &iq.Status, &iq.Response.Message,
			&iq.Response.RespondedAt, &iq.Response.RespondedBy, &iq.IsRead, &iq.Priority,
			&iq.CreatedAt, &iq.UpdatedAt,
			&prop.ID, &prop.Title, &prop.Price, &prop.Currency, &prop.Status,
			&inquirer.ID, &inquirer.FirstName, &inquirer.LastName, &inquirer.Email, &inquirer.Phone)
		if err != nil {
			return nil, 0, err
		}
		iq.Property = &prop
		iq.Inquirer = &inquirer
		out = append(out, iq)
	}
	return out, total, rows.Err()
}

func (r *InquiryRepository) Respond(ctx context.Context, id, responderID, message string) (*entity.Inquiry, error) {
	return scanInquiry(r.pool.QueryRow(ctx, `
		UPDATE inquiries i
		SET status = 'responded', response_message = $2, responded_by = $3,
		    responded_at = now(), is_read = true, updated_at = now()
		WHERE i.id = $1
		RETURNING `+inquiryColumns, id, message, responderID))
}

func (r *InquiryRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE inquiries SET is_read = true, updated_at = now() WHERE id = $1`, id)
	return err
}

func (r *InquiryRepository) CountByStatus(ctx context.Context) (map[entity.InquiryStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM inquiries GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[entity.InquiryStatus]int64{}
	for rows.Next() {
		var status entity.InquiryStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

var _ repository.InquiryRepository = (*InquiryRepository)(nil)
