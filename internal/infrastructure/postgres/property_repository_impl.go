package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/internal/domain/repository"
)

const propertyColumns = `p.id, p.title, p.description, p.category, p.type, p.price, p.currency,
	p.area_size, p.area_unit, p.city, p.subcity, COALESCE(p.woreda, ''), COALESCE(p.kebele, ''),
	p.latitude, p.longitude, p.bedrooms, p.bathrooms, p.parking, p.furnished, p.garden, p.security,
	p.images, p.owner_id, p.status, p.is_active, p.views, p.approved_by, p.approved_at,
	COALESCE(p.rejection_reason, ''), p.created_at, p.updated_at`

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	p := &entity.Property{}
	var images []byte
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Type, &p.Price, &p.Currency,
		&p.AreaSize, &p.AreaUnit, &p.Location.City, &p.Location.Subcity, &p.Location.Woreda, &p.Location.Kebele,
		&p.Location.Latitude, &p.Location.Longitude,
		&p.Features.Bedrooms, &p.Features.Bathrooms, &p.Features.Parking, &p.Features.Furnished,
		&p.Features.Garden, &p.Features.Security,
		&images, &p.OwnerID, &p.Status, &p.IsActive, &p.Views, &p.ApprovedBy, &p.ApprovedAt,
		&p.RejectionReason, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Images = []entity.PropertyImage{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// scanPropertyWithOwner expects propertyColumns followed by the owner's
// public contact columns.
func scanPropertyWithOwner(row pgx.Row) (*entity.Property, error) {
	p := &entity.Property{}
	o := &entity.User{}
	var images []byte
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Type, &p.Price, &p.Currency,
		&p.AreaSize, &p.AreaUnit, &p.Location.City, &p.Location.Subcity, &p.Location.Woreda, &p.Location.Kebele,
		&p.Location.Latitude, &p.Location.Longitude,
		&p.Features.Bedrooms, &p.Features.Bathrooms, &p.Features.Parking, &p.Features.Furnished,
		&p.Features.Garden, &p.Features.Security,
		&images, &p.OwnerID, &p.Status, &p.IsActive, &p.Views, &p.ApprovedBy, &p.ApprovedAt,
		&p.RejectionReason, &p.CreatedAt, &p.UpdatedAt,
		&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.Images = []entity.PropertyImage{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	p.Owner = o
	return p, nil
}

// buildPropertyWhere translates the recognized filter parameters into a SQL
// predicate. Empty fields add no clause.
func buildPropertyWhere(f repository.PropertyFilter) (string, []any) {
	where := " WHERE 1=1"
	args := []any{}
	add := func(clause string, v any) {
		args = append(args, v)
		where += fmt.Sprintf(clause, len(args))
	}

	if f.PublicOnly {
		where += " AND p.status IN ('approved', 'sold', 'rented') AND p.is_active = true"
	} else if f.Status != "" {
		add(" AND p.status = $%d", f.Status)
	}
	if f.OwnerID != "" {
		add(" AND p.owner_id = $%d", f.OwnerID)
	}
	if f.Category != "" {
		add(" AND p.category = $%d", f.Category)
	}
	if f.Type != "" {
		add(" AND p.type = $%d", f.Type)
	}
	if f.City != "" {
		add(" AND p.city ILIKE '%%' || $%d || '%%'", f.City)
	}
	if f.Subcity != "" {
		add(" AND p.subcity ILIKE '%%' || $%d || '%%'", f.Subcity)
	}
	if f.MinPrice != nil {
		add(" AND p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add(" AND p.price <= $%d", *f.MaxPrice)
	}
	if f.MinArea != nil {
		add(" AND p.area_size >= $%d", *f.MinArea)
	}
	if f.MaxArea != nil {
		add(" AND p.area_size <= $%d", *f.MaxArea)
	}
	if f.Bedrooms != nil {
		add(" AND p.bedrooms >= $%d", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		add(" AND p.bathrooms >= $%d", *f.Bathrooms)
	}
	if f.Parking {
		where += " AND p.parking = true"
	}
	if f.Furnished {
		where += " AND p.furnished = true"
	}
	if f.Garden {
		where += " AND p.garden = true"
	}
	if f.Security {
		where += " AND p.security = true"
	}
	if f.Search != "" {
		add(" AND p.search_vec @@ plainto_tsquery('english', $%d)", f.Search)
	}
	return where, args
}

// orderBy maps the recognized sort keys onto SQL; unknown keys fall back to
// newest first.
func orderBy(sortBy string) string {
	switch sortBy {
	case repository.SortPriceAsc:
		return " ORDER BY p.price ASC"
	case repository.SortPriceDesc:
		return " ORDER BY p.price DESC"
	case repository.SortAreaAsc:
		return " ORDER BY p.area_size ASC"
	case repository.SortAreaDesc:
		return " ORDER BY p.area_size DESC"
	case repository.SortViews:
		return " ORDER BY p.views DESC"
	default:
		return " ORDER BY p.created_at DESC"
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	// Status, is_active and views take their column defaults: every new
	// listing starts pending, active, with zero views.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, description, category, type, price, currency,
			area_size, area_unit, city, subcity, woreda, kebele, latitude, longitude,
			bedrooms, bathrooms, parking, furnished, garden, security, images, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, status, is_active, views, created_at, updated_at
	`, p.Title, p.Description, p.Category, p.Type, p.Price, p.Currency,
		p.AreaSize, p.AreaUnit, p.Location.City, p.Location.Subcity, p.Location.Woreda, p.Location.Kebele,
		p.Location.Latitude, p.Location.Longitude,
		p.Features.Bedrooms, p.Features.Bathrooms, p.Features.Parking, p.Features.Furnished,
		p.Features.Garden, p.Features.Security, images, p.OwnerID)

	return row.Scan(&p.ID, &p.Status, &p.IsActive, &p.Views, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	return scanProperty(r.pool.QueryRow(ctx,
		`SELECT `+propertyColumns+` FROM properties p WHERE p.id = $1`, id))
}

func (r *PropertyRepository) GetVisibleByID(ctx context.Context, id string) (*entity.Property, error) {
	// Unapproved or deactivated listings are indistinguishable from missing
	// ones to the public.
	return scanPropertyWithOwner(r.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+`, u.id, u.first_name, u.last_name, u.email, u.phone, u.role
		FROM properties p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1 AND p.status IN ('approved', 'sold', 'rented') AND p.is_active = true
	`, id))
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE properties SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PropertyRepository) List(ctx context.Context, f repository.PropertyFilter) ([]entity.Property, int64, error) {
	where, args := buildPropertyWhere(f)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties p`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + propertyColumns + `, u.id, u.first_name, u.last_name, u.email, u.phone, u.role
		FROM properties p
		JOIN users u ON u.id = p.owner_id` + where + orderBy(f.SortBy) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Page.Limit, f.Page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	props := []entity.Property{}
	for rows.Next() {
		p, err := scanPropertyWithOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		props = append(props, *p)
	}
	return props, total, rows.Err()
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+` FROM properties p
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	props := []entity.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		props = append(props, *p)
	}
	return props, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	// Owner, status and moderation stamps are never written here; those move
	// only through Create, Approve and Reject.
	res, err := r.pool.Exec(ctx, `
		UPDATE properties SET
			title = $2, description = $3, category = $4, type = $5, price = $6, currency = $7,
			area_size = $8, area_unit = $9, city = $10, subcity = $11, woreda = $12, kebele = $13,
			latitude = $14, longitude = $15, bedrooms = $16, bathrooms = $17,
			parking = $18, furnished = $19, garden = $20, security = $21,
			images = $22, is_active = $23, updated_at = now()
		WHERE id = $1
	`, p.ID, p.Title, p.Description, p.Category, p.Type, p.Price, p.Currency,
		p.AreaSize, p.AreaUnit, p.Location.City, p.Location.Subcity, p.Location.Woreda, p.Location.Kebele,
		p.Location.Latitude, p.Location.Longitude, p.Features.Bedrooms, p.Features.Bathrooms,
		p.Features.Parking, p.Features.Furnished, p.Features.Garden, p.Features.Security,
		images, p.IsActive)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus moves a listing between the publicly visible states. The WHERE
// clause keeps pending and rejected listings out of owner reach; those
// transition only through moderation.
func (r *PropertyRepository) SetStatus(ctx context.Context, id string, status entity.PropertyStatus) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status IN ('approved', 'sold', 'rented')
	`, id, status)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) AppendImages(ctx context.Context, id string, images []entity.PropertyImage) (*entity.Property, error) {
	b, err := json.Marshal(images)
	if err != nil {
		return nil, err
	}
	return scanProperty(r.pool.QueryRow(ctx, `
		UPDATE properties p
		SET images = p.images || $2::jsonb, updated_at = now()
		WHERE p.id = $1
		RETURNING `+propertyColumns, id, b))
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) Approve(ctx context.Context, id, adminID string, at time.Time) (*entity.Property, error) {
	// Re-approval simply re-stamps the approver and time.
	return scanProperty(r.pool.QueryRow(ctx, `
		UPDATE properties p
		SET status = 'approved', approved_by = $2, approved_at = $3,
		    rejection_reason = NULL, updated_at = now()
		WHERE p.id = $1
		RETURNING `+propertyColumns, id, adminID, at))
}

func (r *PropertyRepository) Reject(ctx context.Context, id, reason string) (*entity.Property, error) {
	return scanProperty(r.pool.QueryRow(ctx, `
		UPDATE properties p
		SET status = 'rejected', rejection_reason = $2,
		    approved_by = NULL, approved_at = NULL, updated_at = now()
		WHERE p.id = $1
		RETURNING `+propertyColumns, id, reason))
}

func (r *PropertyRepository) CountByStatus(ctx context.Context) (map[entity.PropertyStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM properties GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[entity.PropertyStatus]int64{}
	for rows.Next() {
		var status entity.PropertyStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
