package application

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/internal/domain/entity"
	repo "github.com/addisestates/backend/internal/domain/repository"
	"github.com/addisestates/backend/internal/infrastructure/postgres"
	"github.com/addisestates/backend/pkg/helpers"
)

// PropertyService covers the listing lifecycle: create, owner edits, public
// reads with the approved+active gate, image uploads, and the secondary
// Elasticsearch index.
type PropertyService struct {
	Properties repo.PropertyRepository
	GCS        *storage.Client
	GCSBucket  string
	Logger     *logrus.Logger
	ES         *elasticsearch.Client
	ESIndex    string
}

func NewPropertyService(properties repo.PropertyRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PropertyService {
	return &PropertyService{
		Properties: properties,
		GCS:        gcs,
		GCSBucket:  gcsBucket,
		Logger:     logger,
		ES:         es,
		ESIndex:    esIndex,
	}
}

type PropertyInput struct {
	Title       string
	Description string
	Category    string
	Type        string
	Price       float64
	Currency    string
	AreaSize    float64
	AreaUnit    string
	Location    entity.Location
	Features    entity.Features
	IsActive    *bool  // update only; nil keeps the current value
	Status      string // update only; owner moves between approved/sold/rented
}

// Create persists a new listing owned by the caller. The store forces
// status=pending, is_active=true and views=0 regardless of input; role and
// approval checks run upstream in the middleware chain.
func (s *PropertyService) Create(ctx context.Context, owner *entity.User, in PropertyInput) (*entity.Property, error) {
	p := &entity.Property{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Price:       in.Price,
		Currency:    defaultStr(in.Currency, "ETB"),
		AreaSize:    in.AreaSize,
		AreaUnit:    defaultStr(in.AreaUnit, "sqm"),
		Location:    in.Location,
		Features:    in.Features,
		Images:      []entity.PropertyImage{},
		OwnerID:     owner.ID,
	}
	if err := s.Properties.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"property_id": p.ID, "owner_id": owner.ID}).Info("property created, pending approval")
	}
	_ = s.indexProperty(ctx, p)
	return p, nil
}

// GetPublic returns a publicly visible listing and bumps its view counter.
// Listings that exist but are not approved+active read as not found.
func (s *PropertyService) GetPublic(ctx context.Context, id string) (*entity.Property, error) {
	p, err := s.Properties.GetVisibleByID(ctx, id)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	// Every fetch counts; the increment is a single-row update so concurrent
	// fetches cannot lose counts.
	if err := s.Properties.IncrementViews(ctx, id); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", id).Warn("view increment failed")
		}
	} else {
		p.Views++
	}
	return p, nil
}

// List runs the filtered public or admin listing query.
func (s *PropertyService) List(ctx context.Context, f repo.PropertyFilter) ([]entity.Property, int64, error) {
	return s.Properties.List(ctx, f)
}

// ListMine returns all of the caller's listings, any status, newest first.
func (s *PropertyService) ListMine(ctx context.Context, ownerID string) ([]entity.Property, error) {
	return s.Properties.ListByOwner(ctx, ownerID)
}

// Update applies an owner edit. Only the owning user may update, regardless
// of role or moderation state.
func (s *PropertyService) Update(ctx context.Context, user *entity.User, id string, in PropertyInput) (*entity.Property, error) {
	p, err := s.ownedProperty(ctx, user, id)
	if err != nil {
		return nil, err
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Description = in.Description
	p.Category = in.Category
	p.Type = in.Type
	p.Price = in.Price
	p.Currency = defaultStr(in.Currency, p.Currency)
	p.AreaSize = in.AreaSize
	p.AreaUnit = defaultStr(in.AreaUnit, p.AreaUnit)
	p.Location = in.Location
	p.Features = in.Features
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	// Owners mark approved listings sold or rented (and back) themselves;
	// pending and rejected listings stay in moderation's hands. A locked
	// status change rejects the whole edit before anything is written.
	statusChange := in.Status != "" && in.Status != string(p.Status)
	if statusChange {
		switch p.Status {
		case entity.StatusApproved, entity.StatusSold, entity.StatusRented:
		default:
			return nil, ErrStatusLocked
		}
	}

	if err := s.Properties.Update(ctx, p); err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if statusChange {
		if err := s.Properties.SetStatus(ctx, id, entity.PropertyStatus(in.Status)); err != nil {
			if postgres.IsNotFound(err) {
				return nil, ErrStatusLocked
			}
			return nil, err
		}
		p.Status = entity.PropertyStatus(in.Status)
	}

	_ = s.indexProperty(ctx, p)
	return p, nil
}

// Delete removes an owned listing along with its stored images and search
// document.
func (s *PropertyService) Delete(ctx context.Context, user *entity.User, id string) error {
	p, err := s.ownedProperty(ctx, user, id)
	if err != nil {
		return err
	}
	if err := s.Properties.Delete(ctx, id); err != nil {
		if postgres.IsNotFound(err) {
			return ErrPropertyNotFound
		}
		return err
	}
	s.removeImages(ctx, p)
	s.removeFromIndex(ctx, id)
	return nil
}

// removeImages drops the listing's GCS objects. The row is already gone, so
// failures only leave orphaned objects behind and are logged, not returned.
func (s *PropertyService) removeImages(ctx context.Context, p *entity.Property) {
	if s.GCS == nil {
		return
	}
	for _, img := range p.Images {
		objectPath := helpers.ObjectPathFromURL(s.GCSBucket, img.Filename)
		if objectPath == "" {
			continue
		}
		if err := helpers.DeleteObject(ctx, s.GCS, s.GCSBucket, objectPath); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("object", objectPath).Warn("image object delete failed")
		}
	}
}

// UploadImages stores up to ten images in GCS and appends them to the
// listing. File count, size and content-type limits are enforced by the
// handler before the bytes reach this method.
func (s *PropertyService) UploadImages(ctx context.Context, user *entity.User, id string, files []ImageUpload) (*entity.Property, error) {
	if _, err := s.ownedProperty(ctx, user, id); err != nil {
		return nil, err
	}

	images := make([]entity.PropertyImage, 0, len(files))
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Filename))
		objectPath := filepath.ToSlash(filepath.Join("properties", id, uuid.NewString()+ext))
		url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, f.ContentType, f.Reader)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("property_id", id).Error("image upload failed")
			}
			return nil, err
		}
		images = append(images, entity.PropertyImage{Filename: url, Caption: f.Caption})
	}

	p, err := s.Properties.AppendImages(ctx, id, images)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

// ImageUpload is one multipart file accepted by UploadImages.
type ImageUpload struct {
	Filename    string
	ContentType string
	Caption     string
	Reader      io.Reader
}

func (s *PropertyService) ownedProperty(ctx context.Context, user *entity.User, id string) (*entity.Property, error) {
	p, err := s.Properties.GetByID(ctx, id)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if p.OwnerID != user.ID {
		return nil, ErrNotOwner
	}
	return p, nil
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// indexProperty mirrors the listing into Elasticsearch. Index failures are
// logged and never fail the write that triggered them.
func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"type":        p.Type,
		"price":       p.Price,
		"city":        p.Location.City,
		"subcity":     p.Location.Subcity,
		"status":      p.Status,
		"is_active":   p.IsActive,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PropertyService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}

// Search performs a multi_match query against the secondary index, limited
// to publicly visible listings.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description", "city"},
					},
				},
				"filter": []map[string]any{
					{"terms": map[string]any{"status": []string{"approved", "sold", "rented"}}},
					{"term": map[string]any{"is_active": true}},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
