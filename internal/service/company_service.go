package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"xintern-backend/internal/config"
	"xintern-backend/internal/domain"
	"xintern-backend/internal/repository"
	"xintern-backend/internal/validate"
)

const (
	topCompaniesLimit     = 12
	groupedSearchLimit    = 10
	topCompaniesCacheKey  = "companies:top"
	companyGroupsCacheKey = "companies:groups"
)

type CompanyService interface {
	Create(ctx context.Context, input domain.CreateCompanyInput) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, payload map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	AllGroups(ctx context.Context) ([]domain.CompanyGroup, error)
	GroupsByName(ctx context.Context, name string) ([]domain.CompanyGroup, error)
	Top(ctx context.Context) ([]domain.TopCompany, error)
	Locations(ctx context.Context, name string) ([]*string, error)
	UploadLogo(ctx context.Context, id uuid.UUID, imageData string) (string, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
	minioClient *minio.Client
	redis       *redis.Client
	cfg         *config.Config
}

func NewCompanyService(companyRepo repository.CompanyRepository, minioClient *minio.Client, redis *redis.Client, cfg *config.Config) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		minioClient: minioClient,
		redis:       redis,
		cfg:         cfg,
	}
}

func (s *companyService) Create(ctx context.Context, input domain.CreateCompanyInput) (uuid.UUID, error) {
	if strings.TrimSpace(input.Name) == "" {
		return uuid.Nil, domain.CreateFailedErr("Company could not be created.")
	}

	company := &domain.Company{
		ID:       uuid.New(),
		Name:     input.Name,
		Logo:     input.Logo,
		Location: input.Location,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		log.Printf("create company: %v", err)
		return uuid.Nil, domain.CreateFailedErr("Company could not be created.")
	}

	s.invalidateAggregates(ctx)
	return company.ID, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFoundErr("Company does not exist.")
	}
	return company, nil
}

func (s *companyService) Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	if filter.Empty() {
		return nil, domain.ValidationErr("Insufficient parameters supplied")
	}
	return s.companyRepo.Find(ctx, filter)
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, payload map[string]any) error {
	if err := validate.CompanyUpdate.Check(payload); err != nil {
		log.Printf("update company %s: %v", id, err)
		return domain.ValidationErr("payload does not match model.")
	}

	company := &domain.Company{
		ID:   id,
		Name: payload["name"].(string),
	}
	if logo, ok := payload["logo"].(string); ok {
		company.Logo = &logo
	}
	if location, ok := payload["location"].(string); ok {
		company.Location = &location
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return err
	}

	s.invalidateAggregates(ctx)
	return nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFoundErr("Could not delete company.")
	}

	s.invalidateAggregates(ctx)
	return nil
}

// AllGroups aggregates the whole table by lower-cased name, one
// representative original-cased name and logo per bucket.
func (s *companyService) AllGroups(ctx context.Context) ([]domain.CompanyGroup, error) {
	cacheKey := companyGroupsCacheKey + ":all"
	if groups, ok := cacheGet[[]domain.CompanyGroup](ctx, s.redis, cacheKey); ok {
		return groups, nil
	}

	groups, err := s.companyRepo.Groups(ctx, "", 0)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.redis, cacheKey, groups)
	return groups, nil
}

func (s *companyService) GroupsByName(ctx context.Context, name string) ([]domain.CompanyGroup, error) {
	if name == "" {
		return nil, domain.ValidationErr("Company name not supplied")
	}

	cacheKey := companyGroupsCacheKey + ":q:" + strings.ToLower(name)
	if groups, ok := cacheGet[[]domain.CompanyGroup](ctx, s.redis, cacheKey); ok {
		return groups, nil
	}

	groups, err := s.companyRepo.Groups(ctx, name, groupedSearchLimit)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.redis, cacheKey, groups)
	return groups, nil
}

func (s *companyService) Top(ctx context.Context) ([]domain.TopCompany, error) {
	if top, ok := cacheGet[[]domain.TopCompany](ctx, s.redis, topCompaniesCacheKey); ok {
		return top, nil
	}

	top, err := s.companyRepo.Top(ctx, topCompaniesLimit)
	if err != nil {
		return nil, err
	}

	cacheSet(ctx, s.redis, topCompaniesCacheKey, top)
	return top, nil
}

// Locations lists the location of every company carrying the exact
// name, null entries included.
func (s *companyService) Locations(ctx context.Context, name string) ([]*string, error) {
	companies, err := s.companyRepo.FindByExactName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.NotFoundErr("No companies found.")
	}

	locations := make([]*string, len(companies))
	for i := range companies {
		locations[i] = companies[i].Location
	}
	return locations, nil
}

// UploadLogo accepts a base64 data-URL image, stores it in the object
// store and points the company's logo at the public URL.
func (s *companyService) UploadLogo(ctx context.Context, id uuid.UUID, imageData string) (string, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	ext, contentType := logoExtension(imageData)
	if ext == "" {
		return "", domain.ValidationErr("Incorrect image format supplied")
	}

	raw := imageData
	if idx := strings.Index(raw, ","); idx >= 0 {
		raw = raw[idx+1:]
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", domain.ValidationErr("Incorrect image format supplied")
	}

	if s.minioClient == nil {
		return "", fmt.Errorf("Could not upload image")
	}

	objectName := "company/" + strings.ReplaceAll(company.Name, " ", "-") + "_logo" + ext
	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectName,
		bytes.NewReader(decoded), int64(len(decoded)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Printf("upload logo for company %s: %v", id, err)
		return "", fmt.Errorf("Could not upload image")
	}

	logoURL := s.publicURL(objectName)
	if err := s.companyRepo.UpdateLogo(ctx, id, logoURL); err != nil {
		return "", err
	}

	s.invalidateAggregates(ctx)
	return logoURL, nil
}

func (s *companyService) publicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectName)
}

func (s *companyService) invalidateAggregates(ctx context.Context) {
	dropCacheKeys(ctx, s.redis, topCompaniesCacheKey, companyGroupsCacheKey+":*")
}

func logoExtension(imageData string) (ext, contentType string) {
	switch {
	case strings.Contains(imageData, "image/jpg"), strings.Contains(imageData, "image/jpeg"):
		return ".jpg", "image/jpeg"
	case strings.Contains(imageData, "image/png"):
		return ".png", "image/png"
	case strings.Contains(imageData, "image/bmp"):
		return ".bmp", "image/bmp"
	}
	return "", ""
}

// Cache-aside helpers for the aggregation reads.
func cacheGet[T any](ctx context.Context, client *redis.Client, key string) (T, bool) {
	var zero T
	if client == nil {
		return zero, false
	}
	cached, err := client.Get(ctx, key).Result()
	if err != nil {
		return zero, false
	}
	var value T
	if json.Unmarshal([]byte(cached), &value) != nil {
		return zero, false
	}
	return value, true
}

func cacheSet[T any](ctx context.Context, client *redis.Client, key string, value T) {
	if client == nil {
		return
	}
	if raw, err := json.Marshal(value); err == nil {
		_ = client.Set(ctx, key, raw, cacheTTL).Err()
	}
}
