package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/handler"
	"xintern-backend/internal/middleware"
)

type mockCompanyService struct{ mock.Mock }

func (m *mockCompanyService) Create(ctx context.Context, input domain.CreateCompanyInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockCompanyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*domain.Company)
	return company, args.Error(1)
}

func (m *mockCompanyService) Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	args := m.Called(ctx, filter)
	companies, _ := args.Get(0).([]domain.Company)
	return companies, args.Error(1)
}

func (m *mockCompanyService) Update(ctx context.Context, id uuid.UUID, payload map[string]any) error {
	return m.Called(ctx, id, payload).Error(0)
}

func (m *mockCompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCompanyService) AllGroups(ctx context.Context) ([]domain.CompanyGroup, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]domain.CompanyGroup)
	return groups, args.Error(1)
}

func (m *mockCompanyService) GroupsByName(ctx context.Context, name string) ([]domain.CompanyGroup, error) {
	args := m.Called(ctx, name)
	groups, _ := args.Get(0).([]domain.CompanyGroup)
	return groups, args.Error(1)
}

func (m *mockCompanyService) Top(ctx context.Context) ([]domain.TopCompany, error) {
	args := m.Called(ctx)
	top, _ := args.Get(0).([]domain.TopCompany)
	return top, args.Error(1)
}

func (m *mockCompanyService) Locations(ctx context.Context, name string) ([]*string, error) {
	args := m.Called(ctx, name)
	locations, _ := args.Get(0).([]*string)
	return locations, args.Error(1)
}

func (m *mockCompanyService) UploadLogo(ctx context.Context, id uuid.UUID, imageData string) (string, error) {
	args := m.Called(ctx, id, imageData)
	return args.String(0), args.Error(1)
}

func companyTestApp(svc *mockCompanyService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	h := handler.NewCompanyHandler(svc)
	app.Delete("/companies/:companyId", h.Delete)
	app.Get("/companies/search/:companyName", h.Search)
	return app
}

func TestCompanyDeleteEnvelope(t *testing.T) {
	svc := &mockCompanyService{}
	app := companyTestApp(svc)
	id := uuid.New()

	svc.On("Delete", mock.Anything, id).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/companies/"+id.String(), nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body["company_id"])
	assert.Equal(t, "Company successfully DELETED.", body["message"])
}

func TestCompanyDeleteMissingIs404(t *testing.T) {
	svc := &mockCompanyService{}
	app := companyTestApp(svc)
	id := uuid.New()

	svc.On("Delete", mock.Anything, id).Return(domain.NotFoundErr("Could not delete company."))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/companies/"+id.String(), nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Could not delete company.", body["message"])
}

// The search path parameter may arrive with literal %20 escapes left in
// by the client; they are folded back to spaces before the lookup.
func TestCompanySearchUnescapesName(t *testing.T) {
	svc := &mockCompanyService{}
	app := companyTestApp(svc)

	svc.On("GroupsByName", mock.Anything, "Acme Corp").
		Return([]domain.CompanyGroup{{GroupKey: "acme corp", Name: "Acme Corp"}}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/companies/search/Acme%20Corp", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}
