package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"xintern-backend/internal/config"
	"xintern-backend/internal/domain"
	"xintern-backend/internal/service"
)

func newCompanyFixture() (*mockCompanyRepo, service.CompanyService) {
	repo := &mockCompanyRepo{}
	return repo, service.NewCompanyService(repo, nil, nil, &config.Config{})
}

func TestCompanyCreate(t *testing.T) {
	repo, svc := newCompanyFixture()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
		return c.Name == "Initech" && c.ID != uuid.Nil
	})).Return(nil)

	id, err := svc.Create(context.Background(), domain.CreateCompanyInput{Name: "Initech"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	repo.AssertExpectations(t)
}

func TestCompanyCreateEmptyName(t *testing.T) {
	repo, svc := newCompanyFixture()

	_, err := svc.Create(context.Background(), domain.CreateCompanyInput{Name: "  "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCreateFailed))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyDelete(t *testing.T) {
	repo, svc := newCompanyFixture()
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(true, nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestCompanyDeleteMissing(t *testing.T) {
	repo, svc := newCompanyFixture()
	id := uuid.New()

	repo.On("Delete", mock.Anything, id).Return(false, nil)

	err := svc.Delete(context.Background(), id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Could not delete company.", err.Error())
}

func TestCompanyFindRequiresParameters(t *testing.T) {
	repo, svc := newCompanyFixture()

	_, err := svc.Find(context.Background(), domain.CompanyFilter{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestCompanyGroupsByNameRequiresName(t *testing.T) {
	_, svc := newCompanyFixture()

	_, err := svc.GroupsByName(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Company name not supplied", err.Error())
}

// Aggregation reads work without a cache backend: a nil client is a
// pass-through to the repository.
func TestCompanyGroupsWithoutCache(t *testing.T) {
	repo, svc := newCompanyFixture()

	repo.On("Groups", mock.Anything, "glo", 10).
		Return([]domain.CompanyGroup{{GroupKey: "globex", Name: "Globex"}}, nil)

	groups, err := svc.GroupsByName(context.Background(), "glo")

	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Globex", groups[0].Name)
}

func TestCompanyTop(t *testing.T) {
	repo, svc := newCompanyFixture()

	repo.On("Top", mock.Anything, 12).
		Return([]domain.TopCompany{{Name: "Globex", Count: 7}}, nil)

	top, err := svc.Top(context.Background())

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(7), top[0].Count)
}

func TestCompanyLocations(t *testing.T) {
	repo, svc := newCompanyFixture()
	berlin := "Berlin"

	repo.On("FindByExactName", mock.Anything, "Globex").Return([]domain.Company{
		{ID: uuid.New(), Name: "Globex", Location: &berlin},
		{ID: uuid.New(), Name: "Globex", Location: nil},
	}, nil)

	locations, err := svc.Locations(context.Background(), "Globex")

	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, &berlin, locations[0])
	assert.Nil(t, locations[1])
}

func TestCompanyLocationsNoneFound(t *testing.T) {
	repo, svc := newCompanyFixture()

	repo.On("FindByExactName", mock.Anything, "Nowhere Inc").Return([]domain.Company{}, nil)

	_, err := svc.Locations(context.Background(), "Nowhere Inc")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "No companies found.", err.Error())
}

func TestCompanyUploadLogoBadFormat(t *testing.T) {
	repo, svc := newCompanyFixture()
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).
		Return(&domain.Company{ID: id, Name: "Globex"}, nil)

	_, err := svc.UploadLogo(context.Background(), id, "data:image/gif;base64,R0lGOD")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Incorrect image format supplied", err.Error())
}
