package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/repository"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*domain.Company)
	return company, args.Error(1)
}

func (m *mockCompanyRepo) FindByExactName(ctx context.Context, name string) ([]domain.Company, error) {
	args := m.Called(ctx, name)
	companies, _ := args.Get(0).([]domain.Company)
	return companies, args.Error(1)
}

func (m *mockCompanyRepo) ResolveByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	company, _ := args.Get(0).(*domain.Company)
	return company, args.Error(1)
}

func (m *mockCompanyRepo) Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	args := m.Called(ctx, filter)
	companies, _ := args.Get(0).([]domain.Company)
	return companies, args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanyRepo) UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error {
	return m.Called(ctx, id, logoURL).Error(0)
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompanyRepo) Groups(ctx context.Context, nameQuery string, limit int) ([]domain.CompanyGroup, error) {
	args := m.Called(ctx, nameQuery, limit)
	groups, _ := args.Get(0).([]domain.CompanyGroup)
	return groups, args.Error(1)
}

func (m *mockCompanyRepo) Top(ctx context.Context, limit int) ([]domain.TopCompany, error) {
	args := m.Called(ctx, limit)
	top, _ := args.Get(0).([]domain.TopCompany)
	return top, args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) SetFlagged(ctx context.Context, id uuid.UUID, flagged bool) error {
	return m.Called(ctx, id, flagged).Error(0)
}

func (m *mockReviewRepo) ListFlagged(ctx context.Context, params domain.PaginationParams) ([]domain.Review, int64, error) {
	args := m.Called(ctx, params)
	reviews, _ := args.Get(0).([]domain.Review)
	return reviews, args.Get(1).(int64), args.Error(2)
}

type mockRatingRepo struct{ mock.Mock }

func (m *mockRatingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *mockRatingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	rating, _ := args.Get(0).(*domain.Rating)
	return rating, args.Error(1)
}

func (m *mockRatingRepo) Update(ctx context.Context, rating *domain.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *mockRatingRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*domain.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentRepo) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	return m.Called(ctx, id, content).Error(0)
}

func (m *mockCommentRepo) Tombstone(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCommentRepo) DeleteByReview(ctx context.Context, reviewID uuid.UUID) error {
	return m.Called(ctx, reviewID).Error(0)
}

func (m *mockCommentRepo) ListByReview(ctx context.Context, reviewID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, reviewID)
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

type mockVoteRepo struct{ mock.Mock }

func (m *mockVoteRepo) CastReviewVote(ctx context.Context, reviewID, userID uuid.UUID, value int) error {
	return m.Called(ctx, reviewID, userID, value).Error(0)
}

func (m *mockVoteRepo) CastCommentVote(ctx context.Context, commentID, userID uuid.UUID, value int) error {
	return m.Called(ctx, commentID, userID, value).Error(0)
}

func (m *mockVoteRepo) ReviewVotes(ctx context.Context, reviewID uuid.UUID) (repository.VoteSets, error) {
	args := m.Called(ctx, reviewID)
	sets, _ := args.Get(0).(repository.VoteSets)
	return sets, args.Error(1)
}

func (m *mockVoteRepo) CommentVotes(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]repository.VoteSets, error) {
	args := m.Called(ctx, commentIDs)
	votes, _ := args.Get(0).(map[uuid.UUID]repository.VoteSets)
	return votes, args.Error(1)
}
