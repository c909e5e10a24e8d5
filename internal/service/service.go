package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"xintern-backend/internal/config"
	"xintern-backend/internal/repository"
)

type Services struct {
	Auth    AuthService
	Company CompanyService
	Review  ReviewService
	Comment CommentService
	Email   EmailService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	authService := NewAuthService(repos.User, repos.Session, emailService, cfg)
	companyService := NewCompanyService(repos.Company, minioClient, redis, cfg)

	// Policy string is checked by cfg.Validate at startup.
	policy, _ := ParseOrphanPolicy(cfg.CommentOrphanPolicy)
	threads := NewThreadAssembler(policy)
	reviewService := NewReviewService(repos, threads, redis)
	commentService := NewCommentService(repos.Comment, repos.Review, repos.Vote, redis)

	return &Services{
		Auth:    authService,
		Company: companyService,
		Review:  reviewService,
		Comment: commentService,
		Email:   emailService,
	}
}
