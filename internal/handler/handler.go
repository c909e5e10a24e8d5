package handler

import "xintern-backend/internal/service"

type Handlers struct {
	Auth    *AuthHandler
	Company *CompanyHandler
	Review  *ReviewHandler
	Comment *CommentHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(services.Auth),
		Company: NewCompanyHandler(services.Company),
		Review:  NewReviewHandler(services.Review),
		Comment: NewCommentHandler(services.Comment),
	}
}
