package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User    UserRepository
	Company CompanyRepository
	Review  ReviewRepository
	Rating  RatingRepository
	Comment CommentRepository
	Vote    VoteRepository
	Session SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Company: NewCompanyRepository(db),
		Review:  NewReviewRepository(db),
		Rating:  NewRatingRepository(db),
		Comment: NewCommentRepository(db),
		Vote:    NewVoteRepository(db),
		Session: NewSessionRepository(db),
	}
}
