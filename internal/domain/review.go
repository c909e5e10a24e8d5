package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `json:"id" db:"review_id"`
	Salary    int       `json:"salary" db:"salary"`
	Content   string    `json:"content" db:"content"`
	Position  string    `json:"position" db:"position"`
	RatingID  uuid.UUID `json:"rating_id" db:"rating_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CompanyID uuid.UUID `json:"company_id" db:"company_id"`
	Flagged   bool      `json:"flagged" db:"flagged"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Populated on the read path only.
	Rating   *Rating     `json:"rating,omitempty" db:"-"`
	Company  *Company    `json:"company,omitempty" db:"-"`
	Upvotes  []uuid.UUID `json:"upvotes" db:"-"`
	Downvotes []uuid.UUID `json:"downvotes" db:"-"`
	Comments []*Comment  `json:"comments" db:"-"`
}

type CreateReviewInput struct {
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Salary      int       `json:"salary"`
	Content     string    `json:"content"`
	Position    string    `json:"position"`
	Culture     int       `json:"culture"`
	Mentorship  int       `json:"mentorship"`
	Impact      int       `json:"impact"`
	Interview   int       `json:"interview"`
}

func (in CreateReviewInput) Rating() RatingInput {
	return RatingInput{
		Culture:    in.Culture,
		Mentorship: in.Mentorship,
		Impact:     in.Impact,
		Interview:  in.Interview,
	}
}

// UpdateReviewInput carries the only three mutable review fields.
type UpdateReviewInput struct {
	Salary   int    `json:"salary"`
	Content  string `json:"content"`
	Position string `json:"position"`
}
