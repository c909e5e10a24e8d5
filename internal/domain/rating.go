package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating holds the four scored dimensions of a review. A rating exists
// only as the 1:1 dependent of its owning review: it is created right
// before the review and removed when the review is deleted.
type Rating struct {
	ID         uuid.UUID `json:"id" db:"rating_id"`
	Culture    int       `json:"culture" db:"culture"`
	Mentorship int       `json:"mentorship" db:"mentorship"`
	Impact     int       `json:"impact" db:"impact"`
	Interview  int       `json:"interview" db:"interview"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type RatingInput struct {
	Culture    int `json:"culture"`
	Mentorship int `json:"mentorship"`
	Impact     int `json:"impact"`
	Interview  int `json:"interview"`
}
