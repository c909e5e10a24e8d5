package domain

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID `json:"id" db:"company_id"`
	Name      string    `json:"name" db:"name"`
	Logo      *string   `json:"logo,omitempty" db:"logo"`
	Location  *string   `json:"location,omitempty" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CompanyGroup is one aggregation bucket: all companies sharing the same
// lower-cased name, represented by the first-created row's name and logo.
type CompanyGroup struct {
	GroupKey string  `json:"group_key" db:"group_key"`
	Name     string  `json:"name" db:"name"`
	Logo     *string `json:"logo" db:"logo"`
}

// TopCompany is a company name ranked by how many reviews reference it.
type TopCompany struct {
	ID    uuid.UUID `json:"company_id" db:"company_id"`
	Name  string    `json:"name" db:"name"`
	Count int64     `json:"count" db:"count"`
	Logo  *string   `json:"logo" db:"logo"`
}

type CreateCompanyInput struct {
	Name     string  `json:"name"`
	Logo     *string `json:"logo,omitempty"`
	Location *string `json:"location,omitempty"`
}

// CompanyFilter narrows a company search. Name and Location match as
// case-insensitive substrings; ID wins over both when set.
type CompanyFilter struct {
	ID       *uuid.UUID
	Name     string
	Location string
}

func (f CompanyFilter) Empty() bool {
	return f.ID == nil && f.Name == "" && f.Location == ""
}
