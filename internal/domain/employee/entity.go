package employee

import "time"

type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Email     string
	Position  *string
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
