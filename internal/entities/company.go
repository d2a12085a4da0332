package entities

import "time"

type Company struct {
	ID            int64
	Name          string
	Address       string
	ContactPerson string
	Phone         string
	Email         string
	IsActive      bool
	CreatedAt     time.Time
}

type CompanyModify struct {
	ID            *int64
	Name          *string
	Address       *string
	ContactPerson *string
	Phone         *string
	Email         *string
	IsActive      *bool
}
