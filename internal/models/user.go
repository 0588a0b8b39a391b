package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	Mobile          *string    `json:"mobile"`
	LastLogin       *time.Time `json:"lastLogin,omitempty"`
	Location        *string    `json:"location,omitempty"`
	Gems            int        `json:"gems"`
	IsActive        bool       `json:"isactive"`
	BuyGems         bool       `json:"buyGems"`
	NumberOfReports int        `json:"numberOfReports"`
}

func (u *User) EntityID() uuid.UUID { return u.ID }

func (u *User) AssignID(id uuid.UUID) { u.ID = id }
