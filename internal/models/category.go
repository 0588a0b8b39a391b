package models

import "github.com/google/uuid"

type Category struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsActive      bool      `json:"isActive"`
	IsForFreeUser bool      `json:"isForFreeUser"`
	ImageURL      *string   `json:"imageUrl"`
}

func (c *Category) EntityID() uuid.UUID { return c.ID }

func (c *Category) AssignID(id uuid.UUID) { c.ID = id }
