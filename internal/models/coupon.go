package models

import "github.com/google/uuid"

type Coupon struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"`
	Gems   int       `json:"gems"`
	IsUsed bool      `json:"isUsed"`
}

func (c *Coupon) EntityID() uuid.UUID { return c.ID }

func (c *Coupon) AssignID(id uuid.UUID) { c.ID = id }
