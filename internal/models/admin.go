package models

import "github.com/google/uuid"

type Admin struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	// PasswordHash is a bcrypt hash. It never leaves the server.
	PasswordHash string `json:"-"`
}

func (a *Admin) EntityID() uuid.UUID { return a.ID }

func (a *Admin) AssignID(id uuid.UUID) { a.ID = id }
