package models

import "github.com/google/uuid"

type MetaData struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"meta_data_name"`
	MetaValue string    `json:"meta_value"`
}

func (m *MetaData) EntityID() uuid.UUID { return m.ID }

func (m *MetaData) AssignID(id uuid.UUID) { m.ID = id }
