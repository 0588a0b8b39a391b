package models

import "github.com/google/uuid"

type Question struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	// CategoryName is resolved from the category list at read time and is
	// never stored authoritatively on the question itself.
	CategoryName string  `json:"categoryName,omitempty"`
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Points       int     `json:"points"`
	ImageURL     *string `json:"imageUrl"`
	YoutubeURL   *string `json:"yt_url"`
}

func (q *Question) EntityID() uuid.UUID { return q.ID }

func (q *Question) AssignID(id uuid.UUID) { q.ID = id }
