package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type QuestionRequest struct {
	CategoryID string  `json:"categoryId" binding:"required,uuid"`
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Points     *int    `json:"points" binding:"omitempty,min=1"`
	ImageURL   *string `json:"imageUrl" binding:"omitempty,url"`
	YoutubeURL *string `json:"yt_url" binding:"omitempty,url"`
}

type QuestionUpdateRequest struct {
	CategoryID *string `json:"categoryId" binding:"omitempty,uuid"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Points     *int    `json:"points" binding:"omitempty,min=1"`
	ImageURL   *string `json:"imageUrl" binding:"omitempty,url"`
	YoutubeURL *string `json:"yt_url" binding:"omitempty,url"`
}

// NewQuestionResource reads the category collection to resolve the category
// selector and display name. That read is the single cross-entity dependency
// in the console, and it is one-directional.
func NewQuestionResource(questions *store.Collection[*models.Question], categories *store.Collection[*models.Category]) *Resource[*models.Question] {
	return &Resource[*models.Question]{
		Label:      "Question",
		Key:        "questions",
		Collection: questions,
		Searchable: func(q *models.Question) []string {
			return []string{q.Question, q.CategoryName}
		},
		Defaults: func() gin.H {
			return gin.H{
				"categoryId": "",
				"question":   "",
				"answer":     "",
				"points":     10,
				"imageUrl":   "",
				"yt_url":     "",
			}
		},
		Decorate: func(q *models.Question) *models.Question {
			decorated := *q
			decorated.CategoryName = CategoryName(categories, q.CategoryID)
			return &decorated
		},
		BindCreate: func(c *gin.Context) (*models.Question, error) {
			var req QuestionRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			question := &models.Question{
				CategoryID: uuid.MustParse(req.CategoryID),
				Question:   req.Question,
				Answer:     req.Answer,
				Points:     10,
				ImageURL:   req.ImageURL,
				YoutubeURL: req.YoutubeURL,
			}
			if req.Points != nil {
				question.Points = *req.Points
			}
			return question, nil
		},
		BeforeCreate: func(candidate *models.Question) error {
			if _, err := categories.Get(candidate.CategoryID); err != nil {
				return BadRequest("Category not found.")
			}
			return nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.Question], error) {
			var req QuestionUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.Question]{}, err
			}
			return Update[*models.Question]{
				Check: func(id uuid.UUID) error {
					if req.CategoryID != nil {
						if _, err := categories.Get(uuid.MustParse(*req.CategoryID)); err != nil {
							return BadRequest("Category not found.")
						}
					}
					return nil
				},
				Merge: func(q *models.Question) {
					if req.CategoryID != nil {
						q.CategoryID = uuid.MustParse(*req.CategoryID)
					}
					if req.Question != nil {
						q.Question = *req.Question
					}
					if req.Answer != nil {
						q.Answer = *req.Answer
					}
					if req.Points != nil {
						q.Points = *req.Points
					}
					if req.ImageURL != nil {
						q.ImageURL = req.ImageURL
					}
					if req.YoutubeURL != nil {
						q.YoutubeURL = req.YoutubeURL
					}
				},
			}, nil
		},
	}
}
