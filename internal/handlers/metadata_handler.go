package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type MetaDataRequest struct {
	Name      string `json:"meta_data_name" binding:"required,metaname"`
	MetaValue string `json:"meta_value" binding:"required"`
}

type MetaDataUpdateRequest struct {
	Name      *string `json:"meta_data_name" binding:"omitempty,metaname"`
	MetaValue *string `json:"meta_value"`
}

func NewMetaDataResource(metadata *store.Collection[*models.MetaData]) *Resource[*models.MetaData] {
	return &Resource[*models.MetaData]{
		Label:      "Configuration",
		Key:        "meta_data",
		Collection: metadata,
		Searchable: func(m *models.MetaData) []string {
			return []string{m.Name, m.MetaValue}
		},
		Defaults: func() gin.H {
			return gin.H{
				"meta_data_name": "",
				"meta_value":     "",
			}
		},
		BindCreate: func(c *gin.Context) (*models.MetaData, error) {
			var req MetaDataRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &models.MetaData{
				Name:      req.Name,
				MetaValue: req.MetaValue,
			}, nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.MetaData], error) {
			var req MetaDataUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.MetaData]{}, err
			}
			return Update[*models.MetaData]{
				Merge: func(m *models.MetaData) {
					if req.Name != nil {
						m.Name = *req.Name
					}
					if req.MetaValue != nil {
						m.MetaValue = *req.MetaValue
					}
				},
			}, nil
		},
	}
}
