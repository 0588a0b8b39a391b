package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type CouponRequest struct {
	Code   string `json:"code" binding:"required,couponcode"`
	Gems   *int   `json:"gems" binding:"omitempty,min=1"`
	IsUsed *bool  `json:"isUsed"`
}

type CouponUpdateRequest struct {
	Code   *string `json:"code" binding:"omitempty,couponcode"`
	Gems   *int    `json:"gems" binding:"omitempty,min=1"`
	IsUsed *bool   `json:"isUsed"`
}

func NewCouponResource(coupons *store.Collection[*models.Coupon]) *Resource[*models.Coupon] {
	return &Resource[*models.Coupon]{
		Label:      "Coupon",
		Key:        "coupons",
		Collection: coupons,
		Searchable: func(coupon *models.Coupon) []string {
			return []string{coupon.Code}
		},
		Defaults: func() gin.H {
			return gin.H{
				"code":   "",
				"gems":   10,
				"isUsed": false,
			}
		},
		BindCreate: func(c *gin.Context) (*models.Coupon, error) {
			var req CouponRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			coupon := &models.Coupon{
				Code: req.Code,
				Gems: 10,
			}
			if req.Gems != nil {
				coupon.Gems = *req.Gems
			}
			if req.IsUsed != nil {
				coupon.IsUsed = *req.IsUsed
			}
			return coupon, nil
		},
		BeforeCreate: func(candidate *models.Coupon) error {
			if codeTaken(coupons, candidate.Code, uuid.Nil) {
				return Conflict("Coupon code already exists.")
			}
			return nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.Coupon], error) {
			var req CouponUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.Coupon]{}, err
			}
			return Update[*models.Coupon]{
				Check: func(id uuid.UUID) error {
					if req.Code != nil && codeTaken(coupons, *req.Code, id) {
						return Conflict("Coupon code already exists.")
					}
					return nil
				},
				Merge: func(coupon *models.Coupon) {
					if req.Code != nil {
						coupon.Code = *req.Code
					}
					if req.Gems != nil {
						coupon.Gems = *req.Gems
					}
					if req.IsUsed != nil {
						coupon.IsUsed = *req.IsUsed
					}
				},
			}, nil
		},
	}
}

func codeTaken(coupons *store.Collection[*models.Coupon], code string, exclude uuid.UUID) bool {
	_, found := coupons.Find(func(coupon *models.Coupon) bool {
		return coupon.Code == code && coupon.ID != exclude
	})
	return found
}
