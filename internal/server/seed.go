package server

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/nadhifr/quizadmin/config"
	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

// Stores owns one collection per admin resource. Each collection belongs
// exclusively to its screen's handlers for the lifetime of the process.
type Stores struct {
	Users      *store.Collection[*models.User]
	Categories *store.Collection[*models.Category]
	Questions  *store.Collection[*models.Question]
	Coupons    *store.Collection[*models.Coupon]
	Admins     *store.Collection[*models.Admin]
	MetaData   *store.Collection[*models.MetaData]
}

func NewStores() *Stores {
	return &Stores{
		Users:      store.NewCollection[*models.User](),
		Categories: store.NewCollection[*models.Category](),
		Questions:  store.NewCollection[*models.Question](),
		Coupons:    store.NewCollection[*models.Coupon](),
		Admins:     store.NewCollection[*models.Admin](),
		MetaData:   store.NewCollection[*models.MetaData](),
	}
}

// Seed loads the starter data set and the configured admin account. The
// admin password is hashed before it ever reaches the collection.
func (s *Stores) Seed(cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	s.Admins.Create(&models.Admin{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	})

	lastWeek := time.Now().AddDate(0, 0, -7)
	s.Users.Create(&models.User{
		Email:           "john@example.com",
		FirstName:       "John Doe",
		Mobile:          ptr("+1234567890"),
		LastLogin:       &lastWeek,
		Location:        ptr("New York"),
		Gems:            150,
		IsActive:        true,
		BuyGems:         true,
		NumberOfReports: 25,
	})
	s.Users.Create(&models.User{
		Email:           "jane@example.com",
		FirstName:       "Jane Smith",
		Mobile:          ptr("+1987654321"),
		Location:        ptr("Los Angeles"),
		Gems:            75,
		IsActive:        true,
		NumberOfReports: 12,
	})
	s.Users.Create(&models.User{
		Email:     "inactive@example.com",
		FirstName: "Inactive User",
	})

	science := s.Categories.Create(&models.Category{
		Name:          "Science",
		IsActive:      true,
		IsForFreeUser: true,
		ImageURL:      ptr("https://images.pexels.com/photos/2280547/pexels-photo-2280547.jpeg"),
	})
	history := s.Categories.Create(&models.Category{
		Name:     "History",
		IsActive: true,
	})
	s.Categories.Create(&models.Category{
		Name:          "Sports",
		IsForFreeUser: true,
	})

	s.Questions.Create(&models.Question{
		CategoryID: science.ID,
		Question:   "What is the chemical symbol for water?",
		Answer:     "H2O",
		Points:     10,
		ImageURL:   ptr("https://images.pexels.com/photos/954929/pexels-photo-954929.jpeg"),
	})
	s.Questions.Create(&models.Question{
		CategoryID: history.ID,
		Question:   "Who was the first president of the United States?",
		Answer:     "George Washington",
		Points:     15,
	})

	s.Coupons.Create(&models.Coupon{Code: "WELCOME50", Gems: 50})
	s.Coupons.Create(&models.Coupon{Code: "BONUS100", Gems: 100, IsUsed: true})
	s.Coupons.Create(&models.Coupon{Code: "NEWUSER25", Gems: 25})

	s.MetaData.Create(&models.MetaData{Name: "app_version", MetaValue: "1.0.0"})
	s.MetaData.Create(&models.MetaData{Name: "maintenance_mode", MetaValue: "false"})
	s.MetaData.Create(&models.MetaData{Name: "max_questions_per_game", MetaValue: "10"})
	s.MetaData.Create(&models.MetaData{Name: "daily_gems_limit", MetaValue: "100"})

	return nil
}

func ptr[T any](v T) *T { return &v }
