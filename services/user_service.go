package services

import (
	"fmt"
	"time"

	"github.com/adangerfield1026/Capstone/models"
	"github.com/adangerfield1026/Capstone/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Birthday       string  `json:"birthday"` // YYYY-MM-DD
	Gender         string  `json:"gender"`
	HeightValue    float64 `json:"height_value"`
	HeightUnit     string  `json:"height_unit"` // "cm" | "in"
	WeightValue    float64 `json:"weight_value"`
	WeightUnit     string  `json:"weight_unit"` // "kg" | "lbs"
	ActivityLevel  string  `json:"activity_level"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URL
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUnauthorized
	}

	birthday := ""
	age := 0
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format("2006-01-02")
		age = ageFrom(user.Birthday)
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        birthday,
		"age":             age,
		"gender":          user.Gender,
		"height_value":    user.HeightValue,
		"height_unit":     user.HeightUnit,
		"weight_value":    user.WeightValue,
		"weight_unit":     user.WeightUnit,
		"activity_level":  user.ActivityLevel,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}, nil
}

// UpdateProfile applies the non-empty fields. Profile edits never touch the
// stored goal percentages; only goal upserts rederive those.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return ErrUnauthorized
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			return ErrValidation
		}
		user.Birthday = birthday
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.HeightValue > 0 {
		user.HeightValue = input.HeightValue
	}
	if input.HeightUnit != "" {
		user.HeightUnit = input.HeightUnit
	}
	if input.WeightValue > 0 {
		user.WeightValue = input.WeightValue
	}
	if input.WeightUnit != "" {
		user.WeightUnit = input.WeightUnit
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}
	user.Onboarded = true

	return s.db.Save(&user).Error
}

// Disable soft-deletes the account; the row and its day entries stay.
func (s *UserService) Disable(userID uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("disabled", true).Error
}

type MetabolicSummary struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
	BMR         float64 `json:"bmr"`
	TDEE        float64 `json:"tdee"`
}

// GetMetabolicSummary derives BMI/BMR/TDEE from the stored profile,
// converting imperial units first. Activity level is read live; unknown
// levels fall back to sedentary inside ComputeTDEE.
func (s *UserService) GetMetabolicSummary(userID uint) (*MetabolicSummary, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, ErrUnauthorized
	}

	weightKg := user.WeightValue
	if user.WeightUnit == "lbs" {
		weightKg = utils.LbsToKg(weightKg)
	}
	heightCm := user.HeightValue
	if user.HeightUnit == "in" {
		heightCm = utils.InchesToCm(heightCm)
	}

	if user.Birthday.IsZero() {
		return nil, fmt.Errorf("%w: birthday not set", ErrValidation)
	}

	bmr, err := utils.ComputeBMR(weightKg, heightCm, ageFrom(user.Birthday), user.Gender)
	if err != nil {
		return nil, err
	}
	tdee, err := utils.ComputeTDEE(bmr, user.ActivityLevel)
	if err != nil {
		return nil, err
	}
	bmi, err := utils.ComputeBMI(weightKg, heightCm/100)
	if err != nil {
		return nil, err
	}

	return &MetabolicSummary{
		BMI:         bmi,
		BMICategory: utils.BMICategory(bmi),
		BMR:         bmr,
		TDEE:        tdee,
	}, nil
}

func ageFrom(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.Before(birthday.AddDate(age, 0, 0)) {
		age--
	}
	return age
}
