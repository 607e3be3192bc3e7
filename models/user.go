package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	FirstName string
	LastName  string
	Birthday  time.Time
	Gender    string `gorm:"size:16"` // "male" | "female" | "other"

	HeightValue   float64
	HeightUnit    string `gorm:"size:8"` // "cm" | "in"
	WeightValue   float64
	WeightUnit    string `gorm:"size:8"` // "kg" | "lbs"
	ActivityLevel string `gorm:"size:16"`

	ProfilePicture string

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
	Onboarded     bool
}
