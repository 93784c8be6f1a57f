package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string `gorm:"default:''" json:"name"`
	Email          string `gorm:"unique;not null" json:"email"`
	Mobile         string `gorm:"size:15;unique;not null" json:"mobile"`
	Password       string `gorm:"not null" json:"password,omitempty"`
	FatherName     string `gorm:"size:100;default:''" json:"father_name"`
	Aadhar         string `gorm:"size:12;default:''" json:"aadhar"`
	Address        string `gorm:"type:text;default:''" json:"address"`
	PhotoURL       string `gorm:"size:500;default:''" json:"photo_url"`
	AadharPhotoURL string `gorm:"size:500;default:''" json:"aadhar_photo_url"`
	IsResident     bool   `gorm:"default:false" json:"is_resident"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
}
