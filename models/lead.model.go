package models

import "gorm.io/gorm"

type Lead struct {
	gorm.Model
	Name   string `gorm:"size:100;not null" json:"name"`
	Mobile string `gorm:"size:15;not null" json:"mobile"`
}
