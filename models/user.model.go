package models

import "gorm.io/gorm"

// User roles.
const (
	RoleAdmin = "ADMIN"
	RoleKlien = "KLIEN"
)

type User struct {
	gorm.Model
	Nama      string `json:"nama" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	NoTelepon string `json:"no_telepon" gorm:"default:''"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'KLIEN'"`
	Alamat    string `json:"alamat" gorm:"default:''"`
	IsDeleted bool   `gorm:"default:false"`
}

func (User) TableName() string {
	return "users"
}
