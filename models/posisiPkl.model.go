package models

import (
	"time"

	"gorm.io/gorm"
)

type PosisiPKL struct {
	gorm.Model
	Nama           string    `json:"nama"`
	Divisi         string    `json:"divisi"`
	Deskripsi      string    `json:"deskripsi"`
	Status         string    `json:"status" gorm:"default:'Draft'"`
	Kuota          int       `json:"kuota" gorm:"default:0"`
	TanggalMulai   time.Time `json:"tanggal_mulai"`
	TanggalSelesai time.Time `json:"tanggal_selesai"`
	IsDeleted      bool      `gorm:"default:false"`
}

func (PosisiPKL) TableName() string {
	return "posisi_pkl"
}
