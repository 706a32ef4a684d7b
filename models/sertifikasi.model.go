package models

import (
	"time"

	"gorm.io/gorm"
)

// Program and batch lifecycle statuses.
const (
	ProgramDraft   = "Draft"
	ProgramAktif   = "Aktif"
	ProgramPenuh   = "Penuh"
	ProgramSelesai = "Selesai"
)

type Sertifikasi struct {
	gorm.Model
	Nama      string  `json:"nama"`
	Kategori  string  `json:"kategori"`
	Deskripsi string  `json:"deskripsi"`
	Status    string  `json:"status" gorm:"default:'Draft'"`
	IsDeleted bool    `gorm:"default:false"`
	Batches   []Batch `json:"batches,omitempty" gorm:"foreignKey:SertifikasiID"`
}

func (Sertifikasi) TableName() string {
	return "sertifikasi"
}

type Batch struct {
	gorm.Model
	SertifikasiID  uint      `json:"sertifikasi_id" gorm:"index;not null"`
	Nama           string    `json:"nama"`
	TanggalMulai   time.Time `json:"tanggal_mulai"`
	TanggalSelesai time.Time `json:"tanggal_selesai"`
	Status         string    `json:"status" gorm:"default:'Draft'"`
	Kuota          int       `json:"kuota" gorm:"default:0"`
	IsDeleted      bool      `gorm:"default:false"`
}

func (Batch) TableName() string {
	return "batch_sertifikasi"
}
