package models

import (
	"time"

	"gorm.io/gorm"
)

// Program kinds a certificate can be issued for.
const (
	JenisSertifikasi = "sertifikasi"
	JenisPKL         = "pkl"
)

// Sertifikat is issued from a passed assessment on an approved
// registration. At most one per (jenis_program, pendaftaran_id).
type Sertifikat struct {
	gorm.Model
	NomorSertifikat string    `json:"nomor_sertifikat" gorm:"uniqueIndex;not null"`
	JenisProgram    string    `json:"jenis_program" gorm:"index:idx_sertifikat_pendaftaran,unique;not null"`
	PendaftaranID   uint      `json:"pendaftaran_id" gorm:"index:idx_sertifikat_pendaftaran,unique;not null"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	NamaProgram     string    `json:"nama_program"`
	TanggalTerbit   time.Time `json:"tanggal_terbit"`
	IsDeleted       bool      `gorm:"default:false"`
}

func (Sertifikat) TableName() string {
	return "sertifikat"
}
