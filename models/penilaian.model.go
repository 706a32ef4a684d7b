package models

import (
	"time"

	"gorm.io/gorm"
)

// Assessment outcomes. External contract, same as registration statuses.
const (
	HasilBelumDinilai = "Belum Dinilai"
	HasilDiterima     = "Diterima"
	HasilDitolak      = "Ditolak"
)

// PenilaianSertifikasi is the grading record for one certification
// registration. One row per registration, overwritten on re-grade.
type PenilaianSertifikasi struct {
	gorm.Model
	PendaftaranID    uint      `json:"pendaftaran_id" gorm:"uniqueIndex;not null"`
	PenilaiID        uint      `json:"penilai_id" gorm:"index;not null"`
	Hasil            string    `json:"hasil" gorm:"default:'Belum Dinilai'"`
	Catatan          string    `json:"catatan"`
	NilaiTeori       *float64  `json:"nilai_teori"`
	NilaiPraktik     *float64  `json:"nilai_praktik"`
	TanggalPenilaian time.Time `json:"tanggal_penilaian"`
	IsDeleted        bool      `gorm:"default:false"`
}

func (PenilaianSertifikasi) TableName() string {
	return "penilaian_sertifikasi"
}

type PenilaianPKL struct {
	gorm.Model
	PendaftaranID    uint      `json:"pendaftaran_id" gorm:"uniqueIndex;not null"`
	PenilaiID        uint      `json:"penilai_id" gorm:"index;not null"`
	Hasil            string    `json:"hasil" gorm:"default:'Belum Dinilai'"`
	Catatan          string    `json:"catatan"`
	TanggalPenilaian time.Time `json:"tanggal_penilaian"`
	IsDeleted        bool      `gorm:"default:false"`
}

func (PenilaianPKL) TableName() string {
	return "penilaian_pkl"
}
