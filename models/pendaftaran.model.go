package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Registration statuses. The literals are part of the external API
// contract and must not be renamed.
const (
	StatusPengajuan  = "Pengajuan"
	StatusDisetujui  = "Disetujui"
	StatusDitolak    = "Ditolak"
	StatusDibatalkan = "Dibatalkan"
)

// Institution types accepted on registration forms.
const (
	InstitusiSekolah     = "Sekolah"
	InstitusiUniversitas = "Universitas"
)

// DokumenInfo holds the stored metadata for one uploaded document.
// The file itself lives in the blob store under Path.
type DokumenInfo struct {
	NamaAsli     string    `json:"nama_asli"`
	Path         string    `json:"path"`
	Ukuran       int64     `json:"ukuran"`
	TipeMime     string    `json:"tipe_mime"`
	DiunggahPada time.Time `json:"diunggah_pada"`
}

type PendaftaranSertifikasi struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	SertifikasiID    uint           `json:"sertifikasi_id" gorm:"index;not null"`
	BatchID          uint           `json:"batch_id" gorm:"index;not null"`
	Status           string         `json:"status" gorm:"default:'Pengajuan'"`
	TanggalPengajuan time.Time      `json:"tanggal_pengajuan"`
	TanggalDiproses  *time.Time     `json:"tanggal_diproses"`
	CatatanAdmin     string         `json:"catatan_admin"`
	NoTelepon        string         `json:"no_telepon"`
	Alamat           string         `json:"alamat"`
	Motivasi         string         `json:"motivasi"`
	InstitusiAsal    string         `json:"institusi_asal"`
	Jurusan          string         `json:"jurusan"`
	Kelas            string         `json:"kelas"`
	ProgramStudi     string         `json:"program_studi"`
	Semester         string         `json:"semester"`
	Dokumen          datatypes.JSON `json:"dokumen"`
	IsDeleted        bool           `gorm:"default:false"`
	User             User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Sertifikasi      Sertifikasi    `json:"sertifikasi,omitempty" gorm:"foreignKey:SertifikasiID"`
	Batch            Batch          `json:"batch,omitempty" gorm:"foreignKey:BatchID"`
}

func (PendaftaranSertifikasi) TableName() string {
	return "pendaftaran_sertifikasi"
}

type PendaftaranPKL struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	PosisiPKLID      uint           `json:"posisi_pkl_id" gorm:"index;not null"`
	Status           string         `json:"status" gorm:"default:'Pengajuan'"`
	TanggalPengajuan time.Time      `json:"tanggal_pengajuan"`
	TanggalDiproses  *time.Time     `json:"tanggal_diproses"`
	CatatanAdmin     string         `json:"catatan_admin"`
	NoTelepon        string         `json:"no_telepon"`
	Alamat           string         `json:"alamat"`
	Motivasi         string         `json:"motivasi"`
	InstitusiAsal    string         `json:"institusi_asal"`
	Jurusan          string         `json:"jurusan"`
	Kelas            string         `json:"kelas"`
	ProgramStudi     string         `json:"program_studi"`
	Semester         string         `json:"semester"`
	Dokumen          datatypes.JSON `json:"dokumen"`
	IsDeleted        bool           `gorm:"default:false"`
	User             User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	PosisiPKL        PosisiPKL      `json:"posisi_pkl,omitempty" gorm:"foreignKey:PosisiPKLID"`
}

func (PendaftaranPKL) TableName() string {
	return "pendaftaran_pkl"
}
