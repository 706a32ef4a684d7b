package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pkl/models"
)

// IssueSertifikatSertifikasi derives a certificate from a passed
// certification assessment on an approved registration. Idempotent per
// registration: a repeat call returns the existing certificate.
func IssueSertifikatSertifikasi(db *gorm.DB, pendaftaranID uint) (*models.Sertifikat, error) {
	var pendaftaran models.PendaftaranSertifikasi
	if err := db.Where("id = ? AND is_deleted = ?", pendaftaranID, false).First(&pendaftaran).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}
	if pendaftaran.Status != models.StatusDisetujui {
		return nil, fmt.Errorf("%w: pendaftaran belum disetujui", ErrInvalidStatus)
	}

	var penilaian models.PenilaianSertifikasi
	if err := db.Where("pendaftaran_id = ? AND is_deleted = ?", pendaftaranID, false).First(&penilaian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran belum dinilai", ErrInvalidStatus)
		}
		return nil, err
	}
	if penilaian.Hasil != models.HasilDiterima {
		return nil, fmt.Errorf("%w: hasil penilaian %s", ErrInvalidStatus, penilaian.Hasil)
	}

	var existing models.Sertifikat
	err := db.Where("jenis_program = ? AND pendaftaran_id = ? AND is_deleted = ?",
		models.JenisSertifikasi, pendaftaranID, false).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var sertifikasi models.Sertifikasi
	if err := db.Where("id = ?", pendaftaran.SertifikasiID).First(&sertifikasi).Error; err != nil {
		return nil, err
	}

	sertifikat := models.Sertifikat{
		NomorSertifikat: nomorSertifikat("SERT"),
		JenisProgram:    models.JenisSertifikasi,
		PendaftaranID:   pendaftaranID,
		UserID:          pendaftaran.UserID,
		NamaProgram:     sertifikasi.Nama,
		TanggalTerbit:   time.Now(),
	}
	if err := db.Create(&sertifikat).Error; err != nil {
		return nil, err
	}
	return &sertifikat, nil
}

// IssueSertifikatPKL derives a certificate from a passed internship
// assessment on an approved registration.
func IssueSertifikatPKL(db *gorm.DB, pendaftaranID uint) (*models.Sertifikat, error) {
	var pendaftaran models.PendaftaranPKL
	if err := db.Where("id = ? AND is_deleted = ?", pendaftaranID, false).First(&pendaftaran).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}
	if pendaftaran.Status != models.StatusDisetujui {
		return nil, fmt.Errorf("%w: pendaftaran belum disetujui", ErrInvalidStatus)
	}

	var penilaian models.PenilaianPKL
	if err := db.Where("pendaftaran_id = ? AND is_deleted = ?", pendaftaranID, false).First(&penilaian).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran belum dinilai", ErrInvalidStatus)
		}
		return nil, err
	}
	if penilaian.Hasil != models.HasilDiterima {
		return nil, fmt.Errorf("%w: hasil penilaian %s", ErrInvalidStatus, penilaian.Hasil)
	}

	var existing models.Sertifikat
	err := db.Where("jenis_program = ? AND pendaftaran_id = ? AND is_deleted = ?",
		models.JenisPKL, pendaftaranID, false).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var posisi models.PosisiPKL
	if err := db.Where("id = ?", pendaftaran.PosisiPKLID).First(&posisi).Error; err != nil {
		return nil, err
	}

	sertifikat := models.Sertifikat{
		NomorSertifikat: nomorSertifikat("PKL"),
		JenisProgram:    models.JenisPKL,
		PendaftaranID:   pendaftaranID,
		UserID:          pendaftaran.UserID,
		NamaProgram:     posisi.Nama,
		TanggalTerbit:   time.Now(),
	}
	if err := db.Create(&sertifikat).Error; err != nil {
		return nil, err
	}
	return &sertifikat, nil
}

func nomorSertifikat(prefix string) string {
	return fmt.Sprintf("%s-%s-%s",
		prefix,
		time.Now().Format("200601"),
		strings.ToUpper(uuid.New().String()[:8]))
}
