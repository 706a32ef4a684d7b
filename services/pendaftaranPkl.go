package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pkl/models"
)

// CreatePKLRegistration runs the eligibility guard and persists a new
// internship registration in one transaction.
func CreatePKLRegistration(db *gorm.DB, userID, posisiID uint, form FormPendaftaran) (*models.PendaftaranPKL, error) {
	if err := validateFormPendaftaran(form); err != nil {
		return nil, err
	}

	dokumen, err := EncodeDokumen(form.Dokumen)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := CanRegisterPKL(tx, userID, posisiID); err != nil {
		tx.Rollback()
		return nil, err
	}

	pendaftaran := models.PendaftaranPKL{
		UserID:           userID,
		PosisiPKLID:      posisiID,
		Status:           models.StatusPengajuan,
		TanggalPengajuan: time.Now(),
		NoTelepon:        form.NoTelepon,
		Alamat:           form.Alamat,
		Motivasi:         form.Motivasi,
		InstitusiAsal:    form.InstitusiAsal,
		Jurusan:          form.Jurusan,
		Kelas:            form.Kelas,
		ProgramStudi:     form.ProgramStudi,
		Semester:         form.Semester,
		Dokumen:          dokumen,
	}

	if err := tx.Create(&pendaftaran).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &pendaftaran, nil
}

// UpdatePKLStatus applies an admin decision to an internship
// registration.
func UpdatePKLStatus(db *gorm.DB, pendaftaranID uint, status, catatan string) (*models.PendaftaranPKL, error) {
	if !statusPendaftaranValid[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var pendaftaran models.PendaftaranPKL
	if err := db.Where("id = ? AND is_deleted = ?", pendaftaranID, false).First(&pendaftaran).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}

	diproses := time.Now()
	pendaftaran.Status = status
	pendaftaran.TanggalDiproses = &diproses
	if catatan != "" {
		pendaftaran.CatatanAdmin = catatan
	}

	if err := db.Save(&pendaftaran).Error; err != nil {
		return nil, err
	}
	return &pendaftaran, nil
}

// CancelPKLRegistration lets the owning student withdraw an internship
// registration that has not been processed yet.
func CancelPKLRegistration(db *gorm.DB, pendaftaranID, userID uint) (*models.PendaftaranPKL, error) {
	var pendaftaran models.PendaftaranPKL
	if err := db.Where("id = ? AND is_deleted = ?", pendaftaranID, false).First(&pendaftaran).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}

	if pendaftaran.UserID != userID {
		return nil, ErrForbidden
	}
	if pendaftaran.Status != models.StatusPengajuan {
		return nil, ErrNotCancellable
	}

	diproses := time.Now()
	pendaftaran.Status = models.StatusDibatalkan
	pendaftaran.TanggalDiproses = &diproses

	if err := db.Save(&pendaftaran).Error; err != nil {
		return nil, err
	}
	return &pendaftaran, nil
}
