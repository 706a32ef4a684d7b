package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"gorm.io/gorm"

	"pkl/models"
)

var statusAktif = []string{models.StatusPengajuan, models.StatusDisetujui}

// CanRegisterSertifikasi gates a new certification registration for one
// (student, program, batch) target. Pure check, no writes.
func CanRegisterSertifikasi(db *gorm.DB, userID, sertifikasiID, batchID uint) error {
	var sertifikasi models.Sertifikasi
	if err := db.Where("id = ? AND is_deleted = ?", sertifikasiID, false).First(&sertifikasi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: sertifikasi %d", ErrNotFound, sertifikasiID)
		}
		return err
	}
	if sertifikasi.Status != models.ProgramAktif {
		return fmt.Errorf("%w: sertifikasi berstatus %s", ErrProgramUnavailable, sertifikasi.Status)
	}

	var batch models.Batch
	if err := db.Where("id = ? AND sertifikasi_id = ? AND is_deleted = ?", batchID, sertifikasiID, false).First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: batch %d", ErrNotFound, batchID)
		}
		return err
	}
	if batch.Status != models.ProgramAktif {
		return fmt.Errorf("%w: batch berstatus %s", ErrProgramUnavailable, batch.Status)
	}

	// Kuota 0 means unlimited.
	if batch.Kuota > 0 {
		var terdaftar int64
		if err := db.Model(&models.PendaftaranSertifikasi{}).
			Where("batch_id = ? AND status IN ? AND is_deleted = ?", batchID, statusAktif, false).
			Count(&terdaftar).Error; err != nil {
			return err
		}
		if terdaftar >= int64(batch.Kuota) {
			return fmt.Errorf("%w: kuota batch sudah penuh", ErrProgramUnavailable)
		}
	}

	err := db.Where("user_id = ? AND sertifikasi_id = ? AND batch_id = ? AND status IN ? AND is_deleted = ?",
		userID, sertifikasiID, batchID, statusAktif, false).
		First(&models.PendaftaranSertifikasi{}).Error
	if err == nil {
		return ErrDuplicateRegistration
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// CanRegisterPKL gates a new internship registration. A student may
// hold at most one unresolved internship registration system-wide,
// regardless of position. A passed assessment resolves the earlier
// registration; a registration whose internship has ended stays
// blocking until the evaluator grades it.
func CanRegisterPKL(db *gorm.DB, userID, posisiID uint) error {
	var posisi models.PosisiPKL
	if err := db.Where("id = ? AND is_deleted = ?", posisiID, false).First(&posisi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: posisi PKL %d", ErrNotFound, posisiID)
		}
		return err
	}
	if posisi.Status != models.ProgramAktif {
		return fmt.Errorf("%w: posisi berstatus %s", ErrProgramUnavailable, posisi.Status)
	}

	if posisi.Kuota > 0 {
		var terdaftar int64
		if err := db.Model(&models.PendaftaranPKL{}).
			Where("posisi_pkl_id = ? AND status IN ? AND is_deleted = ?", posisiID, statusAktif, false).
			Count(&terdaftar).Error; err != nil {
			return err
		}
		if terdaftar >= int64(posisi.Kuota) {
			return fmt.Errorf("%w: kuota posisi sudah penuh", ErrProgramUnavailable)
		}
	}

	var aktif []models.PendaftaranPKL
	if err := db.Where("user_id = ? AND status IN ? AND is_deleted = ?", userID, statusAktif, false).
		Find(&aktif).Error; err != nil {
		return err
	}

	for _, pendaftaran := range aktif {
		if pendaftaran.Status == models.StatusPengajuan {
			return &ActiveRegistrationError{
				Reason: "Pendaftaran PKL Anda sebelumnya masih menunggu persetujuan admin.",
			}
		}

		var penilaian models.PenilaianPKL
		err := db.Where("pendaftaran_id = ? AND is_deleted = ?", pendaftaran.ID, false).First(&penilaian).Error
		if err == nil && penilaian.Hasil == models.HasilDiterima {
			// Resolved: student finished and passed, free to register again.
			continue
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var posisiLama models.PosisiPKL
		if err := db.Where("id = ?", pendaftaran.PosisiPKLID).First(&posisiLama).Error; err != nil {
			return err
		}
		if now.With(posisiLama.TanggalSelesai).EndOfDay().Before(time.Now()) {
			return &ActiveRegistrationError{
				Reason: "PKL Anda sudah berakhir dan masih menunggu penilaian dari pembimbing.",
			}
		}
		return &ActiveRegistrationError{
			Reason: fmt.Sprintf("Anda masih terdaftar pada PKL aktif hingga %s.",
				posisiLama.TanggalSelesai.Format("02-01-2006")),
		}
	}

	return nil
}
