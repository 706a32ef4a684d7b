package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pkl/models"
)

// NilaiSertifikasi is the grading input for one certification
// registration.
type NilaiSertifikasi struct {
	Hasil        string
	Catatan      string
	NilaiTeori   *float64
	NilaiPraktik *float64
}

// NilaiPKL is the grading input for one internship registration.
type NilaiPKL struct {
	Hasil   string
	Catatan string
}

// NilaiBatchEntry is one item of a bulk grading request.
type NilaiBatchEntry struct {
	PendaftaranID uint
	Hasil         string
	Catatan       string
}

var hasilValid = map[string]bool{
	models.HasilBelumDinilai: true,
	models.HasilDiterima:     true,
	models.HasilDitolak:      true,
}

// GradeSertifikasi upserts the assessment for one certification
// registration. Re-grading overwrites the existing row.
func GradeSertifikasi(db *gorm.DB, pendaftaranID, penilaiID uint, nilai NilaiSertifikasi) (*models.PenilaianSertifikasi, error) {
	if !hasilValid[nilai.Hasil] {
		return nil, fmt.Errorf("%w: hasil %q", ErrInvalidStatus, nilai.Hasil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	penilaian, err := gradeSertifikasiTx(tx, pendaftaranID, penilaiID, nilai)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return penilaian, nil
}

func gradeSertifikasiTx(tx *gorm.DB, pendaftaranID, penilaiID uint, nilai NilaiSertifikasi) (*models.PenilaianSertifikasi, error) {
	if err := tx.Where("id = ? AND is_deleted = ?", pendaftaranID, false).
		First(&models.PendaftaranSertifikasi{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}

	var penilaian models.PenilaianSertifikasi
	err := tx.Where("pendaftaran_id = ?", pendaftaranID).First(&penilaian).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		penilaian = models.PenilaianSertifikasi{PendaftaranID: pendaftaranID}
	} else if err != nil {
		return nil, err
	}

	penilaian.PenilaiID = penilaiID
	penilaian.Hasil = nilai.Hasil
	penilaian.Catatan = nilai.Catatan
	penilaian.NilaiTeori = nilai.NilaiTeori
	penilaian.NilaiPraktik = nilai.NilaiPraktik
	penilaian.TanggalPenilaian = time.Now()

	if err := tx.Save(&penilaian).Error; err != nil {
		return nil, err
	}
	return &penilaian, nil
}

// GradeSertifikasiBatch applies grading entries as a single unit. Any
// invalid entry aborts the whole batch; no partial writes survive.
func GradeSertifikasiBatch(db *gorm.DB, penilaiID uint, entries []NilaiBatchEntry) ([]models.PenilaianSertifikasi, error) {
	for _, entry := range entries {
		if !hasilValid[entry.Hasil] {
			return nil, fmt.Errorf("%w: hasil %q", ErrInvalidStatus, entry.Hasil)
		}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	hasil := make([]models.PenilaianSertifikasi, 0, len(entries))
	for _, entry := range entries {
		penilaian, err := gradeSertifikasiTx(tx, entry.PendaftaranID, penilaiID, NilaiSertifikasi{
			Hasil:   entry.Hasil,
			Catatan: entry.Catatan,
		})
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		hasil = append(hasil, *penilaian)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return hasil, nil
}

// GradePKL upserts the assessment for one internship registration.
func GradePKL(db *gorm.DB, pendaftaranID, penilaiID uint, nilai NilaiPKL) (*models.PenilaianPKL, error) {
	if !hasilValid[nilai.Hasil] {
		return nil, fmt.Errorf("%w: hasil %q", ErrInvalidStatus, nilai.Hasil)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	penilaian, err := gradePKLTx(tx, pendaftaranID, penilaiID, nilai)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return penilaian, nil
}

func gradePKLTx(tx *gorm.DB, pendaftaranID, penilaiID uint, nilai NilaiPKL) (*models.PenilaianPKL, error) {
	if err := tx.Where("id = ? AND is_deleted = ?", pendaftaranID, false).
		First(&models.PendaftaranPKL{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pendaftaran %d", ErrNotFound, pendaftaranID)
		}
		return nil, err
	}

	var penilaian models.PenilaianPKL
	err := tx.Where("pendaftaran_id = ?", pendaftaranID).First(&penilaian).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		penilaian = models.PenilaianPKL{PendaftaranID: pendaftaranID}
	} else if err != nil {
		return nil, err
	}

	penilaian.PenilaiID = penilaiID
	penilaian.Hasil = nilai.Hasil
	penilaian.Catatan = nilai.Catatan
	penilaian.TanggalPenilaian = time.Now()

	if err := tx.Save(&penilaian).Error; err != nil {
		return nil, err
	}
	return &penilaian, nil
}

// GradePKLBatch applies grading entries as a single unit, all or
// nothing.
func GradePKLBatch(db *gorm.DB, penilaiID uint, entries []NilaiBatchEntry) ([]models.PenilaianPKL, error) {
	for _, entry := range entries {
		if !hasilValid[entry.Hasil] {
			return nil, fmt.Errorf("%w: hasil %q", ErrInvalidStatus, entry.Hasil)
		}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	hasil := make([]models.PenilaianPKL, 0, len(entries))
	for _, entry := range entries {
		penilaian, err := gradePKLTx(tx, entry.PendaftaranID, penilaiID, NilaiPKL{
			Hasil:   entry.Hasil,
			Catatan: entry.Catatan,
		})
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		hasil = append(hasil, *penilaian)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return hasil, nil
}
