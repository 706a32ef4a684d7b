package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"pkl/models"
)

// FormPendaftaran carries the applicant-supplied fields shared by
// certification and internship registrations.
type FormPendaftaran struct {
	NoTelepon     string
	Alamat        string
	Motivasi      string
	InstitusiAsal string
	Jurusan       string
	Kelas         string
	ProgramStudi  string
	Semester      string
	Dokumen       map[string]models.DokumenInfo
}

var statusPendaftaranValid = map[string]bool{
	models.StatusPengajuan:  true,
	models.StatusDisetujui:  true,
	models.StatusDitolak:    true,
	models.StatusDibatalkan: true,
}

// validateFormPendaftaran enforces the structural form invariants. The
// HTTP boundary has its own checks; this runs regardless of caller.
// Required fields differ by institution: school applicants must supply
// jurusan and kelas, university applicants program studi and semester.
// Jurusan is required for both, it doubles as the major label.
func validateFormPendaftaran(form FormPendaftaran) error {
	fields := make(map[string]string)

	if strings.TrimSpace(form.NoTelepon) == "" {
		fields["no_telepon"] = "No telepon wajib diisi!"
	}
	if strings.TrimSpace(form.Alamat) == "" {
		fields["alamat"] = "Alamat wajib diisi!"
	}

	switch form.InstitusiAsal {
	case models.InstitusiSekolah:
		if strings.TrimSpace(form.Jurusan) == "" {
			fields["jurusan"] = "Jurusan wajib diisi!"
		}
		if strings.TrimSpace(form.Kelas) == "" {
			fields["kelas"] = "Kelas wajib diisi!"
		}
	case models.InstitusiUniversitas:
		if strings.TrimSpace(form.Jurusan) == "" {
			fields["jurusan"] = "Jurusan wajib diisi!"
		}
		if strings.TrimSpace(form.ProgramStudi) == "" {
			fields["program_studi"] = "Program studi wajib diisi!"
		}
		if strings.TrimSpace(form.Semester) == "" {
			fields["semester"] = "Semester wajib diisi!"
		}
	default:
		fields["institusi_asal"] = "Institusi asal harus Sekolah atau Universitas!"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateSertifikasiRegistration runs the eligibility guard and persists
// a new certification registration in one transaction.
func CreateSertifikasiRegistration(db *gorm.DB, userID, sertifikasiID, batchID uint, form FormPendaftaran) (*models.PendaftaranSertifikasi, error) {
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

	// Guard and insert share the transaction so two concurrent
	// submissions cannot both pass the check. The partial unique index
	// on (user_id, sertifikasi_id, batch_id) backs this up.
	if err := CanRegisterSertifikasi(tx, userID, sertifikasiID, batchID); err != nil {
		tx.Rollback()
		return nil, err
	}

	pendaftaran := models.PendaftaranSertifikasi{
		UserID:           userID,
		SertifikasiID:    sertifikasiID,
		BatchID:          batchID,
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

// UpdateSertifikasiStatus applies an admin decision to a registration.
func UpdateSertifikasiStatus(db *gorm.DB, pendaftaranID uint, status, catatan string) (*models.PendaftaranSertifikasi, error) {
	if !statusPendaftaranValid[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var pendaftaran models.PendaftaranSertifikasi
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

// CancelSertifikasiRegistration lets the owning student withdraw a
// registration that has not been processed yet.
func CancelSertifikasiRegistration(db *gorm.DB, pendaftaranID, userID uint) (*models.PendaftaranSertifikasi, error) {
	var pendaftaran models.PendaftaranSertifikasi
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
