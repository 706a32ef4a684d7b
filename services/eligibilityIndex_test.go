package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkl/database"
	"pkl/models"
)

// The partial unique indexes from the migrations also hold on sqlite,
// so the tests below run against the same DDL production gets.

func TestIndeksMengizinkanDaftarUlangSetelahLulus(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, database.EnsureRegistrationIndexes(db))

	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)
	_, err = GradePKL(db, pendaftaran.ID, admin.ID, NilaiPKL{Hasil: models.HasilDiterima})
	require.NoError(t, err)

	// The passed registration keeps status Disetujui; the index must
	// not treat it as a conflicting row.
	baru, err := CreatePKLRegistration(db, user.ID, posisiBaru.ID, formUniversitas())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPengajuan, baru.Status)
}

func TestIndeksMenolakPengajuanPKLGanda(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, database.EnsureRegistrationIndexes(db))

	user := buatKlien(t, db, "a@pkl.test")
	posisi := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))

	_, err := CreatePKLRegistration(db, user.ID, posisi.ID, formUniversitas())
	require.NoError(t, err)

	// Bypass the application guard the way a concurrent submission
	// that lost the read-then-insert race would.
	err = db.Create(&models.PendaftaranPKL{
		UserID:           user.ID,
		PosisiPKLID:      posisi.ID,
		Status:           models.StatusPengajuan,
		TanggalPengajuan: time.Now(),
	}).Error
	assert.Error(t, err)
}

func TestIndeksMenolakPendaftaranSertifikasiGanda(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, database.EnsureRegistrationIndexes(db))

	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	_, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	err = db.Create(&models.PendaftaranSertifikasi{
		UserID:           user.ID,
		SertifikasiID:    sertifikasi.ID,
		BatchID:          batch.ID,
		Status:           models.StatusPengajuan,
		TanggalPengajuan: time.Now(),
	}).Error
	assert.Error(t, err)
}
