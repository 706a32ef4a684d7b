package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkl/models"
)

func TestCanRegisterSertifikasiProgramTidakAktif(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")

	sertifikasi := models.Sertifikasi{Nama: "Jaringan", Kategori: "IT", Status: models.ProgramDraft}
	require.NoError(t, db.Create(&sertifikasi).Error)
	batch := models.Batch{SertifikasiID: sertifikasi.ID, Nama: "Batch 1", Status: models.ProgramAktif}
	require.NoError(t, db.Create(&batch).Error)

	err := CanRegisterSertifikasi(db, user.ID, sertifikasi.ID, batch.ID)
	assert.ErrorIs(t, err, ErrProgramUnavailable)
}

func TestCanRegisterSertifikasiBatchTidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, _ := buatSertifikasiAktif(t, db, 0)

	err := CanRegisterSertifikasi(db, user.ID, sertifikasi.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCanRegisterSertifikasiKuotaPenuh(t *testing.T) {
	db := setupTestDB(t)
	userA := buatKlien(t, db, "a@pkl.test")
	userB := buatKlien(t, db, "b@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 1)

	_, err := CreateSertifikasiRegistration(db, userA.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	err = CanRegisterSertifikasi(db, userB.ID, sertifikasi.ID, batch.ID)
	assert.ErrorIs(t, err, ErrProgramUnavailable)
	assert.Contains(t, err.Error(), "penuh")
}

func TestCanRegisterSertifikasiDuplikat(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	_, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	err = CanRegisterSertifikasi(db, user.ID, sertifikasi.ID, batch.ID)
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}

func TestCanRegisterPKLMenungguPersetujuan(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", time.Now().AddDate(0, 6, 0))

	_, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)

	err = CanRegisterPKL(db, user.ID, posisiBaru.ID)
	var activeErr *ActiveRegistrationError
	require.ErrorAs(t, err, &activeErr)
	assert.Contains(t, activeErr.Reason, "menunggu persetujuan")
}

func TestCanRegisterPKLMasihAktifMenyebutTanggalSelesai(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")
	selesai := time.Now().AddDate(0, 6, 0)
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", selesai)
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", selesai)

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)

	err = CanRegisterPKL(db, user.ID, posisiBaru.ID)
	var activeErr *ActiveRegistrationError
	require.ErrorAs(t, err, &activeErr)
	assert.Contains(t, activeErr.Reason, selesai.Format("02-01-2006"))
}

func TestCanRegisterPKLBerakhirMenungguPenilaian(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 0, -10))
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)

	err = CanRegisterPKL(db, user.ID, posisiBaru.ID)
	var activeErr *ActiveRegistrationError
	require.ErrorAs(t, err, &activeErr)
	assert.Contains(t, activeErr.Reason, "menunggu penilaian")
}

func TestCanRegisterPKLSetelahLulus(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")
	admin := buatAdmin(t, db)
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)
	_, err = GradePKL(db, pendaftaran.ID, admin.ID, NilaiPKL{Hasil: models.HasilDiterima})
	require.NoError(t, err)

	assert.NoError(t, CanRegisterPKL(db, user.ID, posisiBaru.ID))
}

func TestCanRegisterPKLPosisiTidakAktif(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")

	posisi := models.PosisiPKL{Nama: "QA Intern", Divisi: "QA", Status: models.ProgramSelesai}
	require.NoError(t, db.Create(&posisi).Error)

	err := CanRegisterPKL(db, user.ID, posisi.ID)
	assert.ErrorIs(t, err, ErrProgramUnavailable)
}
