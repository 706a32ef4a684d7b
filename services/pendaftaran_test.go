package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkl/models"
)

func TestCreateSertifikasiRegistration(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	pendaftaran, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	assert.Equal(t, models.StatusPengajuan, pendaftaran.Status)
	assert.Nil(t, pendaftaran.TanggalDiproses)
	assert.False(t, pendaftaran.TanggalPengajuan.IsZero())

	dokumen, err := DecodeDokumen(pendaftaran.Dokumen)
	require.NoError(t, err)
	require.Contains(t, dokumen, "cv")
	assert.Equal(t, "cv-siswa.pdf", dokumen["cv"].NamaAsli)
	assert.Equal(t, int64(2048), dokumen["cv"].Ukuran)
	assert.Equal(t, "application/pdf", dokumen["cv"].TipeMime)
}

func TestCreateRegistrationValidasiSekolah(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	form := formSekolah()
	form.Jurusan = ""
	form.Kelas = ""

	_, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, form)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "jurusan")
	assert.Contains(t, validationErr.Fields, "kelas")
}

func TestCreateRegistrationValidasiUniversitas(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	form := formUniversitas()
	form.Jurusan = ""

	_, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, form)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "jurusan")
	assert.NotContains(t, validationErr.Fields, "kelas")
}

func TestCreateRegistrationInstitusiTidakDikenal(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	form := formSekolah()
	form.InstitusiAsal = "Pesantren"

	_, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, form)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "institusi_asal")
}

// Full walkthrough: submit, approve, pass, then a repeat registration
// for the same program and batch is still a duplicate.
func TestSkenarioSertifikasiLengkap(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	pendaftaran, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPengajuan, pendaftaran.Status)

	disetujui, err := UpdateSertifikasiStatus(db, pendaftaran.ID, models.StatusDisetujui, "Berkas lengkap")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDisetujui, disetujui.Status)
	require.NotNil(t, disetujui.TanggalDiproses)
	assert.Equal(t, "Berkas lengkap", disetujui.CatatanAdmin)

	_, err = GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{Hasil: models.HasilDiterima})
	require.NoError(t, err)

	_, err = CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	assert.ErrorIs(t, err, ErrDuplicateRegistration)
}

func TestUpdateStatusTidakValid(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	pendaftaran, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	_, err = UpdateSertifikasiStatus(db, pendaftaran.ID, "Diproses", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusPendaftaranTidakDitemukan(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateSertifikasiStatus(db, 999, models.StatusDisetujui, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelHanyaPemilik(t *testing.T) {
	db := setupTestDB(t)
	pemilik := buatKlien(t, db, "a@pkl.test")
	orangLain := buatKlien(t, db, "b@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	pendaftaran, err := CreateSertifikasiRegistration(db, pemilik.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)

	_, err = CancelSertifikasiRegistration(db, pendaftaran.ID, orangLain.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelSetelahDisetujui(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)

	pendaftaran, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)
	_, err = UpdateSertifikasiStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)

	_, err = CancelSertifikasiRegistration(db, pendaftaran.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelBerhasil(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	posisi := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisi.ID, formUniversitas())
	require.NoError(t, err)

	dibatalkan, err := CancelPKLRegistration(db, pendaftaran.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDibatalkan, dibatalkan.Status)
	require.NotNil(t, dibatalkan.TanggalDiproses)

	// A cancelled registration no longer blocks a new one.
	assert.NoError(t, CanRegisterPKL(db, user.ID, posisi.ID))
}

func TestPKLKeduaDitolakSelamaAktif(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "b@pkl.test")
	posisiLama := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))
	posisiBaru := buatPosisiAktif(t, db, "Frontend Intern", time.Now().AddDate(0, 6, 0))

	_, err := CreatePKLRegistration(db, user.ID, posisiLama.ID, formUniversitas())
	require.NoError(t, err)

	_, err = CreatePKLRegistration(db, user.ID, posisiBaru.ID, formUniversitas())
	var activeErr *ActiveRegistrationError
	require.ErrorAs(t, err, &activeErr)

	var total int64
	require.NoError(t, db.Model(&models.PendaftaranPKL{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestPKLDaftarUlangSetelahLulus(t *testing.T) {
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

	baru, err := CreatePKLRegistration(db, user.ID, posisiBaru.ID, formUniversitas())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPengajuan, baru.Status)
}
