package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pkl/models"
)

func daftarDisetujui(t *testing.T, db *gorm.DB, user models.User) models.PendaftaranSertifikasi {
	t.Helper()

	sertifikasi, batch := buatSertifikasiAktif(t, db, 25)
	pendaftaran, err := CreateSertifikasiRegistration(db, user.ID, sertifikasi.ID, batch.ID, formSekolah())
	require.NoError(t, err)
	disetujui, err := UpdateSertifikasiStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)
	return *disetujui
}

func TestGradeSertifikasiBaru(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	pendaftaran := daftarDisetujui(t, db, user)

	teori := 88.0
	praktik := 91.5
	penilaian, err := GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{
		Hasil:        models.HasilDiterima,
		Catatan:      "Lulus ujian teori dan praktik",
		NilaiTeori:   &teori,
		NilaiPraktik: &praktik,
	})
	require.NoError(t, err)

	assert.Equal(t, models.HasilDiterima, penilaian.Hasil)
	assert.Equal(t, admin.ID, penilaian.PenilaiID)
	require.NotNil(t, penilaian.NilaiTeori)
	assert.Equal(t, 88.0, *penilaian.NilaiTeori)
	assert.False(t, penilaian.TanggalPenilaian.IsZero())
}

// Grading the same registration twice must overwrite, not duplicate.
func TestGradeSertifikasiUpsert(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	pendaftaran := daftarDisetujui(t, db, user)

	pertama, err := GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{
		Hasil:   models.HasilDitolak,
		Catatan: "Nilai praktik belum masuk",
	})
	require.NoError(t, err)

	kedua, err := GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{
		Hasil:   models.HasilDiterima,
		Catatan: "Revisi setelah nilai praktik masuk",
	})
	require.NoError(t, err)
	assert.Equal(t, pertama.ID, kedua.ID)

	var total int64
	require.NoError(t, db.Model(&models.PenilaianSertifikasi{}).
		Where("pendaftaran_id = ?", pendaftaran.ID).Count(&total).Error)
	assert.Equal(t, int64(1), total)

	var tersimpan models.PenilaianSertifikasi
	require.NoError(t, db.Where("pendaftaran_id = ?", pendaftaran.ID).First(&tersimpan).Error)
	assert.Equal(t, models.HasilDiterima, tersimpan.Hasil)
}

func TestGradeSertifikasiPendaftaranTidakDitemukan(t *testing.T) {
	db := setupTestDB(t)
	admin := buatAdmin(t, db)

	_, err := GradeSertifikasi(db, 999, admin.ID, NilaiSertifikasi{Hasil: models.HasilDiterima})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGradeSertifikasiHasilTidakValid(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	pendaftaran := daftarDisetujui(t, db, user)

	_, err := GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{Hasil: "Lulus"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGradeSertifikasiBatchBerhasil(t *testing.T) {
	db := setupTestDB(t)
	admin := buatAdmin(t, db)
	satu := daftarDisetujui(t, db, buatKlien(t, db, "a@pkl.test"))
	dua := daftarDisetujui(t, db, buatKlien(t, db, "b@pkl.test"))

	hasil, err := GradeSertifikasiBatch(db, admin.ID, []NilaiBatchEntry{
		{PendaftaranID: satu.ID, Hasil: models.HasilDiterima},
		{PendaftaranID: dua.ID, Hasil: models.HasilDitolak, Catatan: "Nilai teori di bawah ambang"},
	})
	require.NoError(t, err)
	require.Len(t, hasil, 2)

	var total int64
	require.NoError(t, db.Model(&models.PenilaianSertifikasi{}).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

// One unknown registration in the batch rolls back everything written
// before it.
func TestGradeSertifikasiBatchAtomik(t *testing.T) {
	db := setupTestDB(t)
	admin := buatAdmin(t, db)
	satu := daftarDisetujui(t, db, buatKlien(t, db, "a@pkl.test"))
	dua := daftarDisetujui(t, db, buatKlien(t, db, "b@pkl.test"))

	_, err := GradeSertifikasiBatch(db, admin.ID, []NilaiBatchEntry{
		{PendaftaranID: satu.ID, Hasil: models.HasilDiterima},
		{PendaftaranID: 999, Hasil: models.HasilDiterima},
		{PendaftaranID: dua.ID, Hasil: models.HasilDiterima},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var total int64
	require.NoError(t, db.Model(&models.PenilaianSertifikasi{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestGradeSertifikasiBatchHasilTidakValid(t *testing.T) {
	db := setupTestDB(t)
	admin := buatAdmin(t, db)
	satu := daftarDisetujui(t, db, buatKlien(t, db, "a@pkl.test"))

	_, err := GradeSertifikasiBatch(db, admin.ID, []NilaiBatchEntry{
		{PendaftaranID: satu.ID, Hasil: "Lulus"},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	var total int64
	require.NoError(t, db.Model(&models.PenilaianSertifikasi{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestGradePKLBatchAtomik(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	posisi := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisi.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)

	_, err = GradePKLBatch(db, admin.ID, []NilaiBatchEntry{
		{PendaftaranID: pendaftaran.ID, Hasil: models.HasilDiterima},
		{PendaftaranID: 999, Hasil: models.HasilDiterima},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	var total int64
	require.NoError(t, db.Model(&models.PenilaianPKL{}).Count(&total).Error)
	assert.Equal(t, int64(0), total)
}

func TestTerbitkanSertifikatSertifikasi(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	pendaftaran := daftarDisetujui(t, db, user)

	// Not graded yet.
	_, err := IssueSertifikatSertifikasi(db, pendaftaran.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{Hasil: models.HasilDiterima})
	require.NoError(t, err)

	sertifikat, err := IssueSertifikatSertifikasi(db, pendaftaran.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JenisSertifikasi, sertifikat.JenisProgram)
	assert.Equal(t, user.ID, sertifikat.UserID)
	assert.Contains(t, sertifikat.NomorSertifikat, "SERT-")

	// Idempotent: re-issuing returns the same certificate number.
	ulang, err := IssueSertifikatSertifikasi(db, pendaftaran.ID)
	require.NoError(t, err)
	assert.Equal(t, sertifikat.NomorSertifikat, ulang.NomorSertifikat)

	var total int64
	require.NoError(t, db.Model(&models.Sertifikat{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestTerbitkanSertifikatHasilDitolak(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	pendaftaran := daftarDisetujui(t, db, user)

	_, err := GradeSertifikasi(db, pendaftaran.ID, admin.ID, NilaiSertifikasi{Hasil: models.HasilDitolak})
	require.NoError(t, err)

	_, err = IssueSertifikatSertifikasi(db, pendaftaran.ID)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestTerbitkanSertifikatPKL(t *testing.T) {
	db := setupTestDB(t)
	user := buatKlien(t, db, "a@pkl.test")
	admin := buatAdmin(t, db)
	posisi := buatPosisiAktif(t, db, "Backend Intern", time.Now().AddDate(0, 6, 0))

	pendaftaran, err := CreatePKLRegistration(db, user.ID, posisi.ID, formUniversitas())
	require.NoError(t, err)
	_, err = UpdatePKLStatus(db, pendaftaran.ID, models.StatusDisetujui, "")
	require.NoError(t, err)
	_, err = GradePKL(db, pendaftaran.ID, admin.ID, NilaiPKL{Hasil: models.HasilDiterima})
	require.NoError(t, err)

	sertifikat, err := IssueSertifikatPKL(db, pendaftaran.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JenisPKL, sertifikat.JenisProgram)
	assert.Equal(t, "Backend Intern", sertifikat.NamaProgram)
	assert.Contains(t, sertifikat.NomorSertifikat, "PKL-")
}
