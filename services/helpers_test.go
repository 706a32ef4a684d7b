package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pkl/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Sertifikasi{},
		&models.Batch{},
		&models.PosisiPKL{},
		&models.PendaftaranSertifikasi{},
		&models.PendaftaranPKL{},
		&models.PenilaianSertifikasi{},
		&models.PenilaianPKL{},
		&models.Sertifikat{},
	))

	return db
}

func buatKlien(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Nama:     "Siswa Uji",
		Email:    email,
		Password: "hashed",
		Role:     models.RoleKlien,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func buatAdmin(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	admin := models.User{
		Nama:     "Admin Uji",
		Email:    "admin@pkl.test",
		Password: "hashed",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func buatSertifikasiAktif(t *testing.T, db *gorm.DB, kuota int) (models.Sertifikasi, models.Batch) {
	t.Helper()

	sertifikasi := models.Sertifikasi{
		Nama:     "Web Development",
		Kategori: "IT",
		Status:   models.ProgramAktif,
	}
	require.NoError(t, db.Create(&sertifikasi).Error)

	batch := models.Batch{
		SertifikasiID:  sertifikasi.ID,
		Nama:           "Batch 1",
		TanggalMulai:   time.Now().AddDate(0, 0, 7),
		TanggalSelesai: time.Now().AddDate(0, 2, 0),
		Status:         models.ProgramAktif,
		Kuota:          kuota,
	}
	require.NoError(t, db.Create(&batch).Error)

	return sertifikasi, batch
}

func buatPosisiAktif(t *testing.T, db *gorm.DB, nama string, selesai time.Time) models.PosisiPKL {
	t.Helper()

	posisi := models.PosisiPKL{
		Nama:           nama,
		Divisi:         "Engineering",
		Status:         models.ProgramAktif,
		TanggalMulai:   selesai.AddDate(0, -3, 0),
		TanggalSelesai: selesai,
	}
	require.NoError(t, db.Create(&posisi).Error)
	return posisi
}

func formSekolah() FormPendaftaran {
	return FormPendaftaran{
		NoTelepon:     "081234567890",
		Alamat:        "Jl. Merdeka No. 1",
		Motivasi:      "Ingin menambah pengalaman.",
		InstitusiAsal: models.InstitusiSekolah,
		Jurusan:       "RPL",
		Kelas:         "XII",
		Dokumen: map[string]models.DokumenInfo{
			"cv": {
				NamaAsli:     "cv-siswa.pdf",
				Path:         "uploads/sertifikasi/abc.pdf",
				Ukuran:       2048,
				TipeMime:     "application/pdf",
				DiunggahPada: time.Now(),
			},
		},
	}
}

func formUniversitas() FormPendaftaran {
	return FormPendaftaran{
		NoTelepon:     "081234567891",
		Alamat:        "Jl. Sudirman No. 2",
		InstitusiAsal: models.InstitusiUniversitas,
		Jurusan:       "Informatika",
		ProgramStudi:  "Teknik Informatika",
		Semester:      "5",
	}
}
