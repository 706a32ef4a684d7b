package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pkl/config"
	"pkl/database"
	"pkl/models"
)

// InitializeReminderScheduler sets up the daily sweep for stale
// internship registrations. Registrations that are approved, past
// their position's end date and still ungraded stay blocking for the
// student, so the admin gets a daily list until they decide.
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 7 AM
	c.AddFunc("0 7 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily stale-registration check...")
		ProcessStaleRegistrations()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 7 AM")
}

// ProcessStaleRegistrations emails the admin about approved internship
// registrations whose end date passed without a grading decision. The
// registrations themselves are not touched: the transition stays an
// explicit admin action.
func ProcessStaleRegistrations() {
	db := database.Database.Db
	now := time.Now()

	var pendaftaranAktif []models.PendaftaranPKL
	if err := db.
		Where("status = ? AND is_deleted = ?", models.StatusDisetujui, false).
		Preload("User").
		Preload("PosisiPKL").
		Find(&pendaftaranAktif).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching approved registrations: %v", err)
		return
	}

	var rows []string
	for _, pendaftaran := range pendaftaranAktif {
		if !pendaftaran.PosisiPKL.TanggalSelesai.Before(now) {
			continue
		}

		var penilaian models.PenilaianPKL
		err := db.Where("pendaftaran_id = ? AND is_deleted = ?", pendaftaran.ID, false).First(&penilaian).Error
		if err == nil && penilaian.Hasil != models.HasilBelumDinilai {
			continue
		}

		rows = append(rows, fmt.Sprintf("%s - %s (selesai %s)",
			pendaftaran.User.Nama,
			pendaftaran.PosisiPKL.Nama,
			pendaftaran.PosisiPKL.TanggalSelesai.Format("02-01-2006")))
	}

	if len(rows) == 0 {
		log.Println("[REMINDER-SCHEDULER] No stale registrations found")
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d stale registrations", len(rows))
	if config.AppConfig.AdminEmail == "" {
		return
	}
	if err := SendPenilaianReminder(config.AppConfig.AdminEmail, rows); err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error sending reminder: %v", err)
	}
}
