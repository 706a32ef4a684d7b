package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"pkl/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		// Mail not configured, skip quietly.
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: PKL Center <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A3C6E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1A3C6E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1A3C6E; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Email ini dikirim otomatis oleh sistem PKL Center.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendStatusNotification tells a student the admin decision on a
// registration.
func SendStatusNotification(email, nama, namaProgram, status, catatan string) error {
	body := fmt.Sprintf(`
		<h2>Halo %s,</h2>
		<p>Status pendaftaran Anda untuk program <b>%s</b> telah diperbarui.</p>
		<div class="info-box">Status: <b>%s</b></div>`, nama, namaProgram, status)
	if catatan != "" {
		body += fmt.Sprintf(`<p>Catatan admin: %s</p>`, catatan)
	}

	return SendEmail([]string{email},
		fmt.Sprintf("Pendaftaran %s: %s", namaProgram, status),
		getEmailTemplate("Status Pendaftaran", body))
}

// SendPenilaianNotification tells a student the evaluator's outcome.
func SendPenilaianNotification(email, nama, namaProgram, hasil string) error {
	body := fmt.Sprintf(`
		<h2>Halo %s,</h2>
		<p>Penilaian untuk program <b>%s</b> telah diterbitkan.</p>
		<div class="info-box">Hasil: <b>%s</b></div>`, nama, namaProgram, hasil)

	return SendEmail([]string{email},
		fmt.Sprintf("Hasil Penilaian %s", namaProgram),
		getEmailTemplate("Hasil Penilaian", body))
}

// SendPenilaianReminder nudges the admin about approved internship
// registrations past their end date with no grading decision yet.
func SendPenilaianReminder(adminEmail string, rows []string) error {
	body := `<h2>Pengingat Penilaian PKL</h2>
		<p>Pendaftaran berikut sudah melewati tanggal selesai dan belum dinilai:</p><ul>`
	for _, row := range rows {
		body += fmt.Sprintf("<li>%s</li>", row)
	}
	body += "</ul><p>Mohon segera lakukan penilaian.</p>"

	return SendEmail([]string{adminEmail},
		"Pengingat: penilaian PKL tertunda",
		getEmailTemplate("Pengingat Penilaian", body))
}
