package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/sessions/service"
	"bimbelku_backend/internals/helpers/dbtime"
)

// StartSessionGenerateScheduler — generate sesi beberapa minggu ke depan,
// jalan sekali saat start lalu tiap 24 jam. Tanpa force: sesi yang sudah
// diedit manual tidak disentuh.
func StartSessionGenerateScheduler(db *gorm.DB) {
	go func() {
		// Horizon dari env (default: 4 minggu)
		weeks := 4
		if val := os.Getenv("SESSION_GENERATE_WEEKS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				weeks = parsed
			}
		}

		for {
			log.Println("[SESSION-GEN] Menjalankan generate sesi terjadwal...")

			start := dbtime.TodaySchool()
			end := start.AddDate(0, 0, weeks*7)

			summary, err := service.GenerateSessions(context.Background(), db, start, end, service.GenerateOptions{})
			if err != nil {
				log.Printf("[SESSION-GEN ERROR] Gagal generate sesi: %v", err)
			} else {
				log.Printf("[SESSION-GEN] created=%d updated=%d deleted=%d skipped=%d errors=%d",
					summary.Created, summary.Updated, summary.Deleted, summary.Skipped, len(summary.Errors))
				for _, msg := range summary.Errors {
					log.Printf("[SESSION-GEN CONFLICT] %s", msg)
				}
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
