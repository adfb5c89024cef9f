// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "bimbelku_backend/internals/features/school/attendance/model"
	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	paymentModel "bimbelku_backend/internals/features/school/payments/model"
	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	studentModel "bimbelku_backend/internals/features/school/students/model"
	teacherModel "bimbelku_backend/internals/features/school/teachers/model"
	userModel "bimbelku_backend/internals/features/users/auth/model"
)

// AutoMigrateAll — urutan mengikuti dependensi FK
func AutoMigrateAll(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&roomModel.ClassRoomModel{},
		&teacherModel.TeacherModel{},
		&groupModel.CourseGroupModel{},
		&sessionModel.ClassSessionExceptionModel{},
		&sessionModel.ClassSessionModel{},
		&studentModel.StudentModel{},
		&studentModel.EnrollmentModel{},
		&paymentModel.PaymentModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai")
}
