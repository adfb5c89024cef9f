// file: internals/features/school/sessions/service/service_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	groupModel "bimbelku_backend/internals/features/school/course_groups/model"
	roomModel "bimbelku_backend/internals/features/school/rooms/model"
	sessionModel "bimbelku_backend/internals/features/school/sessions/model"
	"bimbelku_backend/internals/helpers/dbtime"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&roomModel.ClassRoomModel{},
		&groupModel.CourseGroupModel{},
		&sessionModel.ClassSessionExceptionModel{},
		&sessionModel.ClassSessionModel{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, name string) roomModel.ClassRoomModel {
	t.Helper()
	room := roomModel.ClassRoomModel{
		ClassRoomID:        uuid.New(),
		ClassRoomsName:     name,
		ClassRoomsCapacity: 10,
		ClassRoomsFeatures: []byte("[]"),
		ClassRoomsIsActive: true,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room %s: %v", name, err)
	}
	return room
}

func seedGroup(t *testing.T, db *gorm.DB, name string, roomID uuid.UUID, dow int, start, end string) groupModel.CourseGroupModel {
	t.Helper()
	g := groupModel.CourseGroupModel{
		CourseGroupID:            uuid.New(),
		CourseGroupsName:         name,
		CourseGroupsSubject:      "Matematika",
		CourseGroupsLevel:        "SMA",
		CourseGroupsMonthlyPrice: 300000,
		CourseGroupsTeacherID:    uuid.New(),
		CourseGroupsRoomID:       roomID,
		CourseGroupsDayOfWeek:    dow,
		CourseGroupsStartTime:    dbtime.MustParse(start),
		CourseGroupsEndTime:      dbtime.MustParse(end),
		CourseGroupsIsActive:     true,
	}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed group %s: %v", name, err)
	}
	return g
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dbtime.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}
