package repository

import (
	"testing"
	"time"

	"chamcong-backend/internal/model"
)

func TestBulkInsertIgnoresDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	ts := mustParseTime(t, "2025-03-10 08:00:00")
	first := model.AttendanceRaw{UserID: "1", Timestamp: ts, DeviceSN: "SN-A"}

	inserted, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{first})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if inserted != 1 {
		t.Errorf("inserted = %d, muốn 1", inserted)
	}

	// Cùng khóa (user_id, timestamp, device_sn), khác note: phải bị bỏ qua
	dup := model.AttendanceRaw{UserID: "1", Timestamp: ts, DeviceSN: "SN-A", Note: "khác"}
	inserted, err = repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{dup})
	if err != nil {
		t.Fatalf("insert dup: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted = %d, muốn 0 (đụng khóa chống trùng)", inserted)
	}

	// Khác serial là lần quẹt của máy khác: phải được ghi
	other := model.AttendanceRaw{UserID: "1", Timestamp: ts, DeviceSN: "SN-B"}
	inserted, err = repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{other})
	if err != nil {
		t.Fatalf("insert máy khác: %v", err)
	}
	if inserted != 1 {
		t.Errorf("inserted = %d, muốn 1", inserted)
	}

	total, _ := repo.Count()
	if total != 2 {
		t.Errorf("DB có %d dòng, muốn 2", total)
	}
}

func TestBulkInsertMixedBatchCountsNewOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	ts := mustParseTime(t, "2025-03-10 08:00:00")
	if _, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: ts, DeviceSN: "SN-A"},
	}); err != nil {
		t.Fatalf("chuẩn bị: %v", err)
	}

	inserted, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: ts, DeviceSN: "SN-A"},                // trùng
		{UserID: "2", Timestamp: ts, DeviceSN: "SN-A"},                // mới
		{UserID: "1", Timestamp: ts.Add(time.Hour), DeviceSN: "SN-A"}, // mới
	})
	if err != nil {
		t.Fatalf("insert lô trộn: %v", err)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, muốn 2 (chỉ đếm dòng mới)", inserted)
	}
}

func TestGetAllFiltersByDateAndDevice(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	if _, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-09 08:00:00"), DeviceSN: "SN-A", DeviceID: 1},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 08:00:00"), DeviceSN: "SN-A", DeviceID: 1},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 09:00:00"), DeviceSN: "SN-B", DeviceID: 2},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-11 08:00:00"), DeviceSN: "SN-A", DeviceID: 1},
	}); err != nil {
		t.Fatalf("chuẩn bị: %v", err)
	}

	from := mustParseTime(t, "2025-03-10 00:00:00")
	to := mustParseTime(t, "2025-03-10 00:00:00")
	records, err := repo.GetAll(&from, &to, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("lọc theo ngày: %d dòng, muốn 2", len(records))
	}

	deviceID := uint(2)
	records, err = repo.GetAll(&from, &to, &deviceID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 1 || records[0].DeviceSN != "SN-B" {
		t.Errorf("lọc theo máy: %+v", records)
	}
}

func TestGetAllOrdersByTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	if _, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 17:00:00"), DeviceSN: "SN-A"},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 08:00:00"), DeviceSN: "SN-A"},
	}); err != nil {
		t.Fatalf("chuẩn bị: %v", err)
	}

	records, err := repo.GetAll(nil, nil, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 2 || !records[0].Timestamp.Before(records[1].Timestamp) {
		t.Errorf("phải sắp theo thời gian tăng dần: %+v", records)
	}
}

func TestHardDeleteAllowsRedownload(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	ts := mustParseTime(t, "2025-03-10 08:00:00")
	rec := model.AttendanceRaw{UserID: "1", Timestamp: ts, DeviceSN: "SN-A"}
	if _, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{rec}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.DeleteAll(); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	// Xóa phải là xóa cứng: tải lại cùng lần quẹt phải insert được
	inserted, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: ts, DeviceSN: "SN-A"},
	})
	if err != nil {
		t.Fatalf("insert lại: %v", err)
	}
	if inserted != 1 {
		t.Errorf("inserted = %d, muốn 1 (dòng xóa mềm sẽ chặn tải lại)", inserted)
	}
}

func TestDeleteByIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRawRepository(db)

	if _, err := repo.BulkInsertIgnoreDuplicates([]model.AttendanceRaw{
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 08:00:00"), DeviceSN: "SN-A"},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 12:00:00"), DeviceSN: "SN-A"},
		{UserID: "1", Timestamp: mustParseTime(t, "2025-03-10 17:00:00"), DeviceSN: "SN-A"},
	}); err != nil {
		t.Fatalf("chuẩn bị: %v", err)
	}
	records, _ := repo.GetAll(nil, nil, nil)

	if err := repo.DeleteByIDs([]uint{records[0].ID, records[2].ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	total, _ := repo.Count()
	if total != 1 {
		t.Errorf("còn %d dòng, muốn 1", total)
	}
}
