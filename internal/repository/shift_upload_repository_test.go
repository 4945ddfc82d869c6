package repository

import (
	"testing"
	"time"

	"chamcong-backend/internal/model"
)

func TestShiftUploadUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewShiftUploadRepository(db)

	first := model.ShiftUpload{
		EmployeeID: 1, DeviceID: 1, UserID: "101",
		AttendanceName: "An", UploadedAt: time.Now(),
	}
	if err := repo.Upsert(&first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Tải lại cùng (nhân viên, máy) với mã mới: cập nhật, không nhân đôi
	second := model.ShiftUpload{
		EmployeeID: 1, DeviceID: 1, UserID: "555",
		AttendanceName: "An (sửa)", UploadedAt: time.Now(),
	}
	if err := repo.Upsert(&second); err != nil {
		t.Fatalf("upsert lần 2: %v", err)
	}

	var count int64
	db.Model(&model.ShiftUpload{}).Count(&count)
	if count != 1 {
		t.Fatalf("có %d bản ghi, muốn 1", count)
	}
	var record model.ShiftUpload
	db.First(&record)
	if record.UserID != "555" || record.AttendanceName != "An (sửa)" {
		t.Errorf("bản ghi không được cập nhật: %+v", record)
	}

	// Máy khác là bản ghi riêng
	other := model.ShiftUpload{EmployeeID: 1, DeviceID: 2, UserID: "101", UploadedAt: time.Now()}
	if err := repo.Upsert(&other); err != nil {
		t.Fatalf("upsert máy khác: %v", err)
	}
	db.Model(&model.ShiftUpload{}).Count(&count)
	if count != 2 {
		t.Errorf("có %d bản ghi, muốn 2", count)
	}
}

func TestShiftUploadUpsertRestoresRemovedRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewShiftUploadRepository(db)

	record := model.ShiftUpload{EmployeeID: 1, DeviceID: 1, UserID: "101", UploadedAt: time.Now()}
	if err := repo.Upsert(&record); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := repo.DeleteByID(record.ID); err != nil {
		t.Fatalf("gỡ bản ghi: %v", err)
	}

	// Gỡ là xóa mềm; tải lại nhân viên đó lên cùng máy phải khôi phục dòng
	again := model.ShiftUpload{EmployeeID: 1, DeviceID: 1, UserID: "101", UploadedAt: time.Now()}
	if err := repo.Upsert(&again); err != nil {
		t.Fatalf("upsert lại: %v", err)
	}

	records, err := repo.GetByDevice(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("danh sách có %d bản ghi, muốn 1 (dòng đã gỡ được khôi phục)", len(records))
	}
}

func TestShiftUploadGetByDeviceOrdersByUploadedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewShiftUploadRepository(db)

	older := model.ShiftUpload{EmployeeID: 1, DeviceID: 1, UserID: "1", UploadedAt: time.Now().Add(-time.Hour)}
	newer := model.ShiftUpload{EmployeeID: 2, DeviceID: 1, UserID: "2", UploadedAt: time.Now()}
	if err := repo.BulkUpsert([]model.ShiftUpload{older, newer}); err != nil {
		t.Fatalf("bulk upsert: %v", err)
	}

	records, err := repo.GetByDevice(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("có %d bản ghi, muốn 2", len(records))
	}
	if records[0].UserID != "2" {
		t.Errorf("phải sắp mới nhất trước, dòng đầu là user %s", records[0].UserID)
	}
}
