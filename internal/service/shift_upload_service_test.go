package service

import (
	"context"
	"errors"
	"testing"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"gorm.io/gorm"
)

func newUploadService(t *testing.T, db *gorm.DB, fleet *device.SimFleet) *ShiftUploadService {
	t.Helper()
	return NewShiftUploadService(
		repository.NewShiftUploadRepository(db),
		repository.NewDeviceRepository(db),
		repository.NewEmployeeRepository(db),
		fleet,
	)
}

func createEmployee(t *testing.T, db *gorm.DB, emp model.Employee) model.Employee {
	t.Helper()
	if err := db.Create(&emp).Error; err != nil {
		t.Fatalf("tạo nhân viên: %v", err)
	}
	return emp
}

func TestUploadUserIDFallbackChain(t *testing.T) {
	db := newTestDB(t)
	dev, sim, fleet := newTestDevice(t, db, "SN-UP1")

	withCode := createEmployee(t, db, model.Employee{
		EmployeeCode: "NV001", Name: "An", AttendanceCode: "101", AttendanceName: "AN NV",
	})
	codeOnly := createEmployee(t, db, model.Employee{EmployeeCode: "NV002", Name: "Bình"})
	bare := createEmployee(t, db, model.Employee{Name: "Cường"})

	svc := newUploadService(t, db, fleet)
	res := svc.UploadEmployees(context.Background(), dev.ID,
		[]uint{withCode.ID, codeOnly.ID, bare.ID}, nil)
	if !res.OK {
		t.Fatalf("upload lỗi: %s", res.Message)
	}
	if res.Count != 3 {
		t.Errorf("count = %d, muốn 3", res.Count)
	}

	// Mã trên máy rơi theo chuỗi attendance_code → employee_code → id
	if !sim.HasUser("101") {
		t.Error("nhân viên có attendance_code phải dùng mã đó")
	}
	if !sim.HasUser("NV002") {
		t.Error("thiếu attendance_code thì dùng employee_code")
	}
	if !sim.HasUser("3") {
		t.Errorf("thiếu cả hai thì dùng id, máy đang có %d user", sim.UserCount())
	}

	// Tên ưu tiên attendance_name
	var record model.ShiftUpload
	if err := db.Where("employee_id = ?", withCode.ID).First(&record).Error; err != nil {
		t.Fatalf("đọc shift_upload: %v", err)
	}
	if record.AttendanceName != "AN NV" {
		t.Errorf("attendance_name = %q", record.AttendanceName)
	}
	if record.UserID != "101" {
		t.Errorf("user_id = %q", record.UserID)
	}
}

func TestUploadUpsertsOnReupload(t *testing.T) {
	db := newTestDB(t)
	dev, _, fleet := newTestDevice(t, db, "SN-UP2")
	emp := createEmployee(t, db, model.Employee{EmployeeCode: "NV001", Name: "An"})

	svc := newUploadService(t, db, fleet)
	if res := svc.UploadEmployees(context.Background(), dev.ID, []uint{emp.ID}, nil); !res.OK {
		t.Fatalf("upload lần 1: %s", res.Message)
	}

	// Đổi mã chấm công rồi tải lại: vẫn một bản ghi, giá trị mới nhất
	emp.AttendanceCode = "555"
	if err := db.Save(&emp).Error; err != nil {
		t.Fatalf("cập nhật nhân viên: %v", err)
	}
	if res := svc.UploadEmployees(context.Background(), dev.ID, []uint{emp.ID}, nil); !res.OK {
		t.Fatalf("upload lần 2: %s", res.Message)
	}

	var count int64
	db.Model(&model.ShiftUpload{}).Where("employee_id = ? AND device_id = ?", emp.ID, dev.ID).Count(&count)
	if count != 1 {
		t.Fatalf("có %d bản ghi, muốn 1 (upsert)", count)
	}
	var record model.ShiftUpload
	db.Where("employee_id = ?", emp.ID).First(&record)
	if record.UserID != "555" {
		t.Errorf("user_id = %q, muốn giá trị lần tải mới nhất", record.UserID)
	}
}

func TestUploadContinuesPastItemFailure(t *testing.T) {
	db := newTestDB(t)
	dev, sim, fleet := newTestDevice(t, db, "SN-UP3")

	var ids []uint
	for _, code := range []string{"1", "2", "3", "4", "5"} {
		emp := createEmployee(t, db, model.Employee{
			EmployeeCode: "NV" + code, Name: "NV " + code, AttendanceCode: code,
		})
		ids = append(ids, emp.ID)
	}
	// Mục thứ 3 lỗi trên máy, các mục còn lại phải đi tiếp
	sim.SetUserErr = map[string]error{"3": errors.New("ghi flash lỗi")}

	svc := newUploadService(t, db, fleet)
	res := svc.UploadEmployees(context.Background(), dev.ID, ids, nil)
	if !res.OK {
		t.Fatalf("một mục lỗi không được làm hỏng cả lô: %s", res.Message)
	}
	if res.Count != 4 {
		t.Errorf("count = %d, muốn 4 (chỉ đếm mục lên máy thành công)", res.Count)
	}
	if sim.HasUser("3") {
		t.Error("mục lỗi không được có trên máy")
	}

	// Sổ theo dõi vẫn ghi đủ 5 mục đã thử
	var saved int64
	db.Model(&model.ShiftUpload{}).Count(&saved)
	if saved != 5 {
		t.Errorf("DB có %d bản ghi, muốn 5 (ghi cả mục lỗi để tải lại)", saved)
	}
}

func TestUploadNoSelection(t *testing.T) {
	db := newTestDB(t)
	dev, _, fleet := newTestDevice(t, db, "SN-UP4")

	svc := newUploadService(t, db, fleet)
	res := svc.UploadEmployees(context.Background(), dev.ID, nil, nil)
	if res.OK {
		t.Fatal("danh sách rỗng mà vẫn OK")
	}
	if res.Message != Msg.NoSelection {
		t.Errorf("message = %q", res.Message)
	}
}

func TestDeleteEmployeesKeepsDBRecords(t *testing.T) {
	db := newTestDB(t)
	dev, sim, fleet := newTestDevice(t, db, "SN-DEL1")
	emp := createEmployee(t, db, model.Employee{EmployeeCode: "NV001", Name: "An", AttendanceCode: "7"})

	svc := newUploadService(t, db, fleet)
	if res := svc.UploadEmployees(context.Background(), dev.ID, []uint{emp.ID}, nil); !res.OK {
		t.Fatalf("upload: %s", res.Message)
	}

	res := svc.DeleteEmployees(context.Background(), dev.ID, []string{"7"}, nil)
	if !res.OK || res.Count != 1 {
		t.Fatalf("delete: ok=%v count=%d (%s)", res.OK, res.Count, res.Message)
	}
	if sim.HasUser("7") {
		t.Error("user vẫn còn trên máy")
	}

	// Bản ghi DB giữ nguyên làm dấu vết
	var saved int64
	db.Model(&model.ShiftUpload{}).Count(&saved)
	if saved != 1 {
		t.Errorf("DB có %d bản ghi, muốn 1", saved)
	}
}

func TestDeleteEmployeesSkipsMissingUser(t *testing.T) {
	db := newTestDB(t)
	dev, sim, fleet := newTestDevice(t, db, "SN-DEL2")
	sim.AddUser(device.User{UserID: "1", Name: "An"})

	svc := newUploadService(t, db, fleet)
	res := svc.DeleteEmployees(context.Background(), dev.ID, []string{"1", "999"}, nil)
	if !res.OK {
		t.Fatalf("delete lỗi: %s", res.Message)
	}
	if res.Count != 1 {
		t.Errorf("count = %d, muốn 1 (mã không có trên máy thì bỏ qua)", res.Count)
	}
}

func TestDeleteFingerprintsRecreatesUser(t *testing.T) {
	db := newTestDB(t)
	dev, sim, fleet := newTestDevice(t, db, "SN-FP1")
	sim.AddUser(device.User{UID: 3, UserID: "7", Name: "An", Privilege: device.PrivilegeUser, Card: 123})

	svc := newUploadService(t, db, fleet)
	res := svc.DeleteFingerprints(context.Background(), dev.ID, []string{"7", "404"}, nil)
	if !res.OK {
		t.Fatalf("delete fingerprints lỗi: %s", res.Message)
	}
	if res.Count != 1 {
		t.Errorf("count = %d, muốn 1 (mã không có trên máy thì bỏ qua)", res.Count)
	}

	// User phải còn trên máy với đúng thuộc tính cũ (chỉ mất vân tay)
	if !sim.HasUser("7") {
		t.Fatal("user phải được tạo lại sau khi xóa")
	}
	session, err := fleet.Dial(dev.IPAddress, dev.Port, "", 0)
	if err != nil {
		t.Fatalf("dial lại: %v", err)
	}
	defer session.Disconnect()
	users, err := session.Users()
	if err != nil {
		t.Fatalf("đọc users: %v", err)
	}
	for _, u := range users {
		if u.UserID == "7" && (u.Name != "An" || u.Card != 123) {
			t.Errorf("thuộc tính user bị mất khi tạo lại: %+v", u)
		}
	}
}
