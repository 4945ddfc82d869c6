package service

import (
	"reflect"
	"testing"
	"time"

	"chamcong-backend/internal/model"

	"gorm.io/gorm"
)

func rawPunch(t *testing.T, id uint, userID, ts string) model.AttendanceRaw {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	return model.AttendanceRaw{
		Model:     gorm.Model{ID: id},
		UserID:    userID,
		Timestamp: parsed,
	}
}

func TestReconcileSplitsByNoon(t *testing.T) {
	records := []model.AttendanceRaw{
		rawPunch(t, 1, "7", "2025-03-10 08:01:00"),
		rawPunch(t, 2, "7", "2025-03-10 12:02:00"),
		rawPunch(t, 3, "7", "2025-03-10 13:00:00"),
		rawPunch(t, 4, "7", "2025-03-10 17:31:00"),
	}

	days := NewPunchReconciler().Reconcile(records)
	if len(days) != 1 {
		t.Fatalf("muốn 1 dòng, có %d", len(days))
	}
	day := days[0]

	if day.UserID != "00007" {
		t.Errorf("user id phải đệm 0 đủ 5 số, có %q", day.UserID)
	}
	if day.Date != "10/03/2025" {
		t.Errorf("ngày phải là dd/mm/yyyy, có %q", day.Date)
	}

	// 08:01 là giờ vào duy nhất; 12:02, 13:00, 17:31 đều sau 12h nên là
	// giờ ra, ghép theo vị trí với phía vào để trống
	want := []TimePair{
		{In: "08:01", Out: "12:02"},
		{In: "", Out: "13:00"},
		{In: "", Out: "17:31"},
	}
	if !reflect.DeepEqual(day.Pairs, want) {
		t.Errorf("pairs = %+v, muốn %+v", day.Pairs, want)
	}
}

func TestReconcileKeepsLastThreePerSide(t *testing.T) {
	records := []model.AttendanceRaw{
		rawPunch(t, 1, "9", "2025-03-10 06:00:00"),
		rawPunch(t, 2, "9", "2025-03-10 06:01:00"),
		rawPunch(t, 3, "9", "2025-03-10 07:00:00"),
		rawPunch(t, 4, "9", "2025-03-10 07:30:00"),
		rawPunch(t, 5, "9", "2025-03-10 08:00:00"),
	}

	days := NewPunchReconciler().Reconcile(records)
	if len(days) != 1 {
		t.Fatalf("muốn 1 dòng, có %d", len(days))
	}
	day := days[0]

	// Quẹt nhiễu 5 lần buổi sáng: chỉ giữ 3 lần CUỐI
	want := []TimePair{
		{In: "07:00"}, {In: "07:30"}, {In: "08:00"},
	}
	if !reflect.DeepEqual(day.Pairs, want) {
		t.Errorf("pairs = %+v, muốn %+v", day.Pairs, want)
	}
	// RecordIDs chỉ gồm các lần quẹt còn hiển thị trên dòng
	if !reflect.DeepEqual(day.RecordIDs, []uint{3, 4, 5}) {
		t.Errorf("record ids = %v, muốn [3 4 5]", day.RecordIDs)
	}
}

func TestReconcileGroupsByUserAndDay(t *testing.T) {
	records := []model.AttendanceRaw{
		rawPunch(t, 1, "1", "2025-03-10 08:00:00"),
		rawPunch(t, 2, "2", "2025-03-10 08:05:00"),
		rawPunch(t, 3, "1", "2025-03-11 08:00:00"),
	}

	days := NewPunchReconciler().Reconcile(records)
	if len(days) != 3 {
		t.Fatalf("muốn 3 dòng (2 người x ngày), có %d", len(days))
	}
	// Sắp theo mã rồi theo ngày
	if days[0].UserID != "00001" || days[0].Date != "10/03/2025" {
		t.Errorf("dòng đầu = %s %s", days[0].UserID, days[0].Date)
	}
	if days[1].UserID != "00001" || days[1].Date != "11/03/2025" {
		t.Errorf("dòng hai = %s %s", days[1].UserID, days[1].Date)
	}
	if days[2].UserID != "00002" {
		t.Errorf("dòng ba = %s", days[2].UserID)
	}
}

func TestReconcileSkipsZeroTimestamp(t *testing.T) {
	records := []model.AttendanceRaw{
		{Model: gorm.Model{ID: 1}, UserID: "1"}, // timestamp zero
		rawPunch(t, 2, "1", "2025-03-10 08:00:00"),
	}

	days := NewPunchReconciler().Reconcile(records)
	if len(days) != 1 {
		t.Fatalf("dòng hỏng phải bị bỏ qua, có %d dòng", len(days))
	}
	if len(days[0].RecordIDs) != 1 || days[0].RecordIDs[0] != 2 {
		t.Errorf("record ids = %v", days[0].RecordIDs)
	}
}

func TestReconcilePunchMethodFromLatest(t *testing.T) {
	first := rawPunch(t, 1, "1", "2025-03-10 08:00:00")
	first.Punch = 0 // vân tay
	last := rawPunch(t, 2, "1", "2025-03-10 17:00:00")
	last.Punch = 2 // thẻ
	last.UID = 42

	days := NewPunchReconciler().Reconcile([]model.AttendanceRaw{first, last})
	if len(days) != 1 {
		t.Fatalf("muốn 1 dòng, có %d", len(days))
	}
	if days[0].PunchMethod != "Thẻ" {
		t.Errorf("punch method = %q, muốn nhãn của lần quẹt mới nhất", days[0].PunchMethod)
	}
	if days[0].UID != "42" {
		t.Errorf("uid = %q, muốn 42", days[0].UID)
	}
}

func TestReconcileLongUserIDKept(t *testing.T) {
	records := []model.AttendanceRaw{rawPunch(t, 1, "1234567", "2025-03-10 08:00:00")}
	days := NewPunchReconciler().Reconcile(records)
	if days[0].UserID != "1234567" {
		t.Errorf("mã dài hơn 5 số phải giữ nguyên, có %q", days[0].UserID)
	}
}

func TestReconcileEmptyInput(t *testing.T) {
	if days := NewPunchReconciler().Reconcile(nil); len(days) != 0 {
		t.Errorf("input rỗng phải ra bảng rỗng, có %d dòng", len(days))
	}
}
