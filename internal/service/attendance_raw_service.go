package service

import (
	"context"
	"log"
	"time"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"
)

// AttendanceRawService là đường tải dữ liệu chấm công từ máy về DB.
// Toàn bộ thao tác chạy tuần tự trên một phiên kết nối (máy chấm công
// không chịu song song trên một session); caller tự đưa xuống goroutine nền.
type AttendanceRawService struct {
	repo       repository.AttendanceRawRepository
	deviceRepo repository.DeviceRepository
	dialer     device.Dialer
	timeout    time.Duration
}

func NewAttendanceRawService(
	repo repository.AttendanceRawRepository,
	deviceRepo repository.DeviceRepository,
	dialer device.Dialer,
) *AttendanceRawService {
	return &AttendanceRawService{
		repo:       repo,
		deviceRepo: deviceRepo,
		dialer:     dialer,
		timeout:    10 * time.Second,
	}
}

// DownloadFromDevice tải toàn bộ lần quẹt từ một máy, lọc theo khoảng ngày
// (đầu/cuối đều tính cả ngày đó, nil là không chặn phía đó) rồi ghi vào DB
// với khóa chống trùng (user_id, timestamp, device_sn) — tải lại cùng
// khoảng ngày bao nhiêu lần cũng không sinh dòng trùng.
//
// Không bao giờ trả lỗi ra ngoài: mọi sự cố gói trong Result. Tiến trình
// không giảm và luôn chạm 100 kể cả khi thất bại.
func (s *AttendanceRawService) DownloadFromDevice(
	ctx context.Context,
	deviceID uint,
	fromDate, toDate *time.Time,
	onProgress ProgressFunc,
) Result {
	p := newProgressTracker(onProgress)

	dev, err := s.deviceRepo.GetByID(deviceID)
	if err != nil {
		log.Printf("[AttendanceRawService] device %d không tồn tại: %v", deviceID, err)
		p.Finish(Msg.DeviceNotFound)
		return failResult(Msg.DeviceNotFound)
	}

	// Kết nối 1-10%
	p.Report(1, msgf(Msg.Connecting, dev.IPAddress))
	session, err := s.dialer.Dial(dev.IPAddress, dev.Port, dev.Password, s.timeout)
	if err != nil {
		log.Printf("[AttendanceRawService] kết nối %s:%d lỗi: %v", dev.IPAddress, dev.Port, err)
		p.Finish(msgf(Msg.ConnectFailed, err))
		return failResult(msgf(Msg.ConnectFailed, err))
	}
	p.Report(10, msgf(Msg.Connecting, dev.IPAddress))

	fail := func(format string, cause error) Result {
		_ = session.Disconnect()
		log.Printf("[AttendanceRawService] download device %d lỗi: %v", deviceID, cause)
		p.Finish(msgf(format, cause))
		return failResult(msgf(format, cause))
	}
	if err := ctx.Err(); err != nil {
		_ = session.Disconnect()
		p.Finish(Msg.Cancelled)
		return failResult(Msg.Cancelled)
	}

	// Thông tin thiết bị 11-20%. Serial là thành phần khóa chống trùng:
	// máy đổi IP vẫn giữ serial.
	p.Report(11, Msg.FetchingInfo)
	deviceSN, err := session.SerialNumber()
	if err != nil {
		return fail(Msg.ConnectFailed, err)
	}
	p.Report(20, Msg.FetchingInfo)
	log.Printf("[AttendanceRawService] kết nối máy SN=%s", deviceSN)

	// Dữ liệu chấm công 21-50%
	p.Report(21, Msg.FetchingPunches)
	punches, err := session.Attendances()
	if err != nil {
		return fail(Msg.ConnectFailed, err)
	}
	p.Report(50, Msg.FetchingPunches)
	log.Printf("[AttendanceRawService] tải được %d lần quẹt", len(punches))

	if err := ctx.Err(); err != nil {
		_ = session.Disconnect()
		p.Finish(Msg.Cancelled)
		return failResult(Msg.Cancelled)
	}

	// Danh sách user 51-60%: máy chỉ trả mã trên mỗi lần quẹt,
	// tên phải tra từ bảng user của chính máy đó
	p.Report(51, Msg.FetchingUsers)
	users, err := session.Users()
	if err != nil {
		return fail(Msg.ConnectFailed, err)
	}
	userNames := make(map[string]string, len(users))
	for _, u := range users {
		userNames[u.UserID] = u.Name
	}
	p.Report(60, Msg.FetchingUsers)

	// Ngắt kết nối 61-65%, phần còn lại làm offline
	p.Report(61, Msg.Disconnecting)
	if err := session.Disconnect(); err != nil {
		log.Printf("[AttendanceRawService] disconnect lỗi (bỏ qua): %v", err)
	}
	p.Report(65, Msg.Disconnecting)

	if err := ctx.Err(); err != nil {
		p.Finish(Msg.Cancelled)
		return failResult(Msg.Cancelled)
	}

	// Lọc theo khoảng ngày 66-75%, so theo phần ngày của lần quẹt
	p.Report(66, Msg.Filtering)
	filtered := punches[:0:0]
	for _, punch := range punches {
		if !inDateRange(punch.Timestamp, fromDate, toDate) {
			continue
		}
		filtered = append(filtered, punch)
	}
	p.Report(75, Msg.Filtering)
	log.Printf("[AttendanceRawService] còn %d/%d lần quẹt sau khi lọc", len(filtered), len(punches))

	// Chuẩn bị dòng 76-85%
	p.Report(76, Msg.Preparing)
	records := make([]model.AttendanceRaw, 0, len(filtered))
	for _, punch := range filtered {
		records = append(records, model.AttendanceRaw{
			UserID:    punch.UserID,
			UserName:  userNames[punch.UserID], // không có thì để trống
			Timestamp: punch.Timestamp,
			Status:    punch.Status,
			Punch:     punch.Punch,
			UID:       punch.UID,
			DeviceSN:  deviceSN,
			DeviceID:  deviceID,
		})
	}
	p.Report(85, Msg.Preparing)

	if len(records) == 0 {
		p.Finish(Msg.DownloadEmpty)
		return okResult(Msg.DownloadEmpty, 0)
	}

	// Ghi DB 86-100%
	p.Report(86, Msg.Saving)
	inserted, err := s.repo.BulkInsertIgnoreDuplicates(records)
	if err != nil {
		log.Printf("[AttendanceRawService] bulk insert lỗi: %v", err)
		p.Finish(msgf(Msg.SaveFailed, err))
		return failResult(msgf(Msg.SaveFailed, err))
	}
	log.Printf("[AttendanceRawService] ghi %d/%d bản ghi", inserted, len(records))

	done := msgf(Msg.DownloadDone, inserted, len(records))
	p.Finish(done)
	return okResult(done, int(inserted))
}

// GetAllRecords đọc dữ liệu thô đã tải về, lọc tùy chọn theo ngày/máy
func (s *AttendanceRawService) GetAllRecords(fromDate, toDate *time.Time, deviceID *uint) ([]model.AttendanceRaw, error) {
	return s.repo.GetAll(fromDate, toDate, deviceID)
}

func (s *AttendanceRawService) DeleteRecordByID(id uint) error {
	return s.repo.DeleteByID(id)
}

func (s *AttendanceRawService) DeleteRecordsByIDs(ids []uint) error {
	return s.repo.DeleteByIDs(ids)
}

func (s *AttendanceRawService) DeleteAllRecords() error {
	return s.repo.DeleteAll()
}

func (s *AttendanceRawService) RecordCount() (int64, error) {
	return s.repo.Count()
}

// inDateRange so phần ngày của t với hai mốc (nil là mở phía đó).
// Quẹt đúng 00:00:00 ngày đầu hay 23:59:59 ngày cuối đều được giữ.
func inDateRange(t time.Time, fromDate, toDate *time.Time) bool {
	day := dateOnly(t)
	if fromDate != nil && day.Before(dateOnly(*fromDate)) {
		return false
	}
	if toDate != nil && day.After(dateOnly(*toDate)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
