package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"
)

// ShiftUploadService là đường tải nhân viên lên / xóa khỏi máy chấm công.
// Cả ba thao tác cùng một khung: kết nối → duyệt từng mục → ngắt kết nối;
// lỗi từng mục chỉ ghi log và đi tiếp, không làm hỏng cả lô.
type ShiftUploadService struct {
	repo         repository.ShiftUploadRepository
	deviceRepo   repository.DeviceRepository
	employeeRepo repository.EmployeeRepository
	dialer       device.Dialer
	timeout      time.Duration
}

func NewShiftUploadService(
	repo repository.ShiftUploadRepository,
	deviceRepo repository.DeviceRepository,
	employeeRepo repository.EmployeeRepository,
	dialer device.Dialer,
) *ShiftUploadService {
	return &ShiftUploadService{
		repo:         repo,
		deviceRepo:   deviceRepo,
		employeeRepo: employeeRepo,
		dialer:       dialer,
		timeout:      10 * time.Second,
	}
}

func (s *ShiftUploadService) connect(deviceID uint, p *progressTracker) (*model.Device, device.Session, Result, bool) {
	dev, err := s.deviceRepo.GetByID(deviceID)
	if err != nil {
		log.Printf("[ShiftUploadService] device %d không tồn tại: %v", deviceID, err)
		p.Finish(Msg.DeviceNotFound)
		return nil, nil, failResult(Msg.DeviceNotFound), false
	}

	p.Report(1, msgf(Msg.Connecting, dev.IPAddress))
	session, err := s.dialer.Dial(dev.IPAddress, dev.Port, dev.Password, s.timeout)
	if err != nil {
		log.Printf("[ShiftUploadService] kết nối %s:%d lỗi: %v", dev.IPAddress, dev.Port, err)
		p.Finish(msgf(Msg.ConnectFailed, err))
		return nil, nil, failResult(msgf(Msg.ConnectFailed, err)), false
	}
	p.Report(10, msgf(Msg.Connecting, dev.IPAddress))
	return dev, session, Result{}, true
}

func cancelResult(session device.Session, p *progressTracker) Result {
	if session != nil {
		_ = session.Disconnect()
	}
	p.Finish(Msg.Cancelled)
	return failResult(Msg.Cancelled)
}

// UploadEmployees tải danh sách nhân viên lên máy. Mã dùng trên máy rơi
// theo chuỗi attendance_code → employee_code → id: nhờ vậy nhân viên chưa
// được cấp mã chấm công vẫn tải lên được.
//
// Bản ghi shift_upload được upsert cho MỌI nhân viên đã thử tải, kể cả
// mục lỗi trên máy — giữ nguyên hành vi gốc làm sổ theo dõi để tải lại;
// số đếm trả về thì chỉ tính mục thành công trên máy.
func (s *ShiftUploadService) UploadEmployees(
	ctx context.Context,
	deviceID uint,
	employeeIDs []uint,
	onProgress ProgressFunc,
) Result {
	p := newProgressTracker(onProgress)

	if len(employeeIDs) == 0 {
		p.Finish(Msg.NoSelection)
		return failResult(Msg.NoSelection)
	}

	dev, session, res, ok := s.connect(deviceID, p)
	if !ok {
		return res
	}

	// Serial chỉ để log; khóa của shift_upload là (employee_id, device_id)
	p.Report(11, Msg.FetchingInfo)
	deviceSN, err := session.SerialNumber()
	if err != nil {
		_ = session.Disconnect()
		p.Finish(msgf(Msg.ConnectFailed, err))
		return failResult(msgf(Msg.ConnectFailed, err))
	}
	p.Report(20, Msg.FetchingInfo)
	log.Printf("[ShiftUploadService] kết nối máy SN=%s (%s)", deviceSN, dev.IPAddress)

	// Danh sách user hiện có chỉ để log — set_user của máy tự ghi đè theo mã
	p.Report(21, Msg.FetchingUsers)
	existing, err := session.Users()
	if err != nil {
		_ = session.Disconnect()
		p.Finish(msgf(Msg.ConnectFailed, err))
		return failResult(msgf(Msg.ConnectFailed, err))
	}
	p.Report(30, Msg.FetchingUsers)
	log.Printf("[ShiftUploadService] máy đang có %d user", len(existing))

	if err := ctx.Err(); err != nil {
		return cancelResult(session, p)
	}

	// Chuẩn bị 31-40%: nhân viên không tìm thấy thì bỏ qua, không hỏng lô
	p.Report(31, Msg.Preparing)
	type uploadItem struct {
		user   device.User
		record model.ShiftUpload
	}
	items := make([]uploadItem, 0, len(employeeIDs))
	for _, empID := range employeeIDs {
		emp, err := s.employeeRepo.GetByID(empID)
		if err != nil {
			log.Printf("[ShiftUploadService] nhân viên %d không tồn tại, bỏ qua", empID)
			continue
		}

		userID := emp.AttendanceCode
		if userID == "" {
			userID = emp.EmployeeCode
		}
		if userID == "" {
			userID = strconv.FormatUint(uint64(emp.ID), 10)
		}
		name := emp.AttendanceName
		if name == "" {
			name = emp.Name
		}
		uid := 0
		if n, err := strconv.Atoi(userID); err == nil {
			uid = n
		}

		items = append(items, uploadItem{
			user: device.User{
				UID:       uid,
				UserID:    userID,
				Name:      name,
				Privilege: device.PrivilegeUser,
			},
			record: model.ShiftUpload{
				EmployeeID:     emp.ID,
				DeviceID:       deviceID,
				UserID:         userID,
				AttendanceCode: emp.AttendanceCode,
				AttendanceName: name,
				Privilege:      device.PrivilegeUser,
				Enabled:        true,
				UploadedAt:     time.Now(),
			},
		})
	}
	p.Report(40, Msg.Preparing)

	// Tải từng nhân viên 41-90%
	uploaded := 0
	for idx, item := range items {
		if err := ctx.Err(); err != nil {
			return cancelResult(session, p)
		}
		p.Span(41, 90, idx, len(items), msgf(Msg.UploadingItem, idx+1, len(items)))
		if err := session.SetUser(item.user); err != nil {
			log.Printf("[ShiftUploadService] tải user %s lỗi: %v", item.user.UserID, err)
			continue
		}
		uploaded++
	}
	p.Report(90, Msg.Saving)

	// Lưu sổ theo dõi 91-95%
	records := make([]model.ShiftUpload, len(items))
	for i, item := range items {
		records[i] = item.record
	}
	saved := len(records)
	if err := s.repo.BulkUpsert(records); err != nil {
		log.Printf("[ShiftUploadService] lưu shift_upload lỗi: %v", err)
		saved = 0
	}
	p.Report(95, Msg.Saving)

	// Ngắt kết nối 96-100%
	p.Report(96, Msg.Disconnecting)
	if err := session.Disconnect(); err != nil {
		log.Printf("[ShiftUploadService] disconnect lỗi (bỏ qua): %v", err)
	}

	done := msgf(Msg.UploadDone, uploaded, saved)
	p.Finish(done)
	return okResult(done, uploaded)
}

// DeleteEmployees xóa các mã khỏi máy. Bản ghi shift_upload trong DB giữ
// nguyên làm dấu vết — gỡ khỏi danh sách là thao tác riêng của người dùng.
func (s *ShiftUploadService) DeleteEmployees(
	ctx context.Context,
	deviceID uint,
	userIDs []string,
	onProgress ProgressFunc,
) Result {
	p := newProgressTracker(onProgress)

	if len(userIDs) == 0 {
		p.Finish(Msg.NoSelection)
		return failResult(Msg.NoSelection)
	}

	_, session, res, ok := s.connect(deviceID, p)
	if !ok {
		return res
	}
	p.Report(20, Msg.FetchingInfo)

	deleted := 0
	for idx, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return cancelResult(session, p)
		}
		p.Span(21, 80, idx, len(userIDs), msgf(Msg.DeletingItem, idx+1, len(userIDs)))
		if err := session.DeleteUser(userID); err != nil {
			log.Printf("[ShiftUploadService] xóa user %s lỗi: %v", userID, err)
			continue
		}
		deleted++
	}
	p.Report(95, Msg.Disconnecting)

	if err := session.Disconnect(); err != nil {
		log.Printf("[ShiftUploadService] disconnect lỗi (bỏ qua): %v", err)
	}

	done := msgf(Msg.DeleteDone, deleted)
	p.Finish(done)
	return okResult(done, deleted)
}

// DeleteFingerprints xóa vân tay nhưng giữ user trên máy. Giao thức không
// có lệnh xóa riêng template nên phải đi vòng: đọc thuộc tính user hiện
// tại, xóa user, tạo lại user với đúng thuộc tính nhưng không kèm vân tay.
func (s *ShiftUploadService) DeleteFingerprints(
	ctx context.Context,
	deviceID uint,
	userIDs []string,
	onProgress ProgressFunc,
) Result {
	p := newProgressTracker(onProgress)

	if len(userIDs) == 0 {
		p.Finish(Msg.NoSelection)
		return failResult(Msg.NoSelection)
	}

	_, session, res, ok := s.connect(deviceID, p)
	if !ok {
		return res
	}

	p.Report(15, Msg.FetchingUsers)
	users, err := session.Users()
	if err != nil {
		_ = session.Disconnect()
		p.Finish(msgf(Msg.ConnectFailed, err))
		return failResult(msgf(Msg.ConnectFailed, err))
	}
	byID := make(map[string]device.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}
	p.Report(20, Msg.FetchingUsers)

	cleared := 0
	for idx, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return cancelResult(session, p)
		}
		p.Span(21, 95, idx, len(userIDs), msgf(Msg.DeletingFinger, idx+1, len(userIDs)))

		target, ok := byID[userID]
		if !ok {
			log.Printf("[ShiftUploadService] user %s không có trên máy, bỏ qua", userID)
			continue
		}
		if err := session.DeleteUser(userID); err != nil {
			log.Printf("[ShiftUploadService] xóa vân tay user %s lỗi: %v", userID, err)
			continue
		}
		if err := session.SetUser(target); err != nil {
			// User đã bị xóa mà tạo lại thất bại: ghi log rõ để xử lý tay
			log.Printf("[ShiftUploadService] tạo lại user %s sau khi xóa lỗi: %v", userID, err)
			continue
		}
		cleared++
	}
	p.Report(96, Msg.Disconnecting)

	if err := session.Disconnect(); err != nil {
		log.Printf("[ShiftUploadService] disconnect lỗi (bỏ qua): %v", err)
	}

	done := msgf(Msg.DeleteFingerDone, cleared)
	p.Finish(done)
	return okResult(done, cleared)
}

// GetUploadedEmployees trả danh sách đã tải lên một máy (kèm nhân viên)
func (s *ShiftUploadService) GetUploadedEmployees(deviceID uint) ([]model.ShiftUpload, error) {
	return s.repo.GetByDevice(deviceID)
}

// RemoveUploadRecord gỡ một bản ghi theo dõi, chỉ trong DB
func (s *ShiftUploadService) RemoveUploadRecord(id uint) error {
	return s.repo.DeleteByID(id)
}
