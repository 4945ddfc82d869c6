package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"gorm.io/gorm"
)

// DeviceService quản lý danh mục máy chấm công và thao tác kiểm tra kết nối.
// Đây là chỗ DUY NHẤT cập nhật cột status của máy; các luồng tải lên /
// tải về không đụng tới status.
type DeviceService struct {
	repo    repository.DeviceRepository
	dialer  device.Dialer
	timeout time.Duration
}

func NewDeviceService(repo repository.DeviceRepository, dialer device.Dialer) *DeviceService {
	return &DeviceService{repo: repo, dialer: dialer, timeout: 5 * time.Second}
}

func (s *DeviceService) GetAll() ([]model.Device, error) {
	return s.repo.GetAll()
}

func (s *DeviceService) GetByID(id uint) (*model.Device, error) {
	return s.repo.GetByID(id)
}

func (s *DeviceService) Add(dev *model.Device) error {
	if err := validateDevice(dev); err != nil {
		return err
	}
	existing, err := s.repo.GetByDeviceNumber(dev.DeviceNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("số máy '%s' đã tồn tại", dev.DeviceNumber)
	}
	if dev.Port == 0 {
		dev.Port = 4370
	}
	if dev.Status == "" {
		dev.Status = "Chưa kết nối"
	}
	return s.repo.Create(dev)
}

func (s *DeviceService) Update(dev *model.Device) error {
	if err := validateDevice(dev); err != nil {
		return err
	}
	existing, err := s.repo.GetByDeviceNumber(dev.DeviceNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.ID != dev.ID {
		return fmt.Errorf("số máy '%s' đã được sử dụng bởi thiết bị khác", dev.DeviceNumber)
	}
	return s.repo.Update(dev)
}

func (s *DeviceService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return errors.New(Msg.DeviceNotFound)
	}
	return s.repo.Delete(id)
}

// TestConnection thử kết nối và đọc thông tin máy, rồi ghi kết quả vào
// cột status của thiết bị
func (s *DeviceService) TestConnection(id uint) Result {
	dev, err := s.repo.GetByID(id)
	if err != nil {
		return failResult(Msg.DeviceNotFound)
	}

	session, err := s.dialer.Dial(dev.IPAddress, dev.Port, dev.Password, s.timeout)
	if err != nil {
		log.Printf("[DeviceService] test %s:%d lỗi: %v", dev.IPAddress, dev.Port, err)
		if uerr := s.repo.UpdateStatus(id, "Kết nối thất bại"); uerr != nil {
			log.Printf("[DeviceService] cập nhật status lỗi: %v", uerr)
		}
		return failResult(msgf(Msg.TestConnectFailed, err))
	}
	defer session.Disconnect()

	name, err := session.DeviceName()
	if err != nil {
		name = "?"
	}
	serial, err := session.SerialNumber()
	if err != nil {
		serial = "?"
	}
	firmware, err := session.FirmwareVersion()
	if err != nil {
		firmware = "?"
	}
	userCount := 0
	if users, err := session.Users(); err == nil {
		userCount = len(users)
	}

	if err := s.repo.UpdateStatus(id, "Đã kết nối"); err != nil {
		log.Printf("[DeviceService] cập nhật status lỗi: %v", err)
	}
	return okResult(msgf(Msg.TestConnectOK, name, serial, firmware, userCount), userCount)
}

func validateDevice(dev *model.Device) error {
	if strings.TrimSpace(dev.DeviceNumber) == "" {
		return errors.New("số máy không được để trống")
	}
	if strings.TrimSpace(dev.DeviceName) == "" {
		return errors.New("tên máy không được để trống")
	}
	if strings.TrimSpace(dev.IPAddress) == "" {
		return errors.New("địa chỉ IP không được để trống")
	}
	if !validIPv4(dev.IPAddress) {
		return errors.New("địa chỉ IP không hợp lệ")
	}
	if dev.Port != 0 && (dev.Port < 1 || dev.Port > 65535) {
		return errors.New("cổng kết nối phải từ 1 đến 65535")
	}
	dev.DeviceNumber = strings.TrimSpace(dev.DeviceNumber)
	dev.DeviceName = strings.TrimSpace(dev.DeviceName)
	dev.IPAddress = strings.TrimSpace(dev.IPAddress)
	return nil
}

func validIPv4(ip string) bool {
	parts := strings.Split(strings.TrimSpace(ip), ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}
