package service

import (
	"strings"
	"testing"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"
)

func TestDeviceAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(repository.NewDeviceRepository(db), device.NewSimFleet())

	cases := []struct {
		name string
		dev  model.Device
	}{
		{"thiếu số máy", model.Device{DeviceName: "A", IPAddress: "192.168.1.1"}},
		{"thiếu tên", model.Device{DeviceNumber: "M1", IPAddress: "192.168.1.1"}},
		{"thiếu IP", model.Device{DeviceNumber: "M1", DeviceName: "A"}},
		{"IP sai", model.Device{DeviceNumber: "M1", DeviceName: "A", IPAddress: "999.1.1.1"}},
		{"IP thiếu octet", model.Device{DeviceNumber: "M1", DeviceName: "A", IPAddress: "192.168.1"}},
		{"cổng sai", model.Device{DeviceNumber: "M1", DeviceName: "A", IPAddress: "192.168.1.1", Port: 70000}},
	}
	for _, tc := range cases {
		if err := svc.Add(&tc.dev); err == nil {
			t.Errorf("%s: phải bị chặn", tc.name)
		}
	}
}

func TestDeviceAddDefaultsAndDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewDeviceService(repository.NewDeviceRepository(db), device.NewSimFleet())

	dev := model.Device{DeviceNumber: "M1", DeviceName: "Cổng chính", IPAddress: "192.168.1.201"}
	if err := svc.Add(&dev); err != nil {
		t.Fatalf("add: %v", err)
	}
	if dev.Port != 4370 {
		t.Errorf("port mặc định = %d, muốn 4370", dev.Port)
	}
	if dev.Status != "Chưa kết nối" {
		t.Errorf("status mặc định = %q", dev.Status)
	}

	dup := model.Device{DeviceNumber: "M1", DeviceName: "Khác", IPAddress: "192.168.1.202"}
	if err := svc.Add(&dup); err == nil {
		t.Error("trùng số máy phải bị chặn")
	}

	// Update chính nó thì không tính là trùng
	dev.DeviceName = "Cổng chính (sửa)"
	if err := svc.Update(&dev); err != nil {
		t.Errorf("update chính nó: %v", err)
	}
}

func TestTestConnectionUpdatesStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewDeviceRepository(db)
	dev, sim, fleet := newTestDevice(t, db, "SN-TC1")
	sim.AddUser(device.User{UserID: "1", Name: "An"})

	svc := NewDeviceService(repo, fleet)

	res := svc.TestConnection(dev.ID)
	if !res.OK {
		t.Fatalf("test connection lỗi: %s", res.Message)
	}
	if res.Count != 1 {
		t.Errorf("count = %d, muốn số user trên máy", res.Count)
	}
	if !strings.Contains(res.Message, "SN-TC1") {
		t.Errorf("message phải chứa serial: %q", res.Message)
	}
	updated, _ := repo.GetByID(dev.ID)
	if updated.Status != "Đã kết nối" {
		t.Errorf("status = %q", updated.Status)
	}

	// Máy không phản hồi: status chuyển thất bại
	sim.DialErr = errTimeout{}
	res = svc.TestConnection(dev.ID)
	if res.OK {
		t.Fatal("máy lỗi mà vẫn OK")
	}
	updated, _ = repo.GetByID(dev.ID)
	if updated.Status != "Kết nối thất bại" {
		t.Errorf("status = %q", updated.Status)
	}
}

type errTimeout struct{}

func (errTimeout) Error() string { return "connection timed out" }
