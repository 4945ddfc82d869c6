package device

import (
	"testing"
	"time"
)

func TestSimulatorSingleSession(t *testing.T) {
	sim := NewSimulator("SN-1")

	first, err := sim.Dial("10.0.0.1", 4370, "", time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	// Máy chấm công chỉ chịu một phiên kết nối
	if _, err := sim.Dial("10.0.0.1", 4370, "", time.Second); err == nil {
		t.Fatal("phiên thứ hai phải bị từ chối khi phiên đầu còn mở")
	}

	if err := first.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	second, err := sim.Dial("10.0.0.1", 4370, "", time.Second)
	if err != nil {
		t.Fatalf("ngắt xong phải kết nối lại được: %v", err)
	}
	second.Disconnect()
}

func TestSimulatorPassword(t *testing.T) {
	sim := NewSimulator("SN-1")
	sim.Passwd = "123456"

	if _, err := sim.Dial("10.0.0.1", 4370, "sai", time.Second); err == nil {
		t.Fatal("sai mật mã phải bị từ chối")
	}
	session, err := sim.Dial("10.0.0.1", 4370, "123456", time.Second)
	if err != nil {
		t.Fatalf("đúng mật mã: %v", err)
	}
	session.Disconnect()
}

func TestSessionClosedRejectsCalls(t *testing.T) {
	sim := NewSimulator("SN-1")
	session, err := sim.Dial("10.0.0.1", 4370, "", time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	session.Disconnect()

	if _, err := session.Users(); err == nil {
		t.Error("phiên đã ngắt mà Users vẫn chạy")
	}
	if err := session.SetUser(User{UserID: "1"}); err == nil {
		t.Error("phiên đã ngắt mà SetUser vẫn chạy")
	}
}

func TestFleetRoutesByAddress(t *testing.T) {
	fleet := NewSimFleet()
	fleet.Register("10.0.0.1", 4370, NewSimulator("SN-A"))
	fleet.Register("10.0.0.2", 4370, NewSimulator("SN-B"))

	session, err := fleet.Dial("10.0.0.2", 4370, "", time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer session.Disconnect()
	serial, err := session.SerialNumber()
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	if serial != "SN-B" {
		t.Errorf("định tuyến sai máy: %s", serial)
	}

	if _, err := fleet.Dial("10.0.0.9", 4370, "", time.Second); err == nil {
		t.Error("địa chỉ không đăng ký phải lỗi")
	}
}

func TestPunchMethodLabels(t *testing.T) {
	cases := map[int]string{
		0:  "Vân tay",
		1:  "Mật khẩu",
		2:  "Thẻ",
		3:  "Khuôn mặt",
		99: "Khác",
	}
	for punch, want := range cases {
		if got := PunchMethodLabel(punch); got != want {
			t.Errorf("PunchMethodLabel(%d) = %q, muốn %q", punch, got, want)
		}
	}
}
