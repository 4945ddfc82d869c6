package device

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Simulator là một máy chấm công giả trong bộ nhớ, dùng khi dev và test
// (DEVICE_DRIVER=sim). Một Simulator đóng vai một máy: giữ bảng user,
// danh sách lần quẹt, và cho phép tiêm lỗi theo từng thao tác để kiểm tra
// đường xử lý lỗi của engine.
type Simulator struct {
	mu sync.Mutex

	Serial   string
	Name     string
	Firmware string
	Passwd   string // Mật mã admin; Dial sai mật mã sẽ bị từ chối

	users   map[string]User // theo UserID
	punches []Punch

	// Tiêm lỗi
	DialErr       error
	SetUserErr    map[string]error // lỗi riêng cho từng UserID khi SetUser
	DeleteUserErr map[string]error

	connected bool
}

func NewSimulator(serial string) *Simulator {
	return &Simulator{
		Serial:   serial,
		Name:     "SIM-K14",
		Firmware: "Ver 6.60",
		users:    make(map[string]User),
	}
}

// AddPunch nạp sẵn một lần quẹt vào máy giả
func (s *Simulator) AddPunch(p Punch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.punches = append(s.punches, p)
}

// AddUser nạp sẵn một user vào máy giả
func (s *Simulator) AddUser(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
}

// UserCount trả về số user đang có trên máy giả
func (s *Simulator) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// HasUser kiểm tra một mã đã có trên máy giả chưa
func (s *Simulator) HasUser(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[userID]
	return ok
}

// Dial thỏa interface Dialer: mỗi Simulator chính là "địa chỉ IP" của nó
func (s *Simulator) Dial(ip string, port int, password string, timeout time.Duration) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.DialErr != nil {
		return nil, s.DialErr
	}
	if s.Passwd != "" && password != s.Passwd {
		return nil, errors.New("unauthorized: sai mật mã thiết bị")
	}
	if s.connected {
		return nil, errors.New("máy đang có phiên kết nối khác")
	}
	s.connected = true
	return &simSession{sim: s}, nil
}

type simSession struct {
	sim    *Simulator
	closed bool
}

func (ss *simSession) check() error {
	if ss.closed {
		return errors.New("phiên đã ngắt kết nối")
	}
	return nil
}

func (ss *simSession) SerialNumber() (string, error) {
	if err := ss.check(); err != nil {
		return "", err
	}
	return ss.sim.Serial, nil
}

func (ss *simSession) DeviceName() (string, error) {
	if err := ss.check(); err != nil {
		return "", err
	}
	return ss.sim.Name, nil
}

func (ss *simSession) FirmwareVersion() (string, error) {
	if err := ss.check(); err != nil {
		return "", err
	}
	return ss.sim.Firmware, nil
}

func (ss *simSession) Users() ([]User, error) {
	if err := ss.check(); err != nil {
		return nil, err
	}
	ss.sim.mu.Lock()
	defer ss.sim.mu.Unlock()
	out := make([]User, 0, len(ss.sim.users))
	for _, u := range ss.sim.users {
		out = append(out, u)
	}
	return out, nil
}

func (ss *simSession) Attendances() ([]Punch, error) {
	if err := ss.check(); err != nil {
		return nil, err
	}
	ss.sim.mu.Lock()
	defer ss.sim.mu.Unlock()
	out := make([]Punch, len(ss.sim.punches))
	copy(out, ss.sim.punches)
	return out, nil
}

// SetUser ghi đè theo UserID, giống hành vi set_user của máy thật
func (ss *simSession) SetUser(u User) error {
	if err := ss.check(); err != nil {
		return err
	}
	ss.sim.mu.Lock()
	defer ss.sim.mu.Unlock()
	if err, ok := ss.sim.SetUserErr[u.UserID]; ok && err != nil {
		return fmt.Errorf("set user %s: %w", u.UserID, err)
	}
	ss.sim.users[u.UserID] = u
	return nil
}

func (ss *simSession) DeleteUser(userID string) error {
	if err := ss.check(); err != nil {
		return err
	}
	ss.sim.mu.Lock()
	defer ss.sim.mu.Unlock()
	if err, ok := ss.sim.DeleteUserErr[userID]; ok && err != nil {
		return fmt.Errorf("delete user %s: %w", userID, err)
	}
	if _, ok := ss.sim.users[userID]; !ok {
		return fmt.Errorf("user %s không tồn tại trên máy", userID)
	}
	delete(ss.sim.users, userID)
	return nil
}

func (ss *simSession) Disconnect() error {
	if ss.closed {
		return nil
	}
	ss.closed = true
	ss.sim.mu.Lock()
	ss.sim.connected = false
	ss.sim.mu.Unlock()
	return nil
}
