package device

import (
	"fmt"
	"sync"
	"time"
)

// SimFleet gom nhiều Simulator sau một Dialer duy nhất, định tuyến theo
// ip:port. Đây là dialer mặc định khi chạy DEVICE_DRIVER=sim.
type SimFleet struct {
	mu   sync.Mutex
	sims map[string]*Simulator
}

func NewSimFleet() *SimFleet {
	return &SimFleet{sims: make(map[string]*Simulator)}
}

func (f *SimFleet) Register(ip string, port int, sim *Simulator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sims[fmt.Sprintf("%s:%d", ip, port)] = sim
}

func (f *SimFleet) Dial(ip string, port int, password string, timeout time.Duration) (Session, error) {
	f.mu.Lock()
	sim, ok := f.sims[fmt.Sprintf("%s:%d", ip, port)]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("không có máy chấm công tại %s:%d (connection timed out)", ip, port)
	}
	return sim.Dial(ip, port, password, timeout)
}
