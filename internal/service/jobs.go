package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job là một thao tác đồng bộ đang chạy nền. Handler trả về id ngay,
// client theo dõi tiến trình qua polling hoặc websocket.
type Job struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	DeviceID   uint       `json:"device_id"`
	Status     JobStatus  `json:"status"`
	Percent    int        `json:"percent"`
	Message    string     `json:"message"`
	Result     *Result    `json:"result,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// JobManager giữ các job trong bộ nhớ. Mỗi máy chấm công chỉ chạy một
// job tại một thời điểm — máy thật chỉ chịu một phiên kết nối.
type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	cancels map[string]context.CancelFunc
	running map[uint]string // deviceID -> job id đang chạy
}

func NewJobManager() *JobManager {
	return &JobManager{
		jobs:    make(map[string]*Job),
		cancels: make(map[string]context.CancelFunc),
		running: make(map[uint]string),
	}
}

// Start chạy run trên goroutine riêng và trả về job để client theo dõi.
// run phải là hàm kiểu engine: tự nuốt lỗi, trả Result.
func (m *JobManager) Start(jobType string, deviceID uint, run func(ctx context.Context, onProgress ProgressFunc) Result) (*Job, error) {
	m.mu.Lock()
	if jobID, busy := m.running[deviceID]; busy {
		m.mu.Unlock()
		return nil, fmt.Errorf("thiết bị đang bận với thao tác khác (job %s)", jobID)
	}

	job := &Job{
		ID:        uuid.NewString(),
		Type:      jobType,
		DeviceID:  deviceID,
		Status:    JobRunning,
		StartedAt: time.Now(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.jobs[job.ID] = job
	m.cancels[job.ID] = cancel
	m.running[deviceID] = job.ID
	m.mu.Unlock()

	go func() {
		defer cancel()
		res := run(ctx, func(percent int, message string) {
			m.mu.Lock()
			job.Percent = percent
			job.Message = message
			m.mu.Unlock()
		})

		m.mu.Lock()
		now := time.Now()
		job.Percent = 100
		job.Message = res.Message
		job.Result = &res
		job.FinishedAt = &now
		if res.OK {
			job.Status = JobDone
		} else {
			job.Status = JobFailed
		}
		delete(m.running, deviceID)
		delete(m.cancels, job.ID)
		m.mu.Unlock()
	}()

	return m.snapshotLocked(job.ID), nil
}

// Get trả về bản chụp của job (tránh đua dữ liệu với goroutine đang chạy)
func (m *JobManager) Get(id string) (*Job, bool) {
	snap := m.snapshotLocked(id)
	return snap, snap != nil
}

// Cancel yêu cầu hủy job; engine kiểm tra ctx giữa các bước và tự dọn
// phiên kết nối trước khi dừng
func (m *JobManager) Cancel(id string) bool {
	m.mu.Lock()
	cancel, ok := m.cancels[id]
	m.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

func (m *JobManager) snapshotLocked(id string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil
	}
	snap := *job
	if job.Result != nil {
		res := *job.Result
		snap.Result = &res
	}
	return &snap
}
