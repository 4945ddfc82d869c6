package service

// ProgressFunc nhận tiến trình 0..100 kèm thông điệp. Engine gọi từ
// goroutine nền; bên nhận (job manager, websocket) tự lo đồng bộ.
type ProgressFunc func(percent int, message string)

// Result là kết quả cuối của một thao tác đồng bộ với máy chấm công.
// Mọi entry point của engine đều trả Result, không để lỗi thoát ra ngoài.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func okResult(message string, count int) Result {
	return Result{OK: true, Message: message, Count: count}
}

func failResult(message string) Result {
	return Result{OK: false, Message: message}
}

// progressTracker ép tiến trình không giảm và luôn chốt 100 khi kết thúc,
// kể cả đường lỗi, để thanh tiến trình phía UI không bao giờ đứng lửng.
type progressTracker struct {
	fn   ProgressFunc
	last int
}

func newProgressTracker(fn ProgressFunc) *progressTracker {
	return &progressTracker{fn: fn}
}

func (p *progressTracker) Report(percent int, message string) {
	if percent < p.last {
		percent = p.last
	}
	if percent > 100 {
		percent = 100
	}
	p.last = percent
	if p.fn != nil {
		p.fn(percent, message)
	}
}

// Span báo tiến trình cho mục thứ idx trên tổng total trong đoạn [from,to)
func (p *progressTracker) Span(from, to, idx, total int, message string) {
	if total <= 0 {
		total = 1
	}
	p.Report(from+int(float64(idx)/float64(total)*float64(to-from)), message)
}

func (p *progressTracker) Finish(message string) {
	p.Report(100, message)
}
