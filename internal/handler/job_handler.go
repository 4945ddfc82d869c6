package handler

import (
	"time"

	"chamcong-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// JobHandler cho client theo dõi job đồng bộ: xem trạng thái, hủy, hoặc
// mở websocket nhận tiến trình liên tục thay vì polling.
type JobHandler struct {
	jobs *service.JobManager
}

func NewJobHandler(jobs *service.JobManager) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, ok := h.jobs.Get(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job không tồn tại"})
	}
	return c.JSON(job)
}

func (h *JobHandler) Cancel(c *fiber.Ctx) error {
	if !h.jobs.Cancel(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job không tồn tại hoặc đã kết thúc"})
	}
	return c.JSON(fiber.Map{"message": "Đã gửi yêu cầu hủy"})
}

// UpgradeWS chặn các request không phải websocket trước khi nâng cấp
func (h *JobHandler) UpgradeWS(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// StreamProgress đẩy bản chụp job qua websocket cho tới khi job kết thúc.
// Tiến trình do engine báo là đơn điệu tăng nên client chỉ việc vẽ đè.
func (h *JobHandler) StreamProgress() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		defer conn.Close()

		jobID := conn.Params("id")
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()

		var lastPercent = -1
		var lastMessage string
		for range ticker.C {
			job, ok := h.jobs.Get(jobID)
			if !ok {
				_ = conn.WriteJSON(fiber.Map{"error": "Job không tồn tại"})
				return
			}
			if job.Percent != lastPercent || job.Message != lastMessage {
				lastPercent = job.Percent
				lastMessage = job.Message
				if err := conn.WriteJSON(job); err != nil {
					return
				}
			}
			if job.Status != service.JobRunning {
				return
			}
		}
	})
}
