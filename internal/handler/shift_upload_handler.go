package handler

import (
	"context"

	"chamcong-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ShiftUploadHandler phục vụ màn hình "Tải nhân viên lên máy": tải lên,
// xóa khỏi máy, xóa vân tay và xem danh sách đã tải.
type ShiftUploadHandler struct {
	svc  *service.ShiftUploadService
	jobs *service.JobManager
}

func NewShiftUploadHandler(svc *service.ShiftUploadService, jobs *service.JobManager) *ShiftUploadHandler {
	return &ShiftUploadHandler{svc: svc, jobs: jobs}
}

type uploadRequest struct {
	DeviceID    uint   `json:"device_id"`
	EmployeeIDs []uint `json:"employee_ids"`
}

type deleteUsersRequest struct {
	DeviceID uint     `json:"device_id"`
	UserIDs  []string `json:"user_ids"`
}

// StartUpload tạo job tải nhân viên lên máy chạy nền
func (h *ShiftUploadHandler) StartUpload(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if len(req.EmployeeIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": service.Msg.NoSelection})
	}

	job, err := h.jobs.Start("upload", req.DeviceID, func(ctx context.Context, onProgress service.ProgressFunc) service.Result {
		return h.svc.UploadEmployees(ctx, req.DeviceID, req.EmployeeIDs, onProgress)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// StartDelete tạo job xóa nhân viên khỏi máy (bản ghi DB giữ nguyên)
func (h *ShiftUploadHandler) StartDelete(c *fiber.Ctx) error {
	var req deleteUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if len(req.UserIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": service.Msg.NoSelection})
	}

	job, err := h.jobs.Start("delete", req.DeviceID, func(ctx context.Context, onProgress service.ProgressFunc) service.Result {
		return h.svc.DeleteEmployees(ctx, req.DeviceID, req.UserIDs, onProgress)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// StartDeleteFingerprints tạo job xóa vân tay nhưng giữ user trên máy
func (h *ShiftUploadHandler) StartDeleteFingerprints(c *fiber.Ctx) error {
	var req deleteUsersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if len(req.UserIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": service.Msg.NoSelection})
	}

	job, err := h.jobs.Start("delete_fingerprint", req.DeviceID, func(ctx context.Context, onProgress service.ProgressFunc) service.Result {
		return h.svc.DeleteFingerprints(ctx, req.DeviceID, req.UserIDs, onProgress)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// ListByDevice trả danh sách nhân viên đã tải lên một máy
func (h *ShiftUploadHandler) ListByDevice(c *fiber.Ctx) error {
	deviceID, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	records, err := h.svc.GetUploadedEmployees(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách đã tải"})
	}
	return c.JSON(records)
}

// RemoveRecord gỡ một bản ghi theo dõi khỏi DB, không động tới máy
func (h *ShiftUploadHandler) RemoveRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.svc.RemoveUploadRecord(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi gỡ bản ghi"})
	}
	return c.JSON(fiber.Map{"message": "Đã gỡ bản ghi khỏi danh sách"})
}
