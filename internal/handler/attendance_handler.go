package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"chamcong-backend/internal/service"
	"chamcong-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler phục vụ màn hình "Tải dữ liệu chấm công": khởi chạy
// job tải về, xem dữ liệu thô, xem bảng công đã ghép cặp, xóa, xuất file.
type AttendanceHandler struct {
	svc        *service.AttendanceRawService
	reconciler service.PunchReconciler
	jobs       *service.JobManager
}

func NewAttendanceHandler(svc *service.AttendanceRawService, reconciler service.PunchReconciler, jobs *service.JobManager) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, reconciler: reconciler, jobs: jobs}
}

type downloadRequest struct {
	DeviceID uint   `json:"device_id"`
	FromDate string `json:"from_date"` // YYYY-MM-DD, trống là không chặn
	ToDate   string `json:"to_date"`
}

// StartDownload tạo job tải dữ liệu chấm công chạy nền, trả về id job
// để client theo dõi tiến trình
func (h *AttendanceHandler) StartDownload(c *fiber.Ctx) error {
	var req downloadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}

	fromDate, err := parseDateQuery(req.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from_date không hợp lệ (YYYY-MM-DD)"})
	}
	toDate, err := parseDateQuery(req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to_date không hợp lệ (YYYY-MM-DD)"})
	}

	job, err := h.jobs.Start("download", req.DeviceID, func(ctx context.Context, onProgress service.ProgressFunc) service.Result {
		return h.svc.DownloadFromDevice(ctx, req.DeviceID, fromDate, toDate, onProgress)
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(job)
}

// GetRaw trả dữ liệu thô, lọc tùy chọn theo ?from=&to=&device_id=
func (h *AttendanceHandler) GetRaw(c *fiber.Ctx) error {
	fromDate, toDate, deviceID, err := parseRawFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := h.svc.GetAllRecords(fromDate, toDate, deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được dữ liệu chấm công"})
	}
	return c.JSON(records)
}

// GetReconciled trả bảng công: mỗi nhân viên mỗi ngày tối đa 3 cặp vào/ra
func (h *AttendanceHandler) GetReconciled(c *fiber.Ctx) error {
	fromDate, toDate, deviceID, err := parseRawFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := h.svc.GetAllRecords(fromDate, toDate, deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được dữ liệu chấm công"})
	}
	return c.JSON(h.reconciler.Reconcile(records))
}

func (h *AttendanceHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.svc.DeleteRecordByID(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa bản ghi"})
	}
	return c.JSON(fiber.Map{"message": "Đã xóa bản ghi"})
}

// DeleteRecords xóa nhiều bản ghi một lần — dùng cho thao tác "xóa dòng"
// trên bảng công (client gửi record_ids của dòng đó)
func (h *AttendanceHandler) DeleteRecords(c *fiber.Ctx) error {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Chưa chọn bản ghi nào"})
	}
	if err := h.svc.DeleteRecordsByIDs(req.IDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa bản ghi"})
	}
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Đã xóa %d bản ghi", len(req.IDs))})
}

func (h *AttendanceHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.svc.DeleteAllRecords(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa dữ liệu"})
	}
	return c.JSON(fiber.Map{"message": "Đã xóa toàn bộ dữ liệu chấm công"})
}

func (h *AttendanceHandler) Count(c *fiber.Ctx) error {
	count, err := h.svc.RecordCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đếm được bản ghi"})
	}
	return c.JSON(fiber.Map{"count": count})
}

// ExportReconciled xuất bảng công ra file .xlsx
func (h *AttendanceHandler) ExportReconciled(c *fiber.Ctx) error {
	fromDate, toDate, deviceID, err := parseRawFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	records, err := h.svc.GetAllRecords(fromDate, toDate, deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được dữ liệu chấm công"})
	}

	data, err := buildReconciledWorkbook(h.reconciler.Reconcile(records))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi tạo file Excel"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bang-cong.xlsx"`)
	return c.Send(data)
}

// EmailReconciled xuất bảng công rồi gửi qua email
func (h *AttendanceHandler) EmailReconciled(c *fiber.Ctx) error {
	var req struct {
		To       string `json:"to"`
		FromDate string `json:"from_date"`
		ToDate   string `json:"to_date"`
	}
	if err := c.BodyParser(&req); err != nil || req.To == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Thiếu địa chỉ nhận"})
	}
	fromDate, err := parseDateQuery(req.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from_date không hợp lệ (YYYY-MM-DD)"})
	}
	toDate, err := parseDateQuery(req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to_date không hợp lệ (YYYY-MM-DD)"})
	}

	records, err := h.svc.GetAllRecords(fromDate, toDate, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được dữ liệu chấm công"})
	}
	data, err := buildReconciledWorkbook(h.reconciler.Reconcile(records))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi tạo file Excel"})
	}

	if err := utils.SendReportMail(req.To, "Bảng công", "Bảng công đính kèm.", "bang-cong.xlsx", data); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": fmt.Sprintf("Gửi mail lỗi: %v", err)})
	}
	return c.JSON(fiber.Map{"message": "Đã gửi bảng công tới " + req.To})
}

// parseDateQuery đọc YYYY-MM-DD, chuỗi trống trả về nil (không chặn)
func parseDateQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseRawFilter(c *fiber.Ctx) (fromDate, toDate *time.Time, deviceID *uint, err error) {
	fromDate, err = parseDateQuery(c.Query("from"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("from không hợp lệ (YYYY-MM-DD)")
	}
	toDate, err = parseDateQuery(c.Query("to"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("to không hợp lệ (YYYY-MM-DD)")
	}
	if raw := c.Query("device_id"); raw != "" {
		id, perr := strconv.ParseUint(raw, 10, 32)
		if perr != nil {
			return nil, nil, nil, fmt.Errorf("device_id không hợp lệ")
		}
		v := uint(id)
		deviceID = &v
	}
	return fromDate, toDate, deviceID, nil
}
