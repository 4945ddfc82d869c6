package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// SymbolHandler quản lý bộ ký hiệu chấm công (1 bản ghi) và danh mục
// ký hiệu vắng mặt
type SymbolHandler struct {
	attendanceRepo repository.AttendanceSymbolRepository
	absenceRepo    repository.AbsenceSymbolRepository
}

func NewSymbolHandler(
	attendanceRepo repository.AttendanceSymbolRepository,
	absenceRepo repository.AbsenceSymbolRepository,
) *SymbolHandler {
	return &SymbolHandler{attendanceRepo: attendanceRepo, absenceRepo: absenceRepo}
}

func (h *SymbolHandler) GetAttendanceSymbols(c *fiber.Ctx) error {
	symbol, err := h.attendanceRepo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được bộ ký hiệu"})
	}
	return c.JSON(symbol)
}

func (h *SymbolHandler) UpdateAttendanceSymbols(c *fiber.Ctx) error {
	var symbol model.AttendanceSymbol
	if err := c.BodyParser(&symbol); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if err := h.attendanceRepo.Update(&symbol); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi lưu bộ ký hiệu"})
	}
	return c.JSON(fiber.Map{"message": "Lưu bộ ký hiệu thành công", "symbol": symbol})
}

func (h *SymbolHandler) GetAbsenceSymbols(c *fiber.Ctx) error {
	symbols, err := h.absenceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách ký hiệu vắng"})
	}
	return c.JSON(symbols)
}

func (h *SymbolHandler) CreateAbsenceSymbol(c *fiber.Ctx) error {
	var symbol model.AbsenceSymbol
	if err := c.BodyParser(&symbol); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if symbol.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mã ký hiệu không được để trống"})
	}
	if err := h.absenceRepo.Create(&symbol); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Không tạo được ký hiệu (mã có thể đã tồn tại)"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thêm ký hiệu vắng thành công", "symbol": symbol})
}

func (h *SymbolHandler) UpdateAbsenceSymbol(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	var symbol model.AbsenceSymbol
	if err := c.BodyParser(&symbol); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	symbol.ID = id
	if err := h.absenceRepo.Update(&symbol); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi cập nhật ký hiệu"})
	}
	return c.JSON(fiber.Map{"message": "Cập nhật ký hiệu thành công", "symbol": symbol})
}

func (h *SymbolHandler) DeleteAbsenceSymbol(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.absenceRepo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa ký hiệu"})
	}
	return c.JSON(fiber.Map{"message": "Xóa ký hiệu thành công"})
}
