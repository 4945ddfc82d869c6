package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// WeekendHandler quản lý cấu hình ngày nghỉ cuối tuần (1 bản ghi duy nhất)
type WeekendHandler struct {
	repo repository.WeekendRepository
}

func NewWeekendHandler(repo repository.WeekendRepository) *WeekendHandler {
	return &WeekendHandler{repo: repo}
}

func (h *WeekendHandler) Get(c *fiber.Ctx) error {
	weekend, err := h.repo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được cấu hình cuối tuần"})
	}
	return c.JSON(weekend)
}

func (h *WeekendHandler) Update(c *fiber.Ctx) error {
	var weekend model.Weekend
	if err := c.BodyParser(&weekend); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if err := h.repo.Update(&weekend); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi lưu cấu hình cuối tuần"})
	}
	return c.JSON(fiber.Map{"message": "Lưu cấu hình cuối tuần thành công", "weekend": weekend})
}
