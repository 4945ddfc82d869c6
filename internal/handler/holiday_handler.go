package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HolidayHandler struct {
	repo repository.HolidayRepository
}

func NewHolidayHandler(repo repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{repo: repo}
}

func (h *HolidayHandler) GetAll(c *fiber.Ctx) error {
	holidays, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách ngày lễ"})
	}
	return c.JSON(holidays)
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	var holiday model.Holiday
	if err := c.BodyParser(&holiday); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if holiday.HolidayDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ngày lễ không được để trống"})
	}
	if err := h.repo.Create(&holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi thêm ngày lễ"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thêm ngày lễ thành công", "holiday": holiday})
}

func (h *HolidayHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	existing, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Ngày lễ không tồn tại"})
	}

	var holiday model.Holiday
	if err := c.BodyParser(&holiday); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	holiday.ID = existing.ID
	holiday.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi cập nhật ngày lễ"})
	}
	return c.JSON(fiber.Map{"message": "Cập nhật ngày lễ thành công", "holiday": holiday})
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa ngày lễ"})
	}
	return c.JSON(fiber.Map{"message": "Xóa ngày lễ thành công"})
}
