package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JobTitleHandler struct {
	repo repository.JobTitleRepository
}

func NewJobTitleHandler(repo repository.JobTitleRepository) *JobTitleHandler {
	return &JobTitleHandler{repo: repo}
}

func (h *JobTitleHandler) GetAll(c *fiber.Ctx) error {
	titles, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách chức vụ"})
	}
	return c.JSON(titles)
}

func (h *JobTitleHandler) Create(c *fiber.Ctx) error {
	var title model.JobTitle
	if err := c.BodyParser(&title); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if title.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tên chức vụ không được để trống"})
	}
	if err := h.repo.Create(&title); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Không tạo được chức vụ (tên có thể đã tồn tại)"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thêm chức vụ thành công", "job_title": title})
}

func (h *JobTitleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	existing, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chức vụ không tồn tại"})
	}

	var title model.JobTitle
	if err := c.BodyParser(&title); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	title.ID = existing.ID
	title.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&title); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi cập nhật chức vụ"})
	}
	return c.JSON(fiber.Map{"message": "Cập nhật chức vụ thành công", "job_title": title})
}

func (h *JobTitleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa chức vụ"})
	}
	return c.JSON(fiber.Map{"message": "Xóa chức vụ thành công"})
}
