package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	repo repository.DepartmentRepository
}

func NewDepartmentHandler(repo repository.DepartmentRepository) *DepartmentHandler {
	return &DepartmentHandler{repo: repo}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	departments, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách phòng ban"})
	}
	return c.JSON(departments)
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var department model.Department
	if err := c.BodyParser(&department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if department.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tên phòng ban không được để trống"})
	}
	if err := h.repo.Create(&department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Không tạo được phòng ban (tên có thể đã tồn tại)"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thêm phòng ban thành công", "department": department})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	existing, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Phòng ban không tồn tại"})
	}

	var department model.Department
	if err := c.BodyParser(&department); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	department.ID = existing.ID
	department.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&department); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi cập nhật phòng ban"})
	}
	return c.JSON(fiber.Map{"message": "Cập nhật phòng ban thành công", "department": department})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa phòng ban"})
	}
	return c.JSON(fiber.Map{"message": "Xóa phòng ban thành công"})
}
