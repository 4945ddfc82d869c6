package handler

import (
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CompanyHandler quản lý thông tin đơn vị (1 bản ghi duy nhất)
type CompanyHandler struct {
	repo repository.CompanyRepository
}

func NewCompanyHandler(repo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.repo.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được thông tin đơn vị"})
	}
	if company == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(company)
}

func (h *CompanyHandler) Save(c *fiber.Ctx) error {
	var company model.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if company.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tên đơn vị không được để trống"})
	}
	if err := h.repo.Save(&company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi lưu thông tin đơn vị"})
	}
	return c.JSON(fiber.Map{"message": "Lưu thông tin đơn vị thành công", "company": company})
}
