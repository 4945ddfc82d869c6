package handler

import (
	"chamcong-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(usecase *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: usecase}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Thiếu tài khoản hoặc mật khẩu"})
	}

	token, err := h.usecase.Login(req.Username, req.Password)
	if err != nil {
		// Không phân biệt sai tài khoản hay sai mật khẩu
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tài khoản hoặc mật khẩu không đúng"})
	}
	return c.JSON(fiber.Map{"message": "Đăng nhập thành công", "token": token})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Thiếu tài khoản hoặc mật khẩu"})
	}

	if err := h.usecase.Register(req.Name, req.Username, req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Không tạo được tài khoản (tài khoản có thể đã tồn tại)"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Tạo tài khoản thành công"})
}
