package routes

import (
	"chamcong-backend/config"
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/repository"
	"chamcong-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo, config.GetEnv("JWT_SECRET", "chamcong-secret"))
	hdl := handler.NewUserHandler(uc)

	// Đăng nhập là route công khai duy nhất
	app.Post("/api/login", hdl.Login)

	// Tạo thêm tài khoản quản trị thì phải đăng nhập trước
	api := app.Group("/api/users", middleware.Auth)
	api.Post("/", hdl.Register)
}
