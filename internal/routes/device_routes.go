package routes

import (
	"chamcong-backend/internal/device"
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/repository"
	"chamcong-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeviceRoutes(app *fiber.App, db *gorm.DB, dialer device.Dialer) {
	repo := repository.NewDeviceRepository(db)
	svc := service.NewDeviceService(repo, dialer)
	hdl := handler.NewDeviceHandler(svc)

	api := app.Group("/api/devices", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Post("/:id/test-connection", hdl.TestConnection)
}
