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

func SetupShiftUploadRoutes(app *fiber.App, db *gorm.DB, dialer device.Dialer, jobs *service.JobManager) {
	repo := repository.NewShiftUploadRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	svc := service.NewShiftUploadService(repo, deviceRepo, employeeRepo, dialer)
	hdl := handler.NewShiftUploadHandler(svc, jobs)

	api := app.Group("/api/shift-uploads", middleware.Auth)
	api.Post("/upload", hdl.StartUpload)
	api.Post("/delete", hdl.StartDelete)
	api.Post("/delete-fingerprints", hdl.StartDeleteFingerprints)
	api.Get("/device/:id", hdl.ListByDevice)
	api.Delete("/:id", hdl.RemoveRecord)
}
