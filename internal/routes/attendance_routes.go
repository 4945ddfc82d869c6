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

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, dialer device.Dialer, jobs *service.JobManager) {
	repo := repository.NewAttendanceRawRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	svc := service.NewAttendanceRawService(repo, deviceRepo, dialer)
	hdl := handler.NewAttendanceHandler(svc, service.NewPunchReconciler(), jobs)

	api := app.Group("/api/attendance", middleware.Auth)
	api.Post("/download", hdl.StartDownload) // chạy nền, trả về job
	api.Get("/raw", hdl.GetRaw)
	api.Get("/reconciled", hdl.GetReconciled)
	api.Get("/count", hdl.Count)
	api.Get("/export", hdl.ExportReconciled)
	api.Post("/email", hdl.EmailReconciled)
	api.Delete("/raw/:id", hdl.DeleteRecord)
	api.Post("/raw/delete-batch", hdl.DeleteRecords) // xóa dòng bảng công
	api.Delete("/raw", hdl.DeleteAll)
}
