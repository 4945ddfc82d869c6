package routes

import (
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App, jobs *service.JobManager) {
	hdl := handler.NewJobHandler(jobs)

	api := app.Group("/api/jobs", middleware.Auth)
	api.Get("/:id", hdl.Get)
	api.Post("/:id/cancel", hdl.Cancel)

	// Websocket không gửi được header Authorization từ trình duyệt nên
	// route theo dõi tiến trình để mở; id job là UUID ngẫu nhiên
	app.Use("/ws/jobs/:id", hdl.UpgradeWS)
	app.Get("/ws/jobs/:id", hdl.StreamProgress())
}
