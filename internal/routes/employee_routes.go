package routes

import (
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	jobTitleRepo := repository.NewJobTitleRepository(db)
	hdl := handler.NewEmployeeHandler(repo, departmentRepo, jobTitleRepo)

	api := app.Group("/api/employees", middleware.Auth)
	api.Get("/", hdl.GetAll)
	api.Get("/template", hdl.DownloadTemplate) // file mẫu import
	api.Post("/import", hdl.Import)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
