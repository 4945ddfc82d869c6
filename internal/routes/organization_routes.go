package routes

import (
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupOrganizationRoutes gom nhóm danh mục tổ chức: phòng ban, chức vụ,
// thông tin đơn vị
func SetupOrganizationRoutes(app *fiber.App, db *gorm.DB) {
	departmentHdl := handler.NewDepartmentHandler(repository.NewDepartmentRepository(db))
	jobTitleHdl := handler.NewJobTitleHandler(repository.NewJobTitleRepository(db))
	companyHdl := handler.NewCompanyHandler(repository.NewCompanyRepository(db))

	departments := app.Group("/api/departments", middleware.Auth)
	departments.Get("/", departmentHdl.GetAll)
	departments.Post("/", departmentHdl.Create)
	departments.Put("/:id", departmentHdl.Update)
	departments.Delete("/:id", departmentHdl.Delete)

	jobTitles := app.Group("/api/job-titles", middleware.Auth)
	jobTitles.Get("/", jobTitleHdl.GetAll)
	jobTitles.Post("/", jobTitleHdl.Create)
	jobTitles.Put("/:id", jobTitleHdl.Update)
	jobTitles.Delete("/:id", jobTitleHdl.Delete)

	company := app.Group("/api/company", middleware.Auth)
	company.Get("/", companyHdl.Get)
	company.Put("/", companyHdl.Save)
}
