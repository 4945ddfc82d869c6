package routes

import (
	"chamcong-backend/internal/handler"
	"chamcong-backend/internal/middleware"
	"chamcong-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCalendarRoutes gom nhóm cấu hình lịch làm việc: ngày lễ, cuối tuần,
// bộ ký hiệu chấm công và ký hiệu vắng
func SetupCalendarRoutes(app *fiber.App, db *gorm.DB) {
	holidayHdl := handler.NewHolidayHandler(repository.NewHolidayRepository(db))
	weekendHdl := handler.NewWeekendHandler(repository.NewWeekendRepository(db))
	symbolHdl := handler.NewSymbolHandler(
		repository.NewAttendanceSymbolRepository(db),
		repository.NewAbsenceSymbolRepository(db),
	)

	holidays := app.Group("/api/holidays", middleware.Auth)
	holidays.Get("/", holidayHdl.GetAll)
	holidays.Post("/", holidayHdl.Create)
	holidays.Put("/:id", holidayHdl.Update)
	holidays.Delete("/:id", holidayHdl.Delete)

	weekend := app.Group("/api/weekend", middleware.Auth)
	weekend.Get("/", weekendHdl.Get)
	weekend.Put("/", weekendHdl.Update)

	symbols := app.Group("/api/symbols", middleware.Auth)
	symbols.Get("/attendance", symbolHdl.GetAttendanceSymbols)
	symbols.Put("/attendance", symbolHdl.UpdateAttendanceSymbols)
	symbols.Get("/absence", symbolHdl.GetAbsenceSymbols)
	symbols.Post("/absence", symbolHdl.CreateAbsenceSymbol)
	symbols.Put("/absence/:id", symbolHdl.UpdateAbsenceSymbol)
	symbols.Delete("/absence/:id", symbolHdl.DeleteAbsenceSymbol)
}
