package main

import (
	"fmt"
	"log"

	"chamcong-backend/config"
	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
	"chamcong-backend/internal/routes"
	"chamcong-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("1. Khởi động ứng dụng... Đang load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: Không tìm thấy file .env, dùng biến môi trường hệ thống.")
	}

	fmt.Println("2. Đang kết nối database...")
	config.ConnectDB()
	fmt.Println("3. Database đã sẵn sàng! Chuẩn bị routes...")

	dialer := buildDialer(config.DB)
	jobs := service.NewJobManager()

	app := fiber.New()

	// Middleware chung
	app.Use(cors.New())   // Cho client desktop/web gọi từ origin khác
	app.Use(logger.New()) // Log request ra terminal để debug

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDeviceRoutes(app, config.DB, dialer)
	routes.SetupAttendanceRoutes(app, config.DB, dialer, jobs)
	routes.SetupShiftUploadRoutes(app, config.DB, dialer, jobs)
	routes.SetupJobRoutes(app, jobs)
	routes.SetupEmployeeRoutes(app, config.DB)
	routes.SetupOrganizationRoutes(app, config.DB)
	routes.SetupCalendarRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server sẵn sàng! Đang chờ request ở port :" + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server dừng: %v", err)
	}
}

// buildDialer chọn driver máy chấm công theo DEVICE_DRIVER. Hiện chỉ có
// driver mô phỏng: mỗi thiết bị trong DB được gắn một máy mô phỏng tại
// đúng địa chỉ ip:port của nó. Driver giao thức thật cắm vào đây khi có.
func buildDialer(db *gorm.DB) device.Dialer {
	driver := config.GetEnv("DEVICE_DRIVER", "sim")
	if driver != "sim" {
		log.Fatalf("DEVICE_DRIVER %q chưa được hỗ trợ (hiện chỉ có: sim)", driver)
	}

	fleet := device.NewSimFleet()
	var devices []model.Device
	if err := db.Find(&devices).Error; err != nil {
		log.Printf("Không đọc được danh sách thiết bị để dựng máy mô phỏng: %v", err)
		return fleet
	}
	for _, d := range devices {
		sim := device.NewSimulator("SN-" + d.DeviceNumber)
		sim.Passwd = d.Password
		fleet.Register(d.IPAddress, d.Port, sim)
	}
	log.Printf("Đã dựng %d máy chấm công mô phỏng", len(devices))
	return fleet
}
