package main

import (
	"fmt"
	"log"

	"chamcong-backend/config"
	"chamcong-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Bắt đầu seed dữ liệu...")

	// Load .env thủ công vì đây là script chạy riêng
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Không tìm thấy file .env, dùng biến môi trường hệ thống.")
	}

	config.ConnectDB()

	fmt.Println("Đang chạy SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("Seed xong!")
}
