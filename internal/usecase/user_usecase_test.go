package usecase

import (
	"fmt"
	"strings"
	"testing"

	"chamcong-backend/config"
	"chamcong-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestUsecase(t *testing.T) *UserUsecase {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewUserUsecase(repository.NewUserRepository(db), "secret-test")
}

func TestRegisterThenLogin(t *testing.T) {
	uc := newTestUsecase(t)

	if err := uc.Register("Quản trị", "admin", "admin123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := uc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-test"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token không hợp lệ: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["username"] != "admin" {
		t.Errorf("claim username = %v", claims["username"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newTestUsecase(t)
	if err := uc.Register("Quản trị", "admin", "admin123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.Login("admin", "sai-mat-khau"); err == nil {
		t.Error("sai mật khẩu phải bị từ chối")
	}
	if _, err := uc.Login("khong-ton-tai", "admin123"); err == nil {
		t.Error("tài khoản không tồn tại phải bị từ chối")
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	uc := newTestUsecase(t)
	if err := uc.Register("A", "user1", "matkhau"); err != nil {
		t.Fatalf("register: %v", err)
	}
	user, err := uc.repo.GetByUsername("user1")
	if err != nil {
		t.Fatalf("đọc user: %v", err)
	}
	if user.Password == "matkhau" {
		t.Error("mật khẩu phải được băm trước khi lưu")
	}
}
