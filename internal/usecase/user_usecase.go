package usecase

import (
	"time"

	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserUsecase xử lý đăng ký / đăng nhập tài khoản quản trị phần mềm.
// Secret JWT được tiêm từ config lúc khởi động, không hardcode.
type UserUsecase struct {
	repo      repository.UserRepository
	jwtSecret []byte
}

func NewUserUsecase(repo repository.UserRepository, jwtSecret string) *UserUsecase {
	return &UserUsecase{repo: repo, jwtSecret: []byte(jwtSecret)}
}

func (u *UserUsecase) Register(name, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := model.User{
		Name:     name,
		Username: username,
		Password: string(hashedPassword),
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(username, password string) (string, error) {
	user, err := u.repo.GetByUsername(username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}
