package utils

import (
	"bytes"
	"fmt"
	"io"

	"chamcong-backend/config"

	"gopkg.in/gomail.v2"
)

// SendReportMail gửi file bảng công xuất ra cho địa chỉ nhận, cấu hình
// SMTP lấy từ biến môi trường
func SendReportMail(to, subject, body, attachName string, attachment []byte) error {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return fmt.Errorf("chưa cấu hình SMTP_HOST")
	}
	port := config.GetEnvAsInt("SMTP_PORT", 587)
	user := config.GetEnv("SMTP_USER", "")
	pass := config.GetEnv("SMTP_PASS", "")

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetEnv("SMTP_FROM", user))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if len(attachment) > 0 {
		m.Attach(attachName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(attachment))
			return err
		}))
	}

	d := gomail.NewDialer(host, port, user, pass)
	return d.DialAndSend(m)
}
