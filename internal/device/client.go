// Package device định nghĩa khả năng nói chuyện với máy chấm công.
// Giao thức dây của hãng không nằm trong repo này: engine chỉ thấy
// Dialer/Session, bản cài đặt cụ thể (SDK hãng, thư viện reverse-engineer,
// hay Simulator khi dev/test) được tiêm vào lúc khởi động.
package device

import "time"

// Quyền user trên máy chấm công
const (
	PrivilegeUser     = 0
	PrivilegeEnroller = 1
	PrivilegeManager  = 2
	PrivilegeAdmin    = 6
)

// User là một user đã đăng ký trên máy
type User struct {
	UID       int
	UserID    string // Mã chấm công (chuỗi, máy tự quản)
	Name      string
	Privilege int
	Password  string
	GroupID   string
	Card      int
}

// Punch là một lần quẹt thô trên máy
type Punch struct {
	UID       int
	UserID    string
	Timestamp time.Time
	Status    int // Mã check-in/out của máy (không đáng tin, chỉ lưu tham khảo)
	Punch     int // Cách xác thực (vân tay/thẻ/...)
}

// Dialer mở phiên làm việc với một máy chấm công
type Dialer interface {
	Dial(ip string, port int, password string, timeout time.Duration) (Session, error)
}

// Session là một kết nối TCP đang mở với máy. Máy chỉ chịu một phiên
// tại một thời điểm nên mọi thao tác trên Session phải tuần tự.
type Session interface {
	SerialNumber() (string, error)
	DeviceName() (string, error)
	FirmwareVersion() (string, error)
	Users() ([]User, error)
	Attendances() ([]Punch, error)
	SetUser(u User) error
	DeleteUser(userID string) error
	Disconnect() error
}

// Nhãn tiếng Việt cho mã xác thực, hiển thị trên bảng công
func PunchMethodLabel(punch int) string {
	switch punch {
	case 0:
		return "Vân tay"
	case 1:
		return "Mật khẩu"
	case 2:
		return "Thẻ"
	case 3:
		return "Khuôn mặt"
	case 4:
		return "Iris"
	default:
		return "Khác"
	}
}
