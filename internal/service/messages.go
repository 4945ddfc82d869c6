package service

import "fmt"

// Messages gom toàn bộ chữ hiển thị cho người dùng cuối (tiếng Việt).
// Service chỉ tham chiếu qua Msg để sau này thay bộ chữ khác nếu cần.
type Messages struct {
	DeviceNotFound    string
	NoSelection       string
	Cancelled         string
	ConnectFailed     string // fmt: lỗi gốc
	SaveFailed        string // fmt: lỗi gốc
	Connecting        string // fmt: ip
	FetchingInfo      string
	FetchingPunches   string
	FetchingUsers     string
	Disconnecting     string
	Filtering         string
	Preparing         string
	Saving            string
	DownloadDone      string // fmt: số dòng mới, tổng số dòng
	DownloadEmpty     string
	UploadingItem     string // fmt: thứ tự, tổng
	UploadDone        string // fmt: số tải lên máy, số lưu DB
	DeletingItem      string // fmt: thứ tự, tổng
	DeleteDone        string // fmt: số đã xóa
	DeletingFinger    string // fmt: thứ tự, tổng
	DeleteFingerDone  string // fmt: số đã xóa vân tay
	TestConnectOK     string // fmt: tên máy, serial, firmware, số user
	TestConnectFailed string // fmt: lỗi gốc
}

func DefaultMessages() Messages {
	return Messages{
		DeviceNotFound:    "Thiết bị không tồn tại",
		NoSelection:       "Chưa chọn nhân viên nào",
		Cancelled:         "Đã hủy thao tác",
		ConnectFailed:     "Lỗi kết nối máy chấm công: %v",
		SaveFailed:        "Lỗi khi lưu vào cơ sở dữ liệu: %v",
		Connecting:        "Đang kết nối với %s...",
		FetchingInfo:      "Đang lấy thông tin thiết bị...",
		FetchingPunches:   "Đang tải dữ liệu chấm công...",
		FetchingUsers:     "Đang tải danh sách nhân viên...",
		Disconnecting:     "Đang ngắt kết nối...",
		Filtering:         "Đang lọc dữ liệu...",
		Preparing:         "Đang chuẩn bị dữ liệu...",
		Saving:            "Đang lưu vào cơ sở dữ liệu...",
		DownloadDone:      "Tải thành công %d bản ghi mới (tổng %d bản ghi)",
		DownloadEmpty:     "Không có dữ liệu trong khoảng thời gian đã chọn",
		UploadingItem:     "Đang tải nhân viên %d/%d...",
		UploadDone:        "Đã tải %d nhân viên lên máy chấm công và lưu %d bản ghi vào DB",
		DeletingItem:      "Đang xóa nhân viên %d/%d...",
		DeleteDone:        "Đã xóa %d nhân viên khỏi máy chấm công",
		DeletingFinger:    "Đang xóa vân tay %d/%d...",
		DeleteFingerDone:  "Đã xóa vân tay của %d nhân viên",
		TestConnectOK:     "Kết nối thành công!\nTên thiết bị: %s\nSerial: %s\nFirmware: %s\nSố người dùng: %d",
		TestConnectFailed: "Không thể kết nối: %v",
	}
}

// Msg là bộ chữ đang dùng
var Msg = DefaultMessages()

func msgf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
