package service

import (
	"fmt"
	"sort"

	"chamcong-backend/internal/device"
	"chamcong-backend/internal/model"
)

// TimePair là một cặp giờ vào / giờ ra (HH:MM, trống nếu thiếu một phía)
type TimePair struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

// ReconciledDay là một dòng bảng công: một nhân viên, một ngày, tối đa
// 3 cặp vào/ra. RecordIDs giữ id mọi lần quẹt góp vào dòng để thao tác
// "xóa dòng này" xóa đúng dữ liệu thô bên dưới.
type ReconciledDay struct {
	UserID      string     `json:"user_id"` // Đệm 0 đủ 5 số để hiển thị
	UserName    string     `json:"user_name"`
	Date        string     `json:"date"` // dd/mm/yyyy
	Pairs       []TimePair `json:"pairs"`
	PunchMethod string     `json:"punch_method"` // Nhãn cách xác thực của lần quẹt mới nhất
	UID         string     `json:"uid"`
	RecordIDs   []uint     `json:"record_ids"`
}

// PunchReconciler ghép dữ liệu thô thành bảng công. Đặt sau interface để
// sau này thay thuật toán ghép cặp khác mà không đụng tới engine.
type PunchReconciler interface {
	Reconcile(records []model.AttendanceRaw) []ReconciledDay
}

// hourSplitReconciler ghép theo giờ trong ngày: trước 12h là giờ vào, từ
// 12h là giờ ra, rồi ghép hai dãy theo vị trí. Cố tình KHÔNG dùng mã
// check-in/out của máy (máy không phân biệt đáng tin) và không ghép theo
// khoảng cách thời gian — đây là heuristic hiển thị, không phải thuật
// toán xếp ca.
type hourSplitReconciler struct{}

func NewPunchReconciler() PunchReconciler {
	return hourSplitReconciler{}
}

const maxPairsPerDay = 3

type timeEntry struct {
	timeStr  string
	recordID uint
}

func (hourSplitReconciler) Reconcile(records []model.AttendanceRaw) []ReconciledDay {
	type group struct {
		userID   string
		userName string
		date     string
		punch    int
		uid      int
		records  []model.AttendanceRaw
	}

	groups := make(map[string]*group)
	var keys []string
	for _, rec := range records {
		if rec.Timestamp.IsZero() {
			// Một dòng hỏng không được làm trắng cả bảng
			continue
		}
		dateStr := rec.Timestamp.Format("02/01/2006")
		key := fmt.Sprintf("%s_%s", rec.UserID, rec.Timestamp.Format("2006-01-02"))
		g, ok := groups[key]
		if !ok {
			g = &group{userID: rec.UserID, date: dateStr}
			groups[key] = g
			keys = append(keys, key)
		}
		if rec.UserName != "" {
			g.userName = rec.UserName
		}
		// Lần quẹt mới nhất quyết định nhãn xác thực và uid của dòng
		g.punch = rec.Punch
		g.uid = rec.UID
		g.records = append(g.records, rec)
	}
	sort.Strings(keys)

	days := make([]ReconciledDay, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		sort.Slice(g.records, func(i, j int) bool {
			return g.records[i].Timestamp.Before(g.records[j].Timestamp)
		})

		// Tách sáng/chiều theo giờ
		var inTimes, outTimes []timeEntry
		for _, rec := range g.records {
			entry := timeEntry{timeStr: rec.Timestamp.Format("15:04"), recordID: rec.ID}
			if rec.Timestamp.Hour() < 12 {
				inTimes = append(inTimes, entry)
			} else {
				outTimes = append(outTimes, entry)
			}
		}

		// Mỗi dãy giữ 3 mục MỚI NHẤT — máy quẹt nhiễu 5 lần buổi sáng thì
		// chỉ hiện 3 lần cuối, dữ liệu thô vẫn còn nguyên trong DB
		if len(inTimes) > maxPairsPerDay {
			inTimes = inTimes[len(inTimes)-maxPairsPerDay:]
		}
		if len(outTimes) > maxPairsPerDay {
			outTimes = outTimes[len(outTimes)-maxPairsPerDay:]
		}

		// Ghép theo vị trí, phía thiếu để trống
		maxLen := len(inTimes)
		if len(outTimes) > maxLen {
			maxLen = len(outTimes)
		}
		pairs := make([]TimePair, 0, maxLen)
		var recordIDs []uint
		for i := 0; i < maxLen; i++ {
			var pair TimePair
			if i < len(inTimes) {
				pair.In = inTimes[i].timeStr
				recordIDs = append(recordIDs, inTimes[i].recordID)
			}
			if i < len(outTimes) {
				pair.Out = outTimes[i].timeStr
				recordIDs = append(recordIDs, outTimes[i].recordID)
			}
			pairs = append(pairs, pair)
		}

		days = append(days, ReconciledDay{
			UserID:      padUserID(g.userID),
			UserName:    g.userName,
			Date:        g.date,
			Pairs:       pairs,
			PunchMethod: device.PunchMethodLabel(g.punch),
			UID:         fmt.Sprintf("%d", g.uid),
			RecordIDs:   recordIDs,
		})
	}
	return days
}

// padUserID đệm 0 bên trái cho đủ 5 ký tự (mã dài hơn giữ nguyên)
func padUserID(userID string) string {
	for len(userID) < 5 {
		userID = "0" + userID
	}
	return userID
}
