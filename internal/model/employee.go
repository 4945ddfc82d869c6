package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique;not null"`
	ParentID *uint  `json:"parent_id"` // Phòng ban cha (nếu có)
}

type JobTitle struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}

type Employee struct {
	gorm.Model
	EmployeeCode string `json:"employee_code" gorm:"unique"`
	Name         string `json:"name" gorm:"not null"`
	DepartmentID *uint  `json:"department_id"`
	JobTitleID   *uint  `json:"job_title_id"`
	Gender       string `json:"gender"`
	HireDate     string `json:"hire_date"` // YYYY-MM-DD

	// Mã/tên dùng trên máy chấm công. AttendanceCode trống thì khi tải lên máy
	// sẽ rơi về EmployeeCode rồi về ID.
	AttendanceCode string `json:"attendance_code"`
	AttendanceName string `json:"attendance_name"`

	DateOfBirth      string `json:"date_of_birth"`
	Birthplace       string `json:"birthplace"`
	Hometown         string `json:"hometown"`
	IDNumber         string `json:"id_number"`
	IDPlaceIssued    string `json:"id_place_issued"`
	Ethnicity        string `json:"ethnicity"`
	Nationality      string `json:"nationality"`
	CurrentAddress   string `json:"current_address"`
	PhoneNumber      string `json:"phone_number"`
	EmergencyContact string `json:"emergency_contact"`

	// Quan hệ
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	JobTitle   *JobTitle   `json:"job_title,omitempty" gorm:"foreignKey:JobTitleID"`
}
