package handler

import (
	"fmt"
	"strings"

	"chamcong-backend/internal/model"
	"chamcong-backend/internal/repository"
	"chamcong-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Thứ tự cột của file import nhân viên, trùng với file mẫu tải về
var employeeImportHeaders = []string{
	"Mã nhân viên", "Tên nhân viên", "Phòng ban", "Chức vụ",
	"Giới tính", "Ngày vào làm", "Mã chấm công", "Tên chấm công",
	"Ngày sinh", "Số CCCD", "Số điện thoại", "Địa chỉ hiện tại",
}

type EmployeeHandler struct {
	repo           repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
	jobTitleRepo   repository.JobTitleRepository
}

func NewEmployeeHandler(
	repo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
	jobTitleRepo repository.JobTitleRepository,
) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, departmentRepo: departmentRepo, jobTitleRepo: jobTitleRepo}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	employees, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không đọc được danh sách nhân viên"})
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	employee, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nhân viên không tồn tại"})
	}
	return c.JSON(employee)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	if employee.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tên nhân viên không được để trống"})
	}
	if employee.EmployeeCode != "" {
		if _, err := h.repo.GetByCode(employee.EmployeeCode); err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Mã nhân viên đã tồn tại"})
		}
	}
	if err := h.repo.Create(&employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi thêm nhân viên"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thêm nhân viên thành công", "employee": employee})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	existing, err := h.repo.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nhân viên không tồn tại"})
	}

	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dữ liệu không hợp lệ"})
	}
	employee.ID = existing.ID
	employee.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&employee); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi cập nhật nhân viên"})
	}
	return c.JSON(fiber.Map{"message": "Cập nhật nhân viên thành công", "employee": employee})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID không hợp lệ"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi xóa nhân viên"})
	}
	return c.JSON(fiber.Map{"message": "Xóa nhân viên thành công"})
}

// DownloadTemplate trả file .xlsx mẫu để người dùng điền danh sách nhân viên
func (h *EmployeeHandler) DownloadTemplate(c *fiber.Ctx) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Nhan vien"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, head := range employeeImportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi tạo file mẫu"})
		}
		if err := f.SetCellValue(sheet, cell, head); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi tạo file mẫu"})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi tạo file mẫu"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mau-nhan-vien.xlsx"`)
	return c.Send(buf.Bytes())
}

// Import đọc file .xlsx/.xls theo cột của file mẫu và thêm hàng loạt.
// Dòng thiếu mã hoặc tên, hoặc trùng mã đã có, thì bỏ qua và đếm lại
// để báo cho người dùng — không làm hỏng cả file.
func (h *EmployeeHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Chưa chọn file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Không mở được file"})
	}
	defer file.Close()

	rows, err := utils.ReadSpreadsheetRows(file, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Không đọc được file: %v", err)})
	}
	if len(rows) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File không có dòng dữ liệu nào"})
	}

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var employees []model.Employee
	skipped := 0
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		code := cell(row, 0)
		name := cell(row, 1)
		if code == "" || name == "" {
			skipped++
			continue
		}
		if seen[code] {
			skipped++
			continue
		}
		if _, err := h.repo.GetByCode(code); err == nil {
			skipped++
			continue
		}
		seen[code] = true

		employee := model.Employee{
			EmployeeCode:   code,
			Name:           name,
			Gender:         cell(row, 4),
			HireDate:       cell(row, 5),
			AttendanceCode: cell(row, 6),
			AttendanceName: cell(row, 7),
			DateOfBirth:    cell(row, 8),
			IDNumber:       cell(row, 9),
			PhoneNumber:    cell(row, 10),
			CurrentAddress: cell(row, 11),
		}
		if deptName := cell(row, 2); deptName != "" {
			dept, err := h.departmentRepo.GetOrCreateByName(deptName)
			if err == nil {
				employee.DepartmentID = &dept.ID
			}
		}
		if titleName := cell(row, 3); titleName != "" {
			title, err := h.jobTitleRepo.GetOrCreateByName(titleName)
			if err == nil {
				employee.JobTitleID = &title.ID
			}
		}
		employees = append(employees, employee)
	}

	if err := h.repo.CreateMany(employees); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Lỗi khi lưu danh sách nhân viên"})
	}
	return c.JSON(fiber.Map{
		"message":  fmt.Sprintf("Đã thêm %d nhân viên, bỏ qua %d dòng", len(employees), skipped),
		"imported": len(employees),
		"skipped":  skipped,
	})
}
