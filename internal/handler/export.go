package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Xinhui001/user-center/internal/middleware"
	"github.com/Xinhui001/user-center/internal/models"
	"github.com/Xinhui001/user-center/internal/service"
	"github.com/Xinhui001/user-center/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 管理员导出用户列表（权限校验走 SearchUsers，同一套管理员判定）
type ExportHandler struct {
	Service *service.UserService
}

func NewExportHandler(svc *service.UserService) *ExportHandler {
	return &ExportHandler{Service: svc}
}

var exportHeaders = []string{"ID", "账号", "昵称", "邮箱", "手机", "性别", "角色", "状态", "注册时间"}

func exportRow(u *models.SanitizedUser) []string {
	roleText := "普通用户"
	if u.Role == models.RoleAdmin {
		roleText = "管理员"
	}
	statusText := "正常"
	if u.Status != models.StatusNormal {
		statusText = "封禁"
	}
	return []string{
		strconv.FormatUint(uint64(u.ID), 10),
		u.Account,
		u.Username,
		u.Email,
		u.Phone,
		strconv.Itoa(u.Gender),
		roleText,
		statusText,
		u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ExportCSV 导出用户列表为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	users, err := h.Service.SearchUsers(c.Request.Context(), c.Query("username"), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"users_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, u := range users {
		writer.Write(exportRow(u))
	}
}

// ExportXLSX 导出用户列表为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	users, err := h.Service.SearchUsers(c.Request.Context(), c.Query("username"), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "用户列表"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "创建工作表失败")
		return
	}
	f.SetActiveSheet(index)

	for i, head := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, u := range users {
		row := idx + 2
		for col, value := range exportRow(u) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "C", 18)
	f.SetColWidth(sheetName, "D", "E", 22)
	f.SetColWidth(sheetName, "F", "H", 10)
	f.SetColWidth(sheetName, "I", "I", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"users_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "导出失败")
	}
}
