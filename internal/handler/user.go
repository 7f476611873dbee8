package handler

import (
	"errors"
	"net/http"

	"github.com/Xinhui001/user-center/internal/middleware"
	"github.com/Xinhui001/user-center/internal/service"
	"github.com/Xinhui001/user-center/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户接口
type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// ---------- 注册 ----------

type registerReq struct {
	UserAccount   string `json:"userAccount" binding:"required"`
	UserPassword  string `json:"userPassword" binding:"required"`
	CheckPassword string `json:"checkPassword" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	id, err := h.Service.Register(c.Request.Context(), req.UserAccount, req.UserPassword, req.CheckPassword)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"id": id,
	})
}

// ---------- 登录 ----------

type loginReq struct {
	UserAccount  string `json:"userAccount" binding:"required"`
	UserPassword string `json:"userPassword" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	sess := middleware.CurrentSession(c)
	user, err := h.Service.Login(c.Request.Context(), req.UserAccount, req.UserPassword, sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": user,
	})
}

// Logout 退出登录，幂等
func (h *UserHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	result, err := h.Service.Logout(c.Request.Context(), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"result": result,
	})
}

// Current 返回当前登录用户（按 id 重新查库后的脱敏信息）
func (h *UserHandler) Current(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	user, err := h.Service.CurrentUser(c.Request.Context(), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": user,
	})
}

// Search 管理员按昵称搜索用户
func (h *UserHandler) Search(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	users, err := h.Service.SearchUsers(c.Request.Context(), c.Query("username"), sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"users": users,
	})
}

// ---------- 删除 ----------

type deleteReq struct {
	ID int64 `json:"id" binding:"required"`
}

// Delete 管理员按 id 删除用户
func (h *UserHandler) Delete(c *gin.Context) {
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	sess := middleware.CurrentSession(c)
	removed, err := h.Service.DeleteUser(c.Request.Context(), req.ID, sess)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	util.Success(c, util.Response{
		"result": removed,
	})
}

// writeServiceError 把业务错误映射成统一的响应码
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, util.ErrAccountBlank),
		errors.Is(err, util.ErrAccountTooShort),
		errors.Is(err, util.ErrAccountInvalidChars),
		errors.Is(err, util.ErrPasswordBlank),
		errors.Is(err, util.ErrPasswordTooShort),
		errors.Is(err, util.ErrPasswordMismatch),
		errors.Is(err, service.ErrAccountTaken):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotLoggedIn):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, err.Error())
	case errors.Is(err, service.ErrForbidden):
		util.Error(c, http.StatusForbidden, util.CodeForbidden, err.Error())
	default:
		// 存储或会话故障，不向外透出内部细节
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "系统错误")
	}
}
