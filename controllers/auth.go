package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/remote"
	"github.com/pcgops/cscrm_end/utils"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController 认证相关接口
type AuthController struct {
	auth remote.Auth
}

// NewAuthController 创建认证控制器
func NewAuthController(auth remote.Auth) *AuthController {
	return &AuthController{auth: auth}
}

// Login 用户登录
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.Logger.Info().
		Str("email", req.Email).
		Msg("登录尝试")

	session, err := ac.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.Logger.Info().Str("email", req.Email).Err(err).Msg("登录失败")
		utils.ErrorResponse(c, "邮箱或密码错误", http.StatusUnauthorized)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user":  session.Profile,
		"token": session.Token,
	}, "登录成功")
}

// Logout 用户登出
func (ac *AuthController) Logout(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return
	}

	if err := ac.auth.SignOut(c.Request.Context(), user.ID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil, "已退出登录")
}

// Validate 校验token有效性并返回当前用户
func (ac *AuthController) Validate(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user, "valid": true}, "")
}

// Me 返回当前登录用户档案
func (ac *AuthController) Me(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user}, "")
}
