package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// CreateUserRequest 新建用户档案请求
type CreateUserRequest struct {
	FirstName       string   `json:"firstName" binding:"required"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email" binding:"required"`
	Roles           []string `json:"roles"`
	InitialPassword string   `json:"initialPassword" binding:"required"`
}

// UserController 账号与角色管理接口
type UserController struct {
	store *store.Store
}

// NewUserController 创建用户控制器
func NewUserController(s *store.Store) *UserController {
	return &UserController{store: s}
}

// List 获取用户档案列表
func (uc *UserController) List(c *gin.Context) {
	users := uc.store.Users()
	utils.SuccessResponse(c, gin.H{"users": users, "total": len(users)}, "")
}

// Create 新建用户档案并设置初始密码
func (uc *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile := models.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Roles:     req.Roles,
	}
	if len(profile.Roles) == 0 {
		profile.Roles = []string{models.RoleViewer}
	}

	created, localOnly, err := uc.store.AddUser(c.Request.Context(), profile, req.InitialPassword)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, gin.H{"user": created})
		return
	}
	utils.SuccessResponse(c, gin.H{"user": created}, "用户创建成功", http.StatusCreated)
}

// Delete 删除用户档案，禁止删除自己
func (uc *UserController) Delete(c *gin.Context) {
	currentUser, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return
	}

	localOnly, err := uc.store.RemoveUser(c.Request.Context(), currentUser.ID, c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if localOnly {
		utils.LocalOnlyResponse(c, nil)
		return
	}
	utils.SuccessResponse(c, nil, "用户删除成功")
}
