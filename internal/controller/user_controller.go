package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"skillsync_backend/internal/service"
	"skillsync_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

type updateProfileRequest struct {
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Interests are replaced as a set, missing interest names are created
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   data body updateProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/users/me [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req updateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	claims := util.GetUserFromContext(ctx)
	user, err := c.UserService.UpdateProfile(claims.UserID, service.ProfileUpdate{
		Name:      req.Name,
		Username:  req.Username,
		Bio:       req.Bio,
		Interests: req.Interests,
	})
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload an avatar image for the caller
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "image file"
// @Success 200 {object} util.Response{data=object}
// @Router /api/users/me/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	claims := util.GetUserFromContext(ctx)
	name := fmt.Sprintf("avatars/%d_%d%s", claims.UserID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := c.StorageService.Upload(ctx.Request.Context(), name, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if err := c.UserService.SetAvatar(claims.UserID, url); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// GetInterests godoc
// @Summary List available interests
// @Tags users
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Interest}
// @Router /api/interests [get]
func (c *UserController) GetInterests(ctx *gin.Context) {
	interests, err := c.UserService.GetInterests()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interests)
}

// GetUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// GetUser godoc
// @Summary Fetch a user by id (admin)
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
