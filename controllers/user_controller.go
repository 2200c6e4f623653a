package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"
)

type CreateUserPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	IsTenant bool   `json:"is_tenant"`
}

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

// POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var payload CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Password: string(hash),
		IsTenant: payload.IsTenant,
	}
	if err := uc.UserSvc.Create(&user); err != nil {
		utils.JSONError(c, http.StatusConflict, "email already registered")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, user)
}
