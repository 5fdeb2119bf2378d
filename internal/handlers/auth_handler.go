package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aanjanaji/physio-api/internal/httperr"
	ucauth "github.com/aanjanaji/physio-api/internal/usecase/auth"
)

type AuthHandler struct {
	signupUC *ucauth.Signup
	loginUC  *ucauth.Login
}

func NewAuthHandler(signupUC *ucauth.Signup, loginUC *ucauth.Login) *AuthHandler {
	return &AuthHandler{
		signupUC: signupUC,
		loginUC:  loginUC,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	// Email is not format-checked here: the literal "admin" is a valid
	// alias, resolved inside the use case before the format check runs.
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.signupUC.Execute(c.Request.Context(), ucauth.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		if httperr.IsBusiness(err, "email_already_exists") {
			httperr.BadRequest(c, "email_already_exists", "User with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_email"):
			httperr.BadRequest(c, "invalid_email", "Invalid login data.")
		case httperr.IsBusiness(err, "invalid_credentials"):
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		default:
			httperr.Internal(c, "login_failed", "Login failed.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}
