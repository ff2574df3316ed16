package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/eoreilly0906/Spoon-API/middlewares"
	"github.com/eoreilly0906/Spoon-API/models"
	"github.com/eoreilly0906/Spoon-API/services"
	"github.com/eoreilly0906/Spoon-API/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth     *services.AuthService
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthController(auth *services.AuthService, secret []byte, ttl time.Duration) *AuthController {
	return &AuthController{Auth: auth, Secret: secret, TokenTTL: ttl}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := a.Auth.Register(input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
			return
		}
		internalError(c, err)
		return
	}

	a.respondWithToken(c, http.StatusCreated, user)
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := a.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// same body whether the username or the password was wrong
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}
		internalError(c, err)
		return
	}

	a.respondWithToken(c, http.StatusOK, user)
}

func (a *AuthController) Me(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	user, err := a.Auth.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

func (a *AuthController) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := utils.GenerateJWT(a.Secret, user.ID, user.Username, a.TokenTTL)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(status, gin.H{
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// internalError logs the real failure and sends back a generic body.
func internalError(c *gin.Context, err error) {
	log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
}
