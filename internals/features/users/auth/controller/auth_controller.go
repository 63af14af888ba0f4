package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vtop_backend/internals/configs"
	authDTO "vtop_backend/internals/features/users/auth/dto"
	authModel "vtop_backend/internals/features/users/auth/model"
	helper "vtop_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

const accessTokenTTL = 12 * time.Hour

// ===============================
// POST /api/auth/register
// Registrar-only provisioning of portal accounts.
// ===============================
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     req.Role,
		RegNo:    req.RegNo,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or registration number already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Account created", authDTO.ToUserResponse(&user))
}

// ===============================
// POST /api/auth/login
// ===============================
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := ctl.issueAccessToken(&user)
	if err != nil {
		log.Println("[ERROR] issueAccessToken:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User:        authDTO.ToUserResponse(&user),
	})
}

// ===============================
// POST /api/auth/logout
// Blacklists the presented token until it would have expired anyway.
// ===============================
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}
	tokenString := strings.Trim(strings.TrimSpace(fields[1]), "\"'")

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonOK(c, "Already logged out", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// ===============================
// GET /api/u/me
// ===============================
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user authModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", authDTO.ToUserResponse(&user))
}

func (ctl *AuthController) issueAccessToken(user *authModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
