// Package auth exposes registration and login over HTTP.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	authsvc "github.com/securebank/securebank/pkg/service/auth"
	"github.com/securebank/securebank/webapi/common"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user; never includes the hash.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the signed token with the user.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/register", Register(svc))
	app.Post("/auth/login", Login(svc))
}

// Register returns the handler creating a new user.
// @Summary Register a new user
// @Description Creates a user account with a bcrypt-hashed password. The password must be at least 8 characters with upper, lower, digit and special characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} common.Response "User registered"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Email already registered"
// @Router /auth/register [post]
func Register(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Register(c.UserContext(), authsvc.RegisterInput{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			log.Errorf("registration failed: %v", err)
			return common.DomainErrorJSON(c, "Registration failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", UserResponse{
			ID: u.ID.String(), Name: u.Name, Email: u.Email,
		})
	}
}

// Login returns the handler exchanging credentials for a token.
// @Summary Log in
// @Description Verifies the credentials and returns a signed JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} common.Response "Login successful"
// @Failure 401 {object} common.ProblemDetails "Invalid credentials"
// @Router /auth/login [post]
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, token, err := svc.Login(c.UserContext(), input.Email, input.Password)
		if err != nil {
			log.Errorf("login failed: %v", err)
			return common.DomainErrorJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", LoginResponse{
			User:  UserResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email},
			Token: token,
		})
	}
}
