// Package webapi assembles the Fiber application from the handler
// sub-packages.
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"github.com/securebank/securebank/pkg/config"
	accountsvc "github.com/securebank/securebank/pkg/service/account"
	authsvc "github.com/securebank/securebank/pkg/service/auth"
	chatsvc "github.com/securebank/securebank/pkg/service/chat"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
	accountweb "github.com/securebank/securebank/webapi/account"
	authweb "github.com/securebank/securebank/webapi/auth"
	chatweb "github.com/securebank/securebank/webapi/chat"
	"github.com/securebank/securebank/webapi/common"
	reportweb "github.com/securebank/securebank/webapi/report"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	Accounts *accountsvc.Service
	Reports  *reportsvc.Service
	Auth     *authsvc.Service
	Chat     *chatsvc.Service
}

// SetupApp initializes Fiber with rate limiting, panic recovery, request
// logging and all routes.
func SetupApp(svcs Services, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "SecureBank API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	app.Use(limiter.New(limiter.Config{
		Max: 100,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Prefer proxy headers so a load balancer does not collapse
			// every client into one bucket
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if idx := strings.Index(forwardedFor, ","); idx != -1 {
					return strings.TrimSpace(forwardedFor[:idx])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SecureBank API is running! 🚀")
	})

	authweb.Routes(app, svcs.Auth)
	accountweb.Routes(app, svcs.Accounts, svcs.Reports, cfg.Jwt)
	reportweb.Routes(app, svcs.Reports, cfg.Jwt)
	chatweb.Routes(app, svcs.Chat, svcs.Reports, cfg.Jwt)

	return app
}
