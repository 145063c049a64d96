// Package chat exposes the banking assistant over HTTP.
package chat

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/middleware"
	chatsvc "github.com/securebank/securebank/pkg/service/chat"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
	"github.com/securebank/securebank/webapi/common"
)

// MessageRequest is the assistant payload.
type MessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// MessageResponse is the assistant reply.
type MessageResponse struct {
	Reply string `json:"reply"`
}

// Routes registers the assistant endpoint.
func Routes(app *fiber.App, svc *chatsvc.Service, reports *reportsvc.Service, cfg config.Jwt) {
	app.Post("/chat", middleware.JwtProtected(cfg), Message(svc, reports))
}

// Message returns the handler answering an assistant message. The reply is
// always 200 with a non-empty answer; provider trouble degrades to the
// scripted templates.
// @Summary Ask the banking assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param request body MessageRequest true "Message"
// @Success 200 {object} common.Response "Assistant reply"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Router /chat [post]
// @Security Bearer
func Message(svc *chatsvc.Service, reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[MessageRequest](c)
		if input == nil {
			return err
		}
		summary := reports.Summarize(c.UserContext())
		reply := svc.Respond(c.UserContext(), input.Message, chatsvc.Context{
			AccountCount: summary.TotalAccounts,
			TotalBalance: summary.TotalBalance,
		})
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assistant reply", MessageResponse{
			Reply: reply,
		})
	}
}
