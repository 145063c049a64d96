// Package account exposes the account lifecycle and money movement over
// HTTP.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/middleware"
	"github.com/securebank/securebank/pkg/money"
	accountsvc "github.com/securebank/securebank/pkg/service/account"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
	"github.com/securebank/securebank/webapi/common"
)

// Routes registers the account endpoints. All of them require a valid
// bearer token.
//
// Routes:
//   - POST   /accounts                          : Open a new account.
//   - GET    /accounts                          : List accounts, or search with ?name=.
//   - GET    /accounts/:number                  : Account details.
//   - PUT    /accounts/:number                  : Update profile fields.
//   - GET    /accounts/:number/delete-preview   : What a delete would destroy.
//   - DELETE /accounts/:number                  : Delete the account and its history.
//   - POST   /accounts/:number/deposit          : Deposit funds.
//   - POST   /accounts/:number/withdraw         : Withdraw funds.
func Routes(app *fiber.App, svc *accountsvc.Service, reports *reportsvc.Service, cfg config.Jwt) {
	app.Post("/accounts", middleware.JwtProtected(cfg), Create(svc))
	app.Get("/accounts", middleware.JwtProtected(cfg), List(reports))
	app.Get("/accounts/:number", middleware.JwtProtected(cfg), Get(reports))
	app.Put("/accounts/:number", middleware.JwtProtected(cfg), Update(svc))
	app.Get("/accounts/:number/delete-preview", middleware.JwtProtected(cfg), DeletePreview(svc))
	app.Delete("/accounts/:number", middleware.JwtProtected(cfg), Delete(svc))
	app.Post("/accounts/:number/deposit", middleware.JwtProtected(cfg), Deposit(svc))
	app.Post("/accounts/:number/withdraw", middleware.JwtProtected(cfg), Withdraw(svc))
}

// Create returns the handler opening a new account.
// @Summary Open a new account
// @Description Validates the holder details, allocates the next account number and records the opening deposit.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Router /accounts [post]
// @Security Bearer
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		deposit, err := money.ParseRupees(input.InitialDeposit)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		a, err := svc.CreateAccount(c.UserContext(), accountsvc.CreateInput{
			HolderName:     input.Name,
			Age:            input.Age,
			Gender:         input.Gender,
			Type:           input.AccountType,
			InitialDeposit: deposit,
			Phone:          input.Phone,
		})
		if err != nil {
			log.Errorf("account creation failed: %v", err)
			return common.DomainErrorJSON(c, "Account creation failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", a)
	}
}

// List returns the handler listing accounts, optionally filtered by a
// case-insensitive name substring.
// @Summary List or search accounts
// @Tags accounts
// @Produce json
// @Param name query string false "Name substring to search for"
// @Success 200 {object} common.Response "Accounts"
// @Router /accounts [get]
// @Security Bearer
func List(reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if name := c.Query("name"); name != "" {
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Search results",
				reports.SearchByName(c.UserContext(), name))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts",
			reports.ListAccounts(c.UserContext()))
	}
}

// Get returns the handler fetching one account.
// @Summary Get account details
// @Tags accounts
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response "Account"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number} [get]
// @Security Bearer
func Get(reports *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := reports.GetAccount(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, "Account lookup failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", a)
	}
}

// Update returns the handler changing profile fields. Balance and history
// are not editable.
// @Summary Update account profile
// @Tags accounts
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body UpdateRequest true "Profile fields"
// @Success 200 {object} common.Response "Account updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number} [put]
// @Security Bearer
func Update(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.UpdateProfile(c.UserContext(), c.Params("number"), accountsvc.UpdateInput{
			HolderName: input.Name,
			Age:        input.Age,
			Gender:     input.Gender,
			Phone:      input.Phone,
		})
		if err != nil {
			log.Errorf("profile update failed: %v", err)
			return common.DomainErrorJSON(c, "Update failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", a)
	}
}

// DeletePreview returns the handler for the first phase of deletion.
// @Summary Preview an account deletion
// @Description Shows the balance and transaction count a confirmed delete would destroy. Mutates nothing.
// @Tags accounts
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response "Delete preview"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number}/delete-preview [get]
// @Security Bearer
func DeletePreview(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		preview, err := svc.PreviewDelete(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.DomainErrorJSON(c, "Delete preview failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Delete preview", preview)
	}
}

// Delete returns the handler for the destructive second phase.
// @Summary Delete an account
// @Description Removes the account and every transaction referencing it. Irreversible.
// @Tags accounts
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response "Account deleted"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number} [delete]
// @Security Bearer
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")
		if err := svc.DeleteAccount(c.UserContext(), number); err != nil {
			log.Errorf("account deletion failed: %v", err)
			return common.DomainErrorJSON(c, "Deletion failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", fiber.Map{
			"accountNumber": number,
		})
	}
}

// Deposit returns the handler adding funds.
// @Summary Deposit funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Deposit details"
// @Success 200 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Policy violation"
// @Router /accounts/{number}/deposit [post]
// @Security Bearer
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.ParseRupees(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		res, err := svc.Deposit(c.UserContext(), c.Params("number"), amount,
			input.TransactionType, input.Description)
		if err != nil {
			log.Errorf("deposit failed: %v", err)
			return common.DomainErrorJSON(c, "Deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", res)
	}
}

// Withdraw returns the handler removing funds.
// @Summary Withdraw funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Param request body AmountRequest true "Withdrawal details"
// @Success 200 {object} common.Response "Withdrawal successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds or policy violation"
// @Router /accounts/{number}/withdraw [post]
// @Security Bearer
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.ParseRupees(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		res, err := svc.Withdraw(c.UserContext(), c.Params("number"), amount,
			input.TransactionType, input.Description)
		if err != nil {
			log.Errorf("withdrawal failed: %v", err)
			return common.DomainErrorJSON(c, "Withdrawal failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", res)
	}
}
