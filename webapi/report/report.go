// Package report exposes history, summary and export queries over HTTP.
package report

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/domain/account"
	"github.com/securebank/securebank/pkg/middleware"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
	"github.com/securebank/securebank/webapi/common"
)

// dateLayout is the wire format for the from/to query filters.
const dateLayout = "2006-01-02"

// Routes registers the query endpoints.
//
// Routes:
//   - GET /transactions                     : Filtered history, newest first.
//   - GET /transactions/export              : Same filters, rows with holder names and totals.
//   - GET /accounts/:number/transactions    : One account's history.
//   - GET /reports/summary                  : Bank-wide totals.
//   - GET /reports/low-balance              : Accounts below the threshold.
func Routes(app *fiber.App, svc *reportsvc.Service, cfg config.Jwt) {
	app.Get("/transactions", middleware.JwtProtected(cfg), Transactions(svc))
	app.Get("/transactions/export", middleware.JwtProtected(cfg), Export(svc))
	app.Get("/accounts/:number/transactions", middleware.JwtProtected(cfg), AccountTransactions(svc))
	app.Get("/reports/summary", middleware.JwtProtected(cfg), Summary(svc))
	app.Get("/reports/low-balance", middleware.JwtProtected(cfg), LowBalance(svc))
}

// filterFromQuery builds the history filter from query parameters.
func filterFromQuery(c *fiber.Ctx) (reportsvc.HistoryFilter, error) {
	f := reportsvc.HistoryFilter{
		AccountNumber: c.Query("account"),
		Kind:          account.Kind(c.Query("type")),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return f, err
		}
		f.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return f, err
		}
		f.To = to
	}
	return f, nil
}

// Transactions returns the handler for the filtered transaction log.
// @Summary List transactions
// @Description Returns transactions newest first. Filter by account, type (Deposit or Withdrawal) and a from/to date window; the to date is inclusive through end of day.
// @Tags reports
// @Produce json
// @Param account query string false "Account number"
// @Param type query string false "Transaction kind" Enums(Deposit, Withdrawal)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} common.Response "Transactions"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /transactions [get]
// @Security Bearer
func Transactions(svc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date filter", err.Error())
		}
		txs, err := svc.TransactionHistory(c.UserContext(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "History lookup failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", txs)
	}
}

// AccountTransactions returns the handler for one account's history.
// @Summary List one account's transactions
// @Tags reports
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} common.Response "Transactions"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number}/transactions [get]
// @Security Bearer
func AccountTransactions(svc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := svc.TransactionHistory(c.UserContext(), reportsvc.HistoryFilter{
			AccountNumber: c.Params("number"),
		})
		if err != nil {
			return common.DomainErrorJSON(c, "History lookup failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", txs)
	}
}

// Export returns the handler building a statement export.
// @Summary Export transactions
// @Description Applies the same filters as /transactions and resolves holder names, with deposit/withdrawal/net totals for the window.
// @Tags reports
// @Produce json
// @Param account query string false "Account number"
// @Param type query string false "Transaction kind" Enums(Deposit, Withdrawal)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} common.Response "Export"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /transactions/export [get]
// @Security Bearer
func Export(svc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := filterFromQuery(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date filter", err.Error())
		}
		res, err := svc.Export(c.UserContext(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "Export failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Export", res)
	}
}

// Summary returns the handler for bank-wide totals.
// @Summary Bank summary
// @Tags reports
// @Produce json
// @Success 200 {object} common.Response "Summary"
// @Router /reports/summary [get]
// @Security Bearer
func Summary(svc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary",
			svc.Summarize(c.UserContext()))
	}
}

// LowBalance returns the handler listing accounts below the threshold.
// @Summary Low balance accounts
// @Description Accounts below the minimum balance with a severity and the action needed.
// @Tags reports
// @Produce json
// @Success 200 {object} common.Response "Low balance accounts"
// @Router /reports/low-balance [get]
// @Security Bearer
func LowBalance(svc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Low balance accounts",
			svc.LowBalanceAccounts(c.UserContext()))
	}
}
