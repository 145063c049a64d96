package account

// CreateAccountRequest is the account-opening payload. Amounts are rupee
// numbers; they are parsed into paise at the boundary.
type CreateAccountRequest struct {
	Name           string  `json:"name" validate:"required"`
	Age            int     `json:"age" validate:"required"`
	Gender         string  `json:"gender" validate:"required"`
	AccountType    string  `json:"accountType" validate:"required"`
	InitialDeposit float64 `json:"initialDeposit" validate:"required,gt=0"`
	Phone          string  `json:"phone"`
}

// AmountRequest is the deposit/withdrawal payload.
type AmountRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	TransactionType string  `json:"transactionType"`
	Description     string  `json:"description"`
}

// UpdateRequest carries the editable profile fields.
type UpdateRequest struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required"`
	Gender string `json:"gender" validate:"required"`
	Phone  string `json:"phone"`
}
