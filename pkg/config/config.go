// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import "time"

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Banking holds the ledger policy thresholds. Values are whole rupees.
type Banking struct {
	MinDeposit           int64 `envconfig:"MIN_DEPOSIT" default:"1000"`
	MinAge               int   `envconfig:"MIN_AGE" default:"18"`
	LowBalanceThreshold  int64 `envconfig:"LOW_BALANCE_THRESHOLD" default:"1000"`
	AccountNumberStart   int64 `envconfig:"ACCOUNT_NUMBER_START" default:"10001"`
	DailyWithdrawalLimit int64 `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"25000"`
	MaxCashDeposit       int64 `envconfig:"MAX_CASH_DEPOSIT" default:"100000"`
}

// Jwt holds token signing settings.
type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// OpenAI holds the chat-completion endpoint settings. An empty ApiKey
// disables delegation; the assistant then answers from templates only.
type OpenAI struct {
	ApiKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	Model       string        `envconfig:"MODEL" default:"gpt-3.5-turbo"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"500"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.7"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	MaxHistory  int           `envconfig:"MAX_HISTORY" default:"10"`
}

// Snapshot holds the persistence settings. When DatabaseURL is set the
// gorm-backed store is used, otherwise the JSON file store.
type Snapshot struct {
	Dir         string `envconfig:"DIR" default:"."`
	LedgerKey   string `envconfig:"LEDGER_KEY" default:"bank_ledger"`
	UsersKey    string `envconfig:"USERS_KEY" default:"bank_users"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// Log holds logger settings.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[securebank]"`
}

// App is the root configuration.
type App struct {
	Env      string   `envconfig:"ENV" default:"development"`
	Server   Server   `envconfig:"SERVER"`
	Banking  Banking  `envconfig:"BANKING"`
	Jwt      Jwt      `envconfig:"JWT"`
	OpenAI   OpenAI   `envconfig:"OPENAI"`
	Snapshot Snapshot `envconfig:"SNAPSHOT"`
	Log      Log      `envconfig:"LOG"`
}
