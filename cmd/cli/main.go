package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/eventbus"
	"github.com/securebank/securebank/pkg/ledger"
	"github.com/securebank/securebank/pkg/money"
	"github.com/securebank/securebank/pkg/persistence"
	accountsvc "github.com/securebank/securebank/pkg/service/account"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		usage()
		return
	}
	cmd := os.Args[1]

	var banking config.Banking
	if err := envconfig.Process("BANKING", &banking); err != nil {
		fmt.Println("Failed to load banking config:", err)
		return
	}
	var snapCfg config.Snapshot
	if err := envconfig.Process("SNAPSHOT", &snapCfg); err != nil {
		fmt.Println("Failed to load snapshot config:", err)
		return
	}

	files, err := persistence.NewFileStore(snapCfg.Dir)
	if err != nil {
		fmt.Println("Failed to open snapshot store:", err)
		return
	}

	ctx := context.Background()
	store := ledger.New(banking.AccountNumberStart)
	var snap ledger.Snapshot
	if ok, err := persistence.LoadJSON(ctx, files, snapCfg.LedgerKey, &snap); err != nil {
		fmt.Println("Failed to load ledger snapshot:", err)
		return
	} else if ok {
		store.Restore(snap)
	}

	logger := slog.New(slog.DiscardHandler)
	accounts := accountsvc.New(store, banking, eventbus.NewSimpleBus(), logger)
	reports := reportsvc.New(store, reportsvc.Config{
		LowBalanceThreshold: banking.LowBalanceThreshold,
	}, logger)

	save := func() {
		if err := persistence.SaveJSON(ctx, files, snapCfg.LedgerKey, store.Snapshot()); err != nil {
			fmt.Println("Failed to save ledger snapshot:", err)
		}
	}

	switch cmd {
	case "create":
		if argsLen < 7 {
			fmt.Println("Usage: create <name> <age> <gender> <type> <initial_deposit> [phone]")
			return
		}
		age, err := strconv.Atoi(os.Args[3])
		if err != nil {
			fmt.Println("Invalid age:", err)
			return
		}
		deposit, err := parseAmount(os.Args[6])
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		phone := ""
		if argsLen > 7 {
			phone = os.Args[7]
		}
		a, err := accounts.CreateAccount(ctx, accountsvc.CreateInput{
			HolderName:     os.Args[2],
			Age:            age,
			Gender:         os.Args[4],
			Type:           os.Args[5],
			InitialDeposit: deposit,
			Phone:          phone,
		})
		if err != nil {
			fmt.Println("Error creating account:", err)
			return
		}
		save()
		fmt.Printf("Account created: number=%s, holder=%s, balance=%s\n", a.Number, a.HolderName, a.Balance)
	case "deposit", "withdraw":
		if argsLen < 4 {
			fmt.Printf("Usage: %s <account_number> <amount>\n", cmd)
			return
		}
		number := os.Args[2]
		amount, err := parseAmount(os.Args[3])
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		var res accountsvc.MutationResult
		if cmd == "deposit" {
			res, err = accounts.Deposit(ctx, number, amount, "Cash", "")
		} else {
			res, err = accounts.Withdraw(ctx, number, amount, "Cash", "")
		}
		if err != nil {
			fmt.Printf("Error on %s: %v\n", cmd, err)
			return
		}
		save()
		fmt.Printf("%s of %s on account %s. New balance: %s\n",
			res.Transaction.Kind, amount, number, res.Account.Balance)
		if res.Advisory != nil {
			fmt.Println("Warning:", res.Advisory.Message)
		}
	case "balance":
		if argsLen < 3 {
			fmt.Println("Usage: balance <account_number>")
			return
		}
		a, err := reports.GetAccount(ctx, os.Args[2])
		if err != nil {
			fmt.Println("Error fetching balance:", err)
			return
		}
		fmt.Printf("Account %s (%s): balance %s\n", a.Number, a.HolderName, a.Balance)
	case "history":
		if argsLen < 3 {
			fmt.Println("Usage: history <account_number>")
			return
		}
		txs, err := reports.TransactionHistory(ctx, reportsvc.HistoryFilter{AccountNumber: os.Args[2]})
		if err != nil {
			fmt.Println("Error fetching history:", err)
			return
		}
		if len(txs) == 0 {
			fmt.Println("No transactions found.")
			return
		}
		for _, tx := range txs {
			fmt.Printf("%s  %-10s  %12s  balance %12s  %s\n",
				tx.Timestamp.Format("2006-01-02 15:04"), tx.Kind, tx.Amount, tx.BalanceAfter, tx.Description)
		}
	case "summary":
		s := reports.Summarize(ctx)
		fmt.Printf("Accounts: %d (savings %d, current %d)\n", s.TotalAccounts, s.SavingsAccounts, s.CurrentAccounts)
		fmt.Printf("Total balance: %s, average: %s\n", s.TotalBalance, s.AverageBalance)
		fmt.Printf("Transactions: %d total, %d today\n", s.TotalTransactions, s.TodayTransactions)
	case "low-balance":
		entries := reports.LowBalanceAccounts(ctx)
		if len(entries) == 0 {
			fmt.Println("No accounts with low balance found.")
			return
		}
		for _, e := range entries {
			fmt.Printf("%s  %-20s  %12s  [%s] %s\n",
				e.Account.Number, e.Account.HolderName, e.Account.Balance, e.Severity, e.Action)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create <name> <age> <gender> <type> <initial_deposit> [phone]")
	fmt.Println("  deposit <account_number> <amount>")
	fmt.Println("  withdraw <account_number> <amount>")
	fmt.Println("  balance <account_number>")
	fmt.Println("  history <account_number>")
	fmt.Println("  summary")
	fmt.Println("  low-balance")
}

func parseAmount(raw string) (money.Money, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return money.Zero, err
	}
	return money.ParseRupees(v)
}
