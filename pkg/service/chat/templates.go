package chat

import "strings"

// template is one scripted answer, selected when the message contains every
// keyword.
type template struct {
	keywords []string
	reply    string
}

// templates are checked in order; the first full keyword match wins.
var templates = []template{
	{
		keywords: []string{"create", "account"},
		reply: `To create a new bank account, you'll need:

Required documents:
- Valid government photo ID (Aadhaar, PAN, Passport)
- Address proof (utility bill, rental agreement)
- PAN card (mandatory)
- Recent passport-size photographs

Initial deposit requirements:
- Savings Account: minimum opening deposit applies
- Current Account: higher minimum for business use

Process: fill the account opening form, submit documents for verification, make the initial deposit and receive your account number.

Would you like to know about specific account types?`,
	},
	{
		keywords: []string{"loan", "document"},
		reply: `Loan application documents:

Basic requirements:
- Identity proof (Aadhaar, PAN, Passport)
- Address proof (utility bills, rental agreement)
- Income proof (salary slips, ITR, bank statements)
- Employment proof (employment letter, business registration)

Personal loans additionally need the last 3 months of salary slips, 6 months of bank statements and Form 16 or ITR for the last 2 years. Home loans need property documents, builder NOC and a valuation report.

Requirements may vary based on loan type and amount.`,
	},
	{
		keywords: []string{"account", "type"},
		reply: `We offer two account types:

Savings Account:
- Earns interest on the balance
- Suited for individuals and regular saving
- Limited free transactions per month

Current Account:
- No interest, unlimited transactions
- Suited for businesses and frequent operations
- Higher minimum balance requirement

Both come with a passbook, debit card and online banking access.`,
	},
	{
		keywords: []string{"personal", "loan"},
		reply: `Personal loan highlights:

- Loan amounts from modest to substantial, unsecured
- Tenure typically 1 to 5 years
- Approval based on income, credit score and employment
- Last 3 months salary slips and 6 months bank statements needed

Interest rates depend on your credit profile. Prepayment options are available on most plans.`,
	},
	{
		keywords: []string{"interest", "rate"},
		reply: `Current indicative interest rates:

Deposits:
- Savings Account: 3.5% - 4% per annum
- Fixed Deposit: 6% - 7.5% per annum
- Recurring Deposit: 6% - 7% per annum

Loans:
- Home Loan: 8.5% - 11% per annum
- Personal Loan: 10.5% - 24% per annum
- Car Loan: 8.5% - 15% per annum
- Education Loan: 9% - 15% per annum

Rates vary with credit score, amount, tenure and market conditions, and are subject to change.`,
	},
	{
		keywords: []string{"minimum", "balance"},
		reply: `Minimum balance requirements:

Savings Account:
- Regular Savings: standard minimum applies
- Senior Citizen: reduced minimum
- Student Account: lowest tier

Current Account:
- Regular Current and Business Current carry higher minimums

Non-maintenance attracts a monthly penalty. Set up auto-transfers or direct deposit to keep the balance topped up, and monitor it via the app or SMS banking.`,
	},
}

// welcomeReply answers anything no template matches.
const welcomeReply = `Welcome to SecureBank's assistant.

I can help you with:
- Opening a new account and the documents required
- Account types and minimum balance rules
- Loan applications and documentation
- Deposit and loan interest rates

Ask me about any of these topics, for example "how do I create an account?" or "what are the current interest rates?"`

// templateReply picks the scripted answer for a message. It always returns
// a non-empty reply.
func templateReply(message string) string {
	normalized := strings.ToLower(message)
	for _, t := range templates {
		matched := true
		for _, kw := range t.keywords {
			if !strings.Contains(normalized, kw) {
				matched = false
				break
			}
		}
		if matched {
			return t.reply
		}
	}
	return welcomeReply
}
