package model

// ReceivingAccount is the custodial bank account payers transfer funds to.
type ReceivingAccount struct {
	AccountName   string
	AccountNumber string
	BankName      string
}
