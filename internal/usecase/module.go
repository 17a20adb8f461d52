package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/lusunpay/internal/config"
	"github.com/polkiloo/lusunpay/internal/domain/model"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	NewLifecycleUseCase,
	NewBalanceUseCase,
	NewInvoiceUseCase,
	newReceivingAccount,
)

func newReceivingAccount(cfg *config.Config) model.ReceivingAccount {
	return model.ReceivingAccount{
		AccountName:   cfg.ReceivingAccountName,
		AccountNumber: cfg.ReceivingAccountNumber,
		BankName:      cfg.ReceivingBankName,
	}
}
