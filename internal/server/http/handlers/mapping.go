package handlers

import (
	"github.com/polkiloo/lusunpay/internal/domain/model"
	"github.com/polkiloo/lusunpay/internal/server/http/dto"
	"github.com/polkiloo/lusunpay/internal/usecase"
)

func toOrderResponse(order model.Order, checkoutURL string) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          order.ID,
		ProjectName: order.ProjectName,
		Details:     order.Details,
		Amount:      order.Amount,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		CheckoutURL: checkoutURL,
		Version:     order.Version,
	}
	if inv := order.Invoice; inv != nil {
		resp.Invoice = &dto.InvoiceResponse{
			Type:        string(inv.Type),
			CompanyName: inv.CompanyName,
			TaxID:       inv.TaxID,
			Email:       inv.Email,
			Address:     inv.Address,
			Phone:       inv.Phone,
			BankName:    inv.BankName,
			BankAccount: inv.BankAccount,
			SubmittedAt: inv.SubmittedAt,
			SentAt:      inv.SentAt,
		}
	}
	return resp
}

func toOrderList(orders []model.Order, checkout func(string) string) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		url := ""
		if checkout != nil {
			url = checkout(o.ID)
		}
		resp = append(resp, toOrderResponse(o, url))
	}
	return resp
}

func toTransitionResponse(res usecase.TransitionResult, checkoutURL string) dto.TransitionResponse {
	return dto.TransitionResponse{
		Order:   toOrderResponse(res.Order, checkoutURL),
		Outcome: res.Outcome.String(),
	}
}

func toInvoiceInfo(req dto.InvoiceRequest) model.InvoiceInfo {
	return model.InvoiceInfo{
		Type:        model.InvoiceType(req.Type),
		CompanyName: req.CompanyName,
		TaxID:       req.TaxID,
		Email:       req.Email,
		Address:     req.Address,
		Phone:       req.Phone,
		BankName:    req.BankName,
		BankAccount: req.BankAccount,
	}
}
