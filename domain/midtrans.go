package domain

import "errors"

var (
	MessageSuccessCreateInvoice = "top up invoice created successfully"
	MessageSuccessWebhook       = "webhook processed"

	MessageFailedCreateInvoice = "failed to create top up invoice"
	MessageFailedWebhook       = "failed to process webhook"

	ErrPaymentFailed      = errors.New("payment processing failed")
	ErrTopUpOrderNotFound = errors.New("top up order not found")
)

type (
	TopUpInvoiceRequest struct {
		Amount int64 `json:"amount" validate:"required,min=10000,max=10000000"`
	}

	TopUpInvoiceResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	// MidtransNotification is the subset of the Snap notification payload the
	// webhook cares about.
	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
		SignatureKey      string `json:"signature_key"`
	}
)
