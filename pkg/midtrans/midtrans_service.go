package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sync"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/internal/utils"
	"digital-kuota-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	MidtransService interface {
		CreateTopUpInvoice(ctx context.Context, userID string, req domain.TopUpInvoiceRequest) (*domain.TopUpInvoiceResponse, error)
		HandleNotification(ctx context.Context, notif domain.MidtransNotification) error
	}

	topUpOrder struct {
		UserID string
		Amount int64
	}

	midtransService struct {
		snapClient  snap.Client
		userService user.UserService
		serverKey   string

		mu     sync.Mutex
		orders map[string]topUpOrder
	}
)

func NewMidtransService(userService user.UserService) MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	return &midtransService{
		snapClient:  s,
		userService: userService,
		serverKey:   serverKey,
		orders:      map[string]topUpOrder{},
	}
}

// CreateTopUpInvoice opens a Snap transaction for the amount and remembers the
// order so the settlement webhook can credit the right user. Pending orders
// live in memory only; a restart before settlement drops them.
func (s *midtransService) CreateTopUpInvoice(ctx context.Context, userID string, req domain.TopUpInvoiceRequest) (*domain.TopUpInvoiceResponse, error) {
	orderID := fmt.Sprintf("topup-%s", uuid.New().String())

	resp, err := s.snapClient.CreateTransaction(&snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
	})
	if err != nil {
		return nil, domain.ErrPaymentFailed
	}

	s.mu.Lock()
	s.orders[orderID] = topUpOrder{UserID: userID, Amount: req.Amount}
	s.mu.Unlock()

	return &domain.TopUpInvoiceResponse{
		OrderID:    orderID,
		InvoiceURL: resp.RedirectURL,
	}, nil
}

// HandleNotification applies a settled top-up through the same top-up
// operation the direct endpoint uses. Non-final statuses are ignored; failed
// ones just drop the pending order.
func (s *midtransService) HandleNotification(ctx context.Context, notif domain.MidtransNotification) error {
	if !s.validSignature(notif) {
		return domain.ErrPaymentFailed
	}

	s.mu.Lock()
	order, ok := s.orders[notif.OrderID]
	s.mu.Unlock()
	if !ok {
		return domain.ErrTopUpOrderNotFound
	}

	switch notif.TransactionStatus {
	case "settlement":
		// paid
	case "capture":
		if notif.FraudStatus != "accept" {
			return nil
		}
	case "deny", "cancel", "expire":
		s.forgetOrder(notif.OrderID)
		return nil
	default:
		// pending and friends: wait for the next notification
		return nil
	}

	if _, err := s.userService.TopUpUser(ctx, order.UserID, order.Amount); err != nil {
		return err
	}
	s.forgetOrder(notif.OrderID)
	return nil
}

func (s *midtransService) forgetOrder(orderID string) {
	s.mu.Lock()
	delete(s.orders, orderID)
	s.mu.Unlock()
}

// validSignature checks SHA512(order_id + status_code + gross_amount + server key).
func (s *midtransService) validSignature(notif domain.MidtransNotification) bool {
	payload := notif.OrderID + notif.StatusCode + notif.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == notif.SignatureKey
}
