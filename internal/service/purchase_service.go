package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
)

type PurchaseState string

const (
	PurchaseIdle       PurchaseState = "idle"
	PurchaseConfirming PurchaseState = "confirming"
	PurchaseProcessing PurchaseState = "processing"
	PurchaseSettled    PurchaseState = "settled"
	PurchaseFailed     PurchaseState = "failed"
)

// PurchaseService orchestrates a single checkout attempt over the cart and
// wallet: Idle → Confirming → Processing → Settled | Failed. At most one
// attempt is in flight at a time.
type PurchaseService interface {
	State() PurchaseState
	Begin(ctx context.Context) error
	Confirm(ctx context.Context) (receiptID string, err error)
	Cancel(ctx context.Context)
}

type purchaseService struct {
	mu    sync.Mutex
	state PurchaseState

	cart        CartService
	wallet      WalletService
	notifier    Notifier
	log         logger.Logger
	settleDelay time.Duration
}

func NewPurchaseService(cart CartService, wallet WalletService, notifier Notifier, log logger.Logger, settleDelay time.Duration) PurchaseService {
	if settleDelay <= 0 {
		settleDelay = 2 * time.Second
	}
	return &purchaseService{
		state:       PurchaseIdle,
		cart:        cart,
		wallet:      wallet,
		notifier:    notifier,
		log:         log,
		settleDelay: settleDelay,
	}
}

func (s *purchaseService) State() PurchaseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin opens the confirmation step. It refuses while another attempt is
// confirming or processing, and refuses with a warning when the wallet is
// disconnected or the cart is empty — no confirmation step is opened in
// either case.
func (s *purchaseService) Begin(ctx context.Context) error {
	s.mu.Lock()
	if s.state == PurchaseConfirming || s.state == PurchaseProcessing {
		s.mu.Unlock()
		return entity.ErrPurchaseInFlight
	}
	s.mu.Unlock()

	if !s.wallet.Status().IsConnected {
		s.notifier.Notify(ctx, "購入するにはウォレットを接続してください", SeverityWarning)
		return entity.ErrWalletDisconnected
	}
	if len(s.cart.Items()) == 0 {
		return entity.ErrEmptyCart
	}

	s.mu.Lock()
	s.state = PurchaseConfirming
	s.mu.Unlock()
	return nil
}

// Confirm executes the checkout. A declined debit leaves cart and wallet
// unmodified and keeps the confirmation open for correction. A successful
// debit runs to completion: once processing starts there is no cancellation.
func (s *purchaseService) Confirm(ctx context.Context) (receiptID string, err error) {
	s.mu.Lock()
	if s.state != PurchaseConfirming {
		st := s.state
		s.mu.Unlock()
		if st == PurchaseProcessing {
			return "", entity.ErrPurchaseInFlight
		}
		return "", entity.ErrNoPendingPurchase
	}
	s.state = PurchaseProcessing
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Panic during purchase processing: %v", r)
			s.setState(PurchaseFailed)
			s.notifier.Notify(ctx, "購入処理中にエラーが発生しました", SeverityError)
			receiptID = ""
			err = fmt.Errorf("purchase processing failed: %v", r)
		}
	}()

	total := s.cart.Total()
	if debitErr := s.wallet.DeductBalance(ctx, total); debitErr != nil {
		// The wallet already notified the user. The confirmation step stays
		// open so the user can correct and retry.
		s.setState(PurchaseConfirming)
		return "", fmt.Errorf("%w: %w", entity.ErrDebitDeclined, debitErr)
	}

	// Simulated network/confirmation delay. Deliberately not tied to the
	// caller's context: a started settlement runs to completion.
	time.Sleep(s.settleDelay)

	s.cart.ClearCart(ctx)
	receiptID = uuid.NewString()

	s.setState(PurchaseSettled)
	s.log.Infof("Purchase settled: receipt=%s total=%s", receiptID, entity.FormatBalance(total))
	s.notifier.Notify(ctx, "購入が完了しました！", SeveritySuccess)
	return receiptID, nil
}

// Cancel dismisses an open confirmation step. It has no effect in any other
// state; a processing purchase cannot be cancelled.
func (s *purchaseService) Cancel(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == PurchaseConfirming {
		s.state = PurchaseIdle
	}
}

func (s *purchaseService) setState(st PurchaseState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
