package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/kurobe2240/NFT-EC/internal/domain/entity"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
)

// WalletStatus is a point-in-time view of the simulated wallet.
type WalletStatus struct {
	IsConnected  bool    `json:"isConnected"`
	Address      string  `json:"address,omitempty"`
	ShortAddress string  `json:"shortAddress,omitempty"`
	Balance      float64 `json:"balance"`
}

type WalletService interface {
	Status() WalletStatus
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context)
	DeductBalance(ctx context.Context, amount float64) error
	FormatBalance(amount float64) string
}

type walletService struct {
	mu        sync.Mutex
	connected bool
	address   string
	balance   float64

	profiles     []entity.WalletProfile
	rng          *rand.Rand
	connectDelay time.Duration
	notifier     Notifier
	log          logger.Logger
}

// NewWalletService starts disconnected with a zero balance. Wallet state is
// deliberately never persisted; every process start is a fresh wallet.
func NewWalletService(notifier Notifier, log logger.Logger, rng *rand.Rand, connectDelay time.Duration) WalletService {
	if connectDelay <= 0 {
		connectDelay = time.Second
	}
	return &walletService{
		profiles:     entity.TestWalletProfiles(),
		rng:          rng,
		connectDelay: connectDelay,
		notifier:     notifier,
		log:          log,
	}
}

func (s *walletService) Status() WalletStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := WalletStatus{IsConnected: s.connected, Balance: s.balance}
	if s.connected {
		st.Address = s.address
		st.ShortAddress = entity.ShortAddress(s.address)
	}
	return st
}

// Connect simulates wallet connection latency, then adopts one of the fixed
// test profiles chosen uniformly at random. Connecting while already
// connected is an idempotent no-op: the active profile is kept, no re-roll.
func (s *walletService) Connect(ctx context.Context) error {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		s.notifier.Notify(ctx, "ウォレットは既に接続されています", SeverityInfo)
		return nil
	}
	profile := s.profiles[s.rng.Intn(len(s.profiles))]
	s.mu.Unlock()

	select {
	case <-time.After(s.connectDelay):
	case <-ctx.Done():
		s.notifier.Notify(ctx, "ウォレットの接続に失敗しました", SeverityError)
		return fmt.Errorf("wallet connect aborted: %w", ctx.Err())
	}

	s.mu.Lock()
	if s.connected {
		// Lost the race against a concurrent connect; keep the first result.
		s.mu.Unlock()
		return nil
	}
	s.connected = true
	s.address = profile.Address
	s.balance = profile.Balance
	s.mu.Unlock()

	s.log.Infof("Wallet connected: %s (balance %s)", entity.ShortAddress(profile.Address), entity.FormatBalance(profile.Balance))
	s.notifier.Notify(ctx, fmt.Sprintf("%sを接続しました（残高: %s）", profile.Name, entity.FormatBalance(profile.Balance)), SeveritySuccess)
	return nil
}

// Disconnect always succeeds and returns the wallet to the initial state.
func (s *walletService) Disconnect(ctx context.Context) {
	s.mu.Lock()
	s.connected = false
	s.address = ""
	s.balance = 0
	s.mu.Unlock()

	s.log.Info("Wallet disconnected")
	s.notifier.Notify(ctx, "ウォレットを切断しました", SeverityInfo)
}

// DeductBalance atomically reduces the balance when the wallet is connected
// and sufficiently funded. Every rejection leaves the balance untouched,
// is reported through the notifier, and returns the matching sentinel error.
func (s *walletService) DeductBalance(ctx context.Context, amount float64) error {
	if amount < 0 {
		s.log.Warnf("Rejected negative debit amount: %f", amount)
		s.notifier.Notify(ctx, "不正な金額が指定されました", SeverityError)
		return fmt.Errorf("%w: %f", entity.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		s.notifier.Notify(ctx, "ウォレットが接続されていません", SeverityError)
		return entity.ErrWalletDisconnected
	}
	if s.balance < amount {
		required, available := amount, s.balance
		s.mu.Unlock()
		s.notifier.Notify(ctx, fmt.Sprintf("残高が不足しています（必要額: %s、残高: %s）",
			entity.FormatBalance(required), entity.FormatBalance(available)), SeverityError)
		return fmt.Errorf("%w: required %s, available %s",
			entity.ErrInsufficientBalance, entity.FormatBalance(required), entity.FormatBalance(available))
	}
	s.balance -= amount
	newBalance := s.balance
	s.mu.Unlock()

	s.notifier.Notify(ctx, fmt.Sprintf("%sを支払いました（残高: %s）",
		entity.FormatBalance(amount), entity.FormatBalance(newBalance)), SeveritySuccess)
	return nil
}

func (s *walletService) FormatBalance(amount float64) string {
	return entity.FormatBalance(amount)
}
