// Package mint prepares, quotes and broadcasts MsgMintPhoton transactions.
package mint

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/logger"
	"github.com/gabapcia/photonscan/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

const (
	DefaultFeeAmount = "10000"
	DefaultGas       = 250000
	DefaultMemo      = "Mint Photon with KewrMint"

	// PhotonMaxSupply is the PHOTON supply cap in display units.
	PhotonMaxSupply = 1_000_000_000

	// FeeReserve is kept out of the mintable balance to pay the fee.
	FeeReserve = "0.01"
)

var (
	ErrSequenceMismatch  = errors.New("account sequence mismatch")
	ErrInsufficientFunds = errors.New("insufficient funds for fee or mint amount")
	ErrZeroSupply        = errors.New("base denom supply is zero")
)

var microDivisor = decimal.New(1, chain.CoinDecimals)

// Bank is the chain REST surface used for minting.
type Bank interface {
	SupplyOf(ctx context.Context, denom string) (chain.Coin, error)
	Balance(ctx context.Context, address, denom string) (chain.Coin, error)
	Broadcast(ctx context.Context, txBytes []byte) (chain.BroadcastResult, error)
}

// Signer turns a prepared Request into signed TxRaw bytes.
type Signer interface {
	SignMint(ctx context.Context, req Request) ([]byte, error)
}

// Rate is the PHOTON received per ATONE burned, with the supplies it was
// computed from. All values are in display units.
type Rate struct {
	AtoneSupply  decimal.Decimal `json:"atone_supply"`
	PhotonSupply decimal.Decimal `json:"photon_supply"`
	Rate         decimal.Decimal `json:"rate"`
}

// Request is a mint ready to be signed.
type Request struct {
	Msg  MsgMintPhoton `json:"msg"`
	Fee  []chain.Coin  `json:"fee"`
	Gas  uint64        `json:"gas"`
	Memo string        `json:"memo"`
}

// Result is the outcome of a broadcast accepted by the node. A rejected
// transaction has Success false and the node's RawLog.
type Result struct {
	Success bool   `json:"success"`
	TxHash  string `json:"tx_hash"`
	Code    uint32 `json:"code"`
	RawLog  string `json:"raw_log,omitempty"`
}

type Service interface {
	ConversionRate(ctx context.Context) (Rate, error)
	Balance(ctx context.Context, address, denom string) (decimal.Decimal, error)
	Prepare(address, amount string) (Request, error)
	Broadcast(ctx context.Context, txBytes []byte) (Result, error)
	Submit(ctx context.Context, signer Signer, req Request) (Result, error)
}

type service struct {
	bank Bank
	fee  chain.Coin
	gas  uint64
	memo string
}

var _ Service = (*service)(nil)

// ToDisplay converts a micro unit amount into display units.
func ToDisplay(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d.Div(microDivisor), nil
}

// ToMicro converts a display amount into micro units, rounding down.
func ToMicro(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(microDivisor).Floor()
}

// Quote returns the PHOTON minted for amount ATONE at rate, rounded down to
// six decimals.
func Quote(amount, rate decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(rate).Truncate(chain.CoinDecimals)
}

// MaxMintable returns the display balance minus FeeReserve, never negative.
func MaxMintable(balance decimal.Decimal) decimal.Decimal {
	mintable := balance.Sub(decimal.RequireFromString(FeeReserve)).Truncate(chain.CoinDecimals)
	if mintable.IsNegative() {
		return decimal.Zero
	}
	return mintable
}

// ConversionRate computes (max PHOTON supply - PHOTON supply) / ATONE supply.
func (s *service) ConversionRate(ctx context.Context) (Rate, error) {
	atone, err := s.supply(ctx, chain.BaseDenom)
	if err != nil {
		return Rate{}, err
	}

	photon, err := s.supply(ctx, chain.MintDenom)
	if err != nil {
		return Rate{}, err
	}

	if !atone.IsPositive() {
		return Rate{}, ErrZeroSupply
	}

	remaining := decimal.NewFromInt(PhotonMaxSupply).Sub(photon)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Rate{
		AtoneSupply:  atone,
		PhotonSupply: photon,
		Rate:         remaining.DivRound(atone, 18),
	}, nil
}

func (s *service) supply(ctx context.Context, denom string) (decimal.Decimal, error) {
	coin, err := s.bank.SupplyOf(ctx, denom)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch %s supply: %w", denom, err)
	}
	return ToDisplay(coin.Amount)
}

// Balance returns the display balance of address in denom.
func (s *service) Balance(ctx context.Context, address, denom string) (decimal.Decimal, error) {
	if denom == "" {
		denom = chain.BaseDenom
	}

	coin, err := s.bank.Balance(ctx, address, denom)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return ToDisplay(coin.Amount)
}

type prepareInput struct {
	Address string `validate:"required,bech32=atone"`
	Amount  string `validate:"required,positive_decimal"`
}

// Prepare validates the mint inputs and builds the Request. amount is in
// display units.
func (s *service) Prepare(address, amount string) (Request, error) {
	in := prepareInput{
		Address: strings.TrimSpace(address),
		Amount:  strings.TrimSpace(amount),
	}
	if err := validator.Validate(in); err != nil {
		return Request{}, err
	}

	micro := ToMicro(decimal.RequireFromString(in.Amount))
	if !micro.IsPositive() {
		return Request{}, errors.Join(validator.ErrValidationFailed,
			fmt.Errorf("'Amount': value '%s' is below the smallest unit", in.Amount))
	}

	return Request{
		Msg: MsgMintPhoton{
			ToAddress: in.Address,
			Amount:    chain.Coin{Amount: micro.String(), Denom: chain.BaseDenom},
		},
		Fee:  []chain.Coin{s.fee},
		Gas:  s.gas,
		Memo: s.memo,
	}, nil
}

// Broadcast submits signed transaction bytes in sync mode.
func (s *service) Broadcast(ctx context.Context, txBytes []byte) (Result, error) {
	res, err := s.bank.Broadcast(ctx, txBytes)
	if err != nil {
		return Result{}, ClassifyError(err)
	}

	ctx = logger.Derive(ctx, "tx.hash", res.TxHash)
	if res.Code != 0 {
		logger.Warn(ctx, "mint rejected", "tx.code", res.Code, "tx.codespace", res.Codespace, "tx.raw_log", res.RawLog)
		return Result{Success: false, TxHash: res.TxHash, Code: res.Code, RawLog: res.RawLog}, nil
	}

	logger.Info(ctx, "mint broadcast")
	return Result{Success: true, TxHash: res.TxHash}, nil
}

// Submit signs req with signer and broadcasts it.
func (s *service) Submit(ctx context.Context, signer Signer, req Request) (Result, error) {
	txBytes, err := signer.SignMint(ctx, req)
	if err != nil {
		return Result{}, ClassifyError(fmt.Errorf("failed to sign mint: %w", err))
	}
	return s.Broadcast(ctx, txBytes)
}

// ClassifyError maps wallet and node error messages to ErrSequenceMismatch or
// ErrInsufficientFunds. Other errors are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "account sequence mismatch"):
		return fmt.Errorf("%w: %w", ErrSequenceMismatch, err)
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
	default:
		return err
	}
}

type config struct {
	fee  chain.Coin
	gas  uint64
	memo string
}

type Option func(*config)

func New(bank Bank, opts ...Option) *service {
	cfg := config{
		fee:  chain.Coin{Amount: DefaultFeeAmount, Denom: chain.BaseDenom},
		gas:  DefaultGas,
		memo: DefaultMemo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		bank: bank,
		fee:  cfg.fee,
		gas:  cfg.gas,
		memo: cfg.memo,
	}
}

func WithFee(fee chain.Coin) Option {
	return func(c *config) {
		c.fee = fee
	}
}

func WithGas(gas uint64) Option {
	return func(c *config) {
		c.gas = gas
	}
}

func WithMemo(memo string) Option {
	return func(c *config) {
		c.memo = memo
	}
}
