package httpapi

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/mint"
	"github.com/gabapcia/photonscan/internal/pkg/pagination"
	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txsummary"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// MaxPageSize bounds the limit accepted by the transaction list.
const MaxPageSize = 100

func (s *server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// e.GET("/api/chain")
func (s *server) chainInfo(c echo.Context) error {
	info := s.feed.ChainInfo()
	if info.LatestBlockHeight == 0 {
		return fmt.Errorf("%w: no block observed yet", txfeed.ErrChainUnavailable)
	}
	return c.JSON(http.StatusOK, info)
}

type transactionPage struct {
	pagination.Page[txsummary.Summary]
	VisiblePages []int `json:"visible_pages"`
}

// e.GET("/api/txs?page=&limit=")
//
// The page is clamped to the available range, so a stale page number still
// returns the closest page.
func (s *server) listTransactions(c echo.Context) error {
	page, err := intQueryParam(c, "page", 1)
	if err != nil {
		return err
	}

	limit, err := intQueryParam(c, "limit", pagination.DefaultPageSize)
	if err != nil {
		return err
	}
	if limit < 1 || limit > MaxPageSize {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidParameter, MaxPageSize)
	}

	current := s.feed.Page(page, limit)
	if clamped := pagination.ClampPage(page, current.TotalPages); clamped != page {
		current = s.feed.Page(clamped, limit)
	}

	return c.JSON(http.StatusOK, transactionPage{
		Page:         current,
		VisiblePages: pagination.VisiblePages(current.Page, current.TotalPages, pagination.DefaultMaxVisiblePages),
	})
}

// e.GET("/api/txs/:hash")
func (s *server) getTransaction(c echo.Context) error {
	summary, err := s.lookup.Lookup(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// e.GET("/api/mint/rate")
func (s *server) conversionRate(c echo.Context) error {
	rate, err := s.minter.ConversionRate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rate)
}

type quoteResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"`
	Photon decimal.Decimal `json:"photon"`
}

// e.GET("/api/mint/quote?amount=")
func (s *server) quote(c echo.Context) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.QueryParam("amount")))
	if err != nil || amount.IsNegative() {
		return fmt.Errorf("%w: amount must be a non-negative decimal", ErrInvalidParameter)
	}

	rate, err := s.minter.ConversionRate(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quoteResponse{
		Amount: amount,
		Rate:   rate.Rate,
		Photon: mint.Quote(amount, rate.Rate),
	})
}

type prepareRequest struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// e.POST("/api/mint/prepare")
func (s *server) prepareMint(c echo.Context) error {
	var body prepareRequest
	if err := c.Bind(&body); err != nil {
		return err
	}

	req, err := s.minter.Prepare(body.Address, body.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}

type broadcastRequest struct {
	TxBytes string `json:"tx_bytes"`
}

// e.POST("/api/mint/broadcast")
func (s *server) broadcastMint(c echo.Context) error {
	var body broadcastRequest
	if err := c.Bind(&body); err != nil {
		return err
	}

	txBytes, err := base64.StdEncoding.DecodeString(body.TxBytes)
	if err != nil || len(txBytes) == 0 {
		return fmt.Errorf("%w: tx_bytes must be non-empty base64", ErrInvalidParameter)
	}

	result, err := s.minter.Broadcast(c.Request().Context(), txBytes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type balanceResponse struct {
	Address     string           `json:"address"`
	Denom       string           `json:"denom"`
	Amount      decimal.Decimal  `json:"amount"`
	MaxMintable *decimal.Decimal `json:"max_mintable,omitempty"`
}

// e.GET("/api/balances/:address?denom=")
func (s *server) balance(c echo.Context) error {
	address := c.Param("address")
	if err := chain.ValidateAddress(address, chain.AccountPrefix); err != nil {
		return err
	}

	denom := c.QueryParam("denom")
	if denom == "" {
		denom = chain.BaseDenom
	}

	amount, err := s.minter.Balance(c.Request().Context(), address, denom)
	if err != nil {
		return err
	}

	res := balanceResponse{Address: address, Denom: denom, Amount: amount}
	if denom == chain.BaseDenom {
		mintable := mint.MaxMintable(amount)
		res.MaxMintable = &mintable
	}
	return c.JSON(http.StatusOK, res)
}

func (s *server) walletState(c echo.Context) error {
	return c.JSON(http.StatusOK, s.wallet.State())
}

type connectRequest struct {
	Address string `json:"address"`
}

func (s *server) connectWallet(c echo.Context) error {
	var body connectRequest
	if err := c.Bind(&body); err != nil {
		return err
	}

	state, err := s.wallet.Connect(c.Request().Context(), body.Address)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, state)
}

func (s *server) disconnectWallet(c echo.Context) error {
	if err := s.wallet.Disconnect(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.wallet.State())
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParameter, name)
	}
	return v, nil
}
