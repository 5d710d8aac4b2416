package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/game"
	"twitch_casino/internal/http/middleware"
	"twitch_casino/internal/service"
)

// SlotsRequest represents the slot spin request. Bet is ignored while a
// free-spin bonus is running.
type SlotsRequest struct {
	Bet int64 `json:"bet"`
}

// Slots handles one slot spin, paid or free.
func (h *Handler) Slots(c *gin.Context) {
	var req SlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.SpinSlots(c.Request.Context(), playerID(c), req.Bet)
	if err != nil {
		respondErr(c, err)
		return
	}

	bet := req.Bet
	if res.FreeSpin {
		bet = 0
	}
	middleware.ObserveRound("slots", bet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}

// BlackjackDealRequest represents the blackjack deal request.
type BlackjackDealRequest struct {
	Bet int64 `json:"bet" binding:"required,min=1"`
}

// BlackjackDeal starts a blackjack round.
func (h *Handler) BlackjackDeal(c *gin.Context) {
	var req BlackjackDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.DealBlackjack(c.Request.Context(), playerID(c), req.Bet)
	if err != nil {
		respondErr(c, err)
		return
	}
	if view.Status != game.BlackjackPlaying {
		middleware.ObserveRound("blackjack", view.Bet, view.WinAmount)
	}
	c.JSON(http.StatusOK, view)
}

// BlackjackActionRequest represents a blackjack move.
type BlackjackActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// BlackjackAction advances the active blackjack round.
func (h *Handler) BlackjackAction(c *gin.Context) {
	var req BlackjackActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.BlackjackAction(c.Request.Context(), playerID(c), req.Action)
	if err != nil {
		respondErr(c, err)
		return
	}
	if view.Status != game.BlackjackPlaying {
		middleware.ObserveRound("blackjack", view.Bet, view.WinAmount)
	}
	c.JSON(http.StatusOK, view)
}

// BlackjackState returns the active blackjack round.
func (h *Handler) BlackjackState(c *gin.Context) {
	view, err := h.Casino.BlackjackState(c.Request.Context(), playerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active round"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// MinesStartRequest represents the mines start request.
type MinesStartRequest struct {
	Bet       int64 `json:"bet" binding:"required,min=1"`
	BombCount int   `json:"bomb_count" binding:"required,min=1,max=24"`
}

// MinesStart opens a mines round.
func (h *Handler) MinesStart(c *gin.Context) {
	var req MinesStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.StartMines(c.Request.Context(), playerID(c), req.Bet, req.BombCount)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MinesRevealRequest represents a cell reveal.
type MinesRevealRequest struct {
	Cell *int `json:"cell" binding:"required"`
}

// MinesReveal uncovers one cell of the active mines round.
func (h *Handler) MinesReveal(c *gin.Context) {
	var req MinesRevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.RevealMines(c.Request.Context(), playerID(c), *req.Cell)
	if err != nil {
		respondErr(c, err)
		return
	}
	if view.Status != service.MinesActive {
		middleware.ObserveRound("mines", view.Bet, view.WinAmount)
	}
	c.JSON(http.StatusOK, view)
}

// MinesCashout settles the active mines round.
func (h *Handler) MinesCashout(c *gin.Context) {
	view, err := h.Casino.CashoutMines(c.Request.Context(), playerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("mines", view.Bet, view.WinAmount)
	c.JSON(http.StatusOK, view)
}

// MinesState returns the active mines round.
func (h *Handler) MinesState(c *gin.Context) {
	view, err := h.Casino.MinesState(c.Request.Context(), playerID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active round"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GuessStartRequest represents the guess-the-number start request.
type GuessStartRequest struct {
	Bet int64 `json:"bet" binding:"required,min=1"`
}

// GuessStart opens a guess-the-number round.
func (h *Handler) GuessStart(c *gin.Context) {
	var req GuessStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.StartGuess(c.Request.Context(), playerID(c), req.Bet)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GuessRequest represents one guess.
type GuessRequest struct {
	Number int `json:"number" binding:"required,min=1,max=100"`
}

// Guess consumes one try of the active guess round.
func (h *Handler) Guess(c *gin.Context) {
	var req GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	view, err := h.Casino.Guess(c.Request.Context(), playerID(c), req.Number)
	if err != nil {
		respondErr(c, err)
		return
	}
	if view.Status != service.GuessPlaying {
		middleware.ObserveRound("guess", view.Bet, view.WinAmount)
	}
	c.JSON(http.StatusOK, view)
}

// DiceRequest represents the dice roll request.
type DiceRequest struct {
	Bet       int64  `json:"bet" binding:"required,min=1"`
	Target    int    `json:"target" binding:"required,min=2,max=98"`
	Condition string `json:"condition" binding:"required"`
}

// Dice handles the dice game endpoint.
func (h *Handler) Dice(c *gin.Context) {
	var req DiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.RollDice(c.Request.Context(), playerID(c), req.Bet, req.Target, req.Condition)
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("dice", req.Bet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}

// HighLowRequest represents the high-low request.
type HighLowRequest struct {
	Bet   int64  `json:"bet" binding:"required,min=1"`
	Guess string `json:"guess" binding:"required"`
}

// HighLow handles the high-low game endpoint.
func (h *Handler) HighLow(c *gin.Context) {
	var req HighLowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.PlayHighLow(c.Request.Context(), playerID(c), req.Bet, req.Guess)
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("highlow", req.Bet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}

// RouletteRequest represents the roulette request, a list of bets resolved
// against one spin.
type RouletteRequest struct {
	Bets []game.RouletteBet `json:"bets" binding:"required"`
}

// Roulette handles the roulette endpoint.
func (h *Handler) Roulette(c *gin.Context) {
	var req RouletteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.SpinRoulette(c.Request.Context(), playerID(c), req.Bets)
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("roulette", res.TotalBet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}

// PlinkoRequest represents the plinko request.
type PlinkoRequest struct {
	Bet   int64  `json:"bet" binding:"required,min=1"`
	Rows  int    `json:"rows" binding:"required"`
	Risk  string `json:"risk" binding:"required"`
	Drops int    `json:"drops" binding:"required,min=1,max=1000"`
}

// Plinko handles the plinko endpoint.
func (h *Handler) Plinko(c *gin.Context) {
	var req PlinkoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.DropPlinko(c.Request.Context(), playerID(c), req.Bet, req.Rows, req.Risk, req.Drops)
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("plinko", res.TotalBet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}

// CasesRequest represents the case-opening request.
type CasesRequest struct {
	Bet   int64 `json:"bet" binding:"required,min=1"`
	Count int   `json:"count" binding:"required,min=1,max=3"`
}

// Cases handles the case-opening endpoint.
func (h *Handler) Cases(c *gin.Context) {
	var req CasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Casino.OpenCases(c.Request.Context(), playerID(c), req.Bet, req.Count)
	if err != nil {
		respondErr(c, err)
		return
	}
	middleware.ObserveRound("cases", res.TotalBet, res.WinAmount)
	c.JSON(http.StatusOK, res)
}
