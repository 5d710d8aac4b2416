package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/game"
)

// GameLimits returns the configured wager bounds.
func (h *Handler) GameLimits(c *gin.Context) {
	limits := h.Casino.Limits()
	c.JSON(http.StatusOK, gin.H{
		"min_bet": limits.MinBet,
		"max_bet": limits.MaxBet,
	})
}

// SlotsInfo returns the paytable, payline count and scatter awards.
func (h *Handler) SlotsInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"paytable":          game.SlotPaytable(),
		"paylines":          len(game.SlotPaylines),
		"scatter_awards":    game.SlotScatterAwards(),
		"length_multiplier": gin.H{"3": 1, "4": 3, "5": 7},
	})
}

// MinesInfo returns the cashout multiplier ladder for a bomb count
// (query param "bombs", default 3).
func (h *Handler) MinesInfo(c *gin.Context) {
	bombs := 3
	if v := c.Query("bombs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < game.MinesMinBombs || n > game.MinesMaxBombs {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bombs must be between 1 and 24"})
			return
		}
		bombs = n
	}
	c.JSON(http.StatusOK, gin.H{
		"field_size":  game.MinesFieldSize,
		"bombs":       bombs,
		"multipliers": game.MinesMultiplierTable(bombs),
	})
}

// DiceInfo returns the multiplier and win chance for a target/condition
// pair (query params "target" and "condition").
func (h *Handler) DiceInfo(c *gin.Context) {
	target, err := strconv.Atoi(c.DefaultQuery("target", "50"))
	if err != nil || target < game.DiceMinTarget || target > game.DiceMaxTarget {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be between 2 and 98"})
		return
	}
	condition := c.DefaultQuery("condition", game.DiceUnder)
	if condition != game.DiceUnder && condition != game.DiceOver {
		c.JSON(http.StatusBadRequest, gin.H{"error": "condition must be under or over"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"target":     target,
		"condition":  condition,
		"win_chance": game.DiceWinChance(target, condition),
		"multiplier": game.DiceMultiplier(target, condition),
	})
}

// RouletteInfo returns the physical wheel order and per-type payouts.
func (h *Handler) RouletteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"wheel": game.RouletteWheel,
		"payouts": gin.H{
			"number": 36,
			"color":  2,
			"parity": 2,
			"half":   2,
			"dozen":  3,
		},
	})
}

// PlinkoInfo returns the bucket multiplier tables per row count and risk.
func (h *Handler) PlinkoInfo(c *gin.Context) {
	tables := gin.H{}
	for _, rows := range game.PlinkoRows {
		byRisk := gin.H{}
		for _, risk := range []string{game.RiskLow, game.RiskMedium, game.RiskHigh} {
			byRisk[risk] = game.PlinkoTable(rows, risk)
		}
		tables[strconv.Itoa(rows)] = byRisk
	}
	c.JSON(http.StatusOK, gin.H{
		"rows":      game.PlinkoRows,
		"max_drops": game.PlinkoMaxDrops,
		"tables":    tables,
	})
}

// CasesInfo returns tier chances and multiplier ranges.
func (h *Handler) CasesInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"reel_size":     game.CaseReelSize,
		"winning_index": game.CaseWinningIndex,
		"max_count":     game.CaseMaxCount,
		"tiers":         game.CaseTierTable(),
	})
}
