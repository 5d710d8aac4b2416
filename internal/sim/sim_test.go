package sim

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestGamesList(t *testing.T) {
	games := Games()
	require.Len(t, games, 9)
	require.Contains(t, games, "dice")
	require.Contains(t, games, "slots")
	// sorted
	for i := 1; i < len(games); i++ {
		require.Less(t, games[i-1], games[i])
	}
}

func TestRunUnknownGame(t *testing.T) {
	_, err := Run("poker", 100, 1, 1, nil)
	require.Error(t, err)
}

func TestRunInvalidArgs(t *testing.T) {
	_, err := Run("dice", 0, 1, 1, nil)
	require.Error(t, err)
	_, err = Run("dice", 100, 0, 1, nil)
	require.Error(t, err)
}

func TestRunDiceRTP(t *testing.T) {
	res, err := Run("dice", 200_000, 4, 1, nil)
	require.NoError(t, err)
	require.Equal(t, "dice", res.Game)
	require.Equal(t, 200_000, res.Rounds)
	// designed RTP is 0.99; a run this size stays well within a few percent
	require.InDelta(t, 0.99, res.RTP, 0.03)
	require.Positive(t, res.StdDev)
	require.True(t, res.Wagered.Equal(decimal.NewFromInt(100*200_000)))
}

func TestRunDeterministicForSeed(t *testing.T) {
	a, err := Run("highlow", 10_000, 2, 7, nil)
	require.NoError(t, err)
	b, err := Run("highlow", 10_000, 2, 7, nil)
	require.NoError(t, err)
	require.Equal(t, a.RTP, b.RTP)
	require.True(t, a.Paid.Equal(b.Paid))
}

func TestRunRoundsNotDivisible(t *testing.T) {
	res, err := Run("cases", 10, 3, 1, nil)
	require.NoError(t, err)
	// rounds are truncated to a whole number per worker
	require.Equal(t, 9, res.Rounds)
}
