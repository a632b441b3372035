package wallet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	return Settings{
		StartingBalance: 10,
		TicketCost:      1,
		LinePrize:       5,
		BingoPrize:      20,
	}
}

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet.json")
	return NewManager(NewStore(path), testSettings()), path
}

func TestMissingFileStartsAtStartingBalance(t *testing.T) {
	m, path := newTestManager(t)
	assert.Equal(t, 10, m.Balance())

	// first read does not create the file, only mutations persist
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBalancePersistsAcrossManagers(t *testing.T) {
	m, path := newTestManager(t)
	_, err := m.Deposit(7)
	require.NoError(t, err)

	reloaded := NewManager(NewStore(path), Settings{StartingBalance: 1, TicketCost: 1})
	assert.Equal(t, 17, reloaded.Balance(), "persisted balance wins over starting balance")
}

func TestCorruptFileResetsToStartingBalance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	m := NewManager(NewStore(path), testSettings())
	assert.Equal(t, 10, m.Balance())
}

func TestAdjustClampsAtZero(t *testing.T) {
	m, _ := newTestManager(t)
	balance, err := m.Adjust(-1000)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
	assert.Equal(t, 0, m.Balance())
}

func TestSpendForTickets(t *testing.T) {
	m, _ := newTestManager(t)

	balance, err := m.SpendForTickets(3)
	require.NoError(t, err)
	assert.Equal(t, 7, balance)

	// quantities below one cost one ticket
	balance, err = m.SpendForTickets(0)
	require.NoError(t, err)
	assert.Equal(t, 6, balance)

	_, err = m.SpendForTickets(100)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 6, m.Balance(), "failed spend must not touch the balance")
}

func TestCanAfford(t *testing.T) {
	m, _ := newTestManager(t)
	assert.True(t, m.CanAfford(10))
	assert.False(t, m.CanAfford(11))
}

func TestPrizes(t *testing.T) {
	m, _ := newTestManager(t)

	balance, err := m.AwardLine()
	require.NoError(t, err)
	assert.Equal(t, 15, balance)

	balance, err = m.AwardBingo()
	require.NoError(t, err)
	assert.Equal(t, 35, balance)
}

func TestDepositValidation(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Deposit(0)
	assert.Error(t, err)
	_, err = m.Deposit(-5)
	assert.Error(t, err)
	assert.Equal(t, 10, m.Balance())
}

func TestWithdrawValidation(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Withdraw(0)
	assert.Error(t, err)

	_, err = m.Withdraw(11)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	balance, err := m.Withdraw(4)
	require.NoError(t, err)
	assert.Equal(t, 6, balance)
}

func TestReset(t *testing.T) {
	m, path := newTestManager(t)
	_, err := m.Deposit(50)
	require.NoError(t, err)

	balance, err := m.Reset()
	require.NoError(t, err)
	assert.Equal(t, 10, balance)

	reloaded := NewManager(NewStore(path), testSettings())
	assert.Equal(t, 10, reloaded.Balance())
}

func TestStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "wallet.json")
	s := NewStore(path)
	require.NoError(t, s.Write(42))

	balance, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, 42, balance)
}
