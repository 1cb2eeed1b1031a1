package ranking

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/storage"
)

// Boards hands out one Board per mode for a single player. Boards of the
// same player share the store.
type Boards struct {
	store  *storage.Store
	player string
	logger *log.Logger

	mu     sync.Mutex
	boards map[string]*Board
}

// NewBoards creates an empty set. A nil store keeps scores in memory.
func NewBoards(store *storage.Store, player string, logger *log.Logger) *Boards {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = storage.DefaultPlayer
	}
	return &Boards{
		store:  store,
		player: player,
		logger: logger,
		boards: make(map[string]*Board),
	}
}

// For returns the board of gameID, creating it on first use.
func (b *Boards) For(gameID string) *Board {
	b.mu.Lock()
	defer b.mu.Unlock()

	if board, ok := b.boards[gameID]; ok {
		return board
	}
	board := NewBoard(b.store, gameID, b.player, b.logger)
	b.boards[gameID] = board
	return board
}

// Wait blocks until every board has finished its submissions.
func (b *Boards) Wait() {
	b.mu.Lock()
	boards := make([]*Board, 0, len(b.boards))
	for _, board := range b.boards {
		boards = append(boards, board)
	}
	b.mu.Unlock()

	for _, board := range boards {
		board.Wait()
	}
}

// Top returns the board of gameID, best first.
func (b *Boards) Top(gameID string, n int) []storage.ScoreEntry {
	return b.For(gameID).Top(n)
}

// Best returns the best score known for gameID.
func (b *Boards) Best(gameID string) int {
	return b.For(gameID).Best()
}

// PlayerBest returns the player's best score for gameID.
func (b *Boards) PlayerBest(gameID string) int {
	return b.For(gameID).PlayerBest()
}

// Summary returns the stats of gameID's board.
func (b *Boards) Summary(gameID string) Summary {
	return b.For(gameID).Summary()
}

// Player returns the name scores are recorded under.
func (b *Boards) Player() string { return b.player }
