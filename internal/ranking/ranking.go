// Package ranking keeps the score board of one mode. Submissions are
// recorded locally at once and persisted to SQLite in the background so
// the frame loop never waits on storage.
package ranking

import (
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/storage"
)

// DefaultLimit is the size of the board shown to players.
const DefaultLimit = 10

// Board implements core.Ranker over an optional store.
type Board struct {
	store  *storage.Store
	gameID string
	player string
	logger *log.Logger

	mu      sync.Mutex
	best    int
	mine    int // best submission of player in this process
	pending []storage.ScoreEntry // submitted but not confirmed stored
	wg      sync.WaitGroup

	// saveMu orders saves against reads: a saved entry leaves pending before
	// any query can see its row.
	saveMu    sync.Mutex
	afterSave func() // runs between the insert and the confirm
}

// NewBoard creates a board for gameID. A nil store keeps scores in memory.
func NewBoard(store *storage.Store, gameID, player string, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = storage.DefaultPlayer
	}
	b := &Board{store: store, gameID: gameID, player: player, logger: logger}

	if store != nil {
		high, err := store.HighScore(gameID)
		if err != nil {
			logger.Warn("cannot load high score", "game", gameID, "err", err)
		}
		b.best = high
	}
	return b
}

// Submit records a finished session. Persisting happens asynchronously;
// on failure the entry stays on the local list.
func (b *Board) Submit(score int) {
	entry := storage.ScoreEntry{
		GameID:    b.gameID,
		Player:    b.player,
		Score:     score,
		CreatedAt: time.Now(),
	}

	b.mu.Lock()
	b.best = max(b.best, score)
	b.mine = max(b.mine, score)
	b.pending = append(b.pending, entry)
	b.mu.Unlock()

	b.logger.Info("session finished", "game", b.gameID, "player", b.player, "score", score)
	if b.store == nil {
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.saveMu.Lock()
		defer b.saveMu.Unlock()

		if _, err := b.store.SaveScore(entry.GameID, entry.Player, entry.Score); err != nil {
			b.logger.Warn("cannot submit score, keeping it locally", "game", b.gameID, "score", score, "err", err)
			return
		}
		if b.afterSave != nil {
			b.afterSave()
		}
		b.confirm(entry)
	}()
}

func (b *Board) confirm(entry storage.ScoreEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.pending {
		if e == entry {
			b.pending = slices.Delete(b.pending, i, i+1)
			return
		}
	}
}

// Best returns the highest score known to the board.
func (b *Board) Best() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best
}

// Top returns up to n entries, stored and local merged, best first.
func (b *Board) Top(n int) []storage.ScoreEntry {
	if n <= 0 {
		n = DefaultLimit
	}

	b.saveMu.Lock()
	var entries []storage.ScoreEntry
	if b.store != nil {
		stored, err := b.store.TopScores(b.gameID, n)
		if err != nil {
			b.logger.Warn("cannot query scores, showing local list", "game", b.gameID, "err", err)
		}
		entries = append(entries, stored...)
	}

	b.mu.Lock()
	entries = append(entries, b.pending...)
	b.mu.Unlock()
	b.saveMu.Unlock()

	slices.SortStableFunc(entries, func(x, y storage.ScoreEntry) int {
		return y.Score - x.Score
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// PlayerBest returns the best score of the board's player.
func (b *Board) PlayerBest() int {
	b.mu.Lock()
	mine := b.mine
	b.mu.Unlock()

	if b.store == nil {
		return mine
	}
	stored, err := b.store.PlayerBest(b.gameID, b.player)
	if err != nil {
		b.logger.Warn("cannot query player best", "game", b.gameID, "player", b.player, "err", err)
		return mine
	}
	return max(mine, stored)
}

// Summary describes a board for display. The embedded stats cover stored
// sessions only; Unsaved counts the ones still waiting for the store.
type Summary struct {
	storage.GameStats
	PlayerBest int
	Unsaved    int
}

// Summary collects the stats shown next to the board.
func (b *Board) Summary() Summary {
	s := Summary{GameStats: storage.GameStats{GameID: b.gameID}}

	b.saveMu.Lock()
	if b.store != nil {
		stats, err := b.store.GetGameStats(b.gameID)
		if err != nil {
			b.logger.Warn("cannot query stats", "game", b.gameID, "err", err)
		} else {
			s.GameStats = *stats
		}
	}
	b.mu.Lock()
	s.HighScore = max(s.HighScore, b.best)
	s.Unsaved = len(b.pending)
	b.mu.Unlock()
	b.saveMu.Unlock()

	s.PlayerBest = b.PlayerBest()
	return s
}

// Player returns the name scores are recorded under.
func (b *Board) Player() string { return b.player }

// GameID returns the mode this board ranks.
func (b *Board) GameID() string { return b.gameID }

// Wait blocks until every submission in flight has finished.
func (b *Board) Wait() { b.wg.Wait() }
