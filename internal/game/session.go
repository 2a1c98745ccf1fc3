package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shishloto/shish-loto/internal/model"
)

// NoTile marks the absence of a tile in Change fields and OpenTile.
const NoTile = -1

// ErrTileOutOfRange reports a tile index outside 0..NumTiles-1. Receiving it
// means the caller is broken; it is not a recoverable game condition.
var ErrTileOutOfRange = errors.New("tile index out of range")

// Change describes the effects of a single transition so the presentation
// layer can re-render exactly what moved.
type Change struct {
	// Tiles lists indices whose marked state flipped.
	Tiles []int

	// OpenDetail is the tile whose track detail view should open,
	// replacing any currently open one. NoTile when nothing opens.
	OpenDetail int

	// CloseDetail requests closing the currently open detail view.
	CloseDetail bool

	// TimerChanged is set when the running flag or elapsed value moved.
	TimerChanged bool
}

// Session is the whole mutable state of one game round. It is created fresh
// at application start and never persisted. All methods must be called from
// a single goroutine (the UI event loop).
type Session struct {
	id       string
	elapsed  int
	running  bool
	marked   [model.NumTiles]bool
	undo     []int
	openTile int
}

// NewSession creates an idle session with no marks and a zeroed timer.
func NewSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		openTile: NoTile,
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// ToggleTimer flips between Idle and Running. The elapsed value is untouched:
// pause/resume semantics, not reset.
func (s *Session) ToggleTimer() Change {
	s.running = !s.running
	return Change{OpenDetail: NoTile, TimerChanged: true}
}

// Tick advances the timer by one second. Ticks arriving while idle are
// dropped, so a scheduler that keeps firing during pause does no harm.
func (s *Session) Tick() Change {
	if !s.running {
		return Change{OpenDetail: NoTile}
	}
	s.elapsed++
	return Change{OpenDetail: NoTile, TimerChanged: true}
}

// MarkTile marks the tile at index, pushes it onto the undo history and
// requests its detail view. Re-marking an already marked tile is a strict
// no-op: no duplicate undo entry, no detail reopen. That keeps the invariant
// that every undo entry flips exactly one tile back.
func (s *Session) MarkTile(index int) (Change, error) {
	if index < 0 || index >= model.NumTiles {
		return Change{OpenDetail: NoTile}, fmt.Errorf("%w: %d", ErrTileOutOfRange, index)
	}
	if s.marked[index] {
		return Change{OpenDetail: NoTile}, nil
	}

	s.marked[index] = true
	s.undo = append(s.undo, index)
	s.openTile = index

	return Change{
		Tiles:      []int{index},
		OpenDetail: index,
	}, nil
}

// Undo reverts the most recent mark, unmarking exactly that tile. The open
// detail view is closed even when the history is empty.
func (s *Session) Undo() Change {
	change := Change{OpenDetail: NoTile, CloseDetail: true}
	s.openTile = NoTile

	if len(s.undo) == 0 {
		return change
	}

	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.marked[last] = false
	change.Tiles = []int{last}
	return change
}

// Reset hard-resets the session: all tiles unmarked, history cleared, timer
// stopped and zeroed, detail view closed. Not reversible by Undo.
func (s *Session) Reset() Change {
	change := Change{OpenDetail: NoTile, CloseDetail: true, TimerChanged: true}
	for i := range s.marked {
		if s.marked[i] {
			change.Tiles = append(change.Tiles, i)
			s.marked[i] = false
		}
	}
	s.undo = nil
	s.running = false
	s.elapsed = 0
	s.openTile = NoTile
	return change
}

// CloseDetail records that the detail view was dismissed without changing
// any tile state (e.g. the host clicked the popup's close button).
func (s *Session) CloseDetail() {
	s.openTile = NoTile
}

// Elapsed returns the accumulated session time in seconds.
func (s *Session) Elapsed() int {
	return s.elapsed
}

// Running reports whether the timer is active.
func (s *Session) Running() bool {
	return s.running
}

// Marked reports the marked state of the tile at index. Out-of-range indices
// read as unmarked.
func (s *Session) Marked(index int) bool {
	if index < 0 || index >= model.NumTiles {
		return false
	}
	return s.marked[index]
}

// MarkedCount returns how many tiles are currently marked.
func (s *Session) MarkedCount() int {
	count := 0
	for _, m := range s.marked {
		if m {
			count++
		}
	}
	return count
}

// UndoDepth returns the number of reversible marks.
func (s *Session) UndoDepth() int {
	return len(s.undo)
}

// OpenTile returns the tile whose detail view is open, or NoTile.
func (s *Session) OpenTile() int {
	return s.openTile
}

// FormatElapsed renders the elapsed time as mm:ss, growing to hh:mm:ss once
// the session passes an hour.
func (s *Session) FormatElapsed() string {
	hours := s.elapsed / 3600
	minutes := (s.elapsed % 3600) / 60
	seconds := s.elapsed % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
