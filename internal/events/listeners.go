package events

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

// Sound plays the audio cue of every event.
func Sound(p audio.Player) Listener {
	return ListenerFunc(func(ev core.Event) {
		p.Play(ev.Kind)
	})
}

// Log writes the round lifecycle at info level and individual taps and
// spawns at debug level.
func Log(logger *log.Logger, gameID string) Listener {
	return ListenerFunc(func(ev core.Event) {
		switch ev.Kind {
		case core.EventRoundStart:
			logger.Info("round started", "game", gameID)
		case core.EventRoundEnd:
			logger.Info("round ended", "game", gameID, "reason", ev.Detail,
				"points", ev.Points, "elapsed", ev.At)
		case core.EventInputRejected:
			logger.Warn("input rejected", "tile", ev.Tile, "error", ev.Detail)
		default:
			logger.Debug(ev.Kind.String(), "tile", ev.Tile, "points", ev.Points, "at", ev.At)
		}
	})
}

// Recorder tallies a round from its events and saves it to the session
// store when the round ends.
type Recorder struct {
	store  *storage.Store
	gameID string
	logger *log.Logger

	current storage.RoundRecord
	last    storage.RoundRecord
	saved   int
}

// NewRecorder creates a recorder for one game mode. A nil logger discards
// save errors.
func NewRecorder(store *storage.Store, gameID string, logger *log.Logger) *Recorder {
	return &Recorder{store: store, gameID: gameID, logger: logger}
}

// OnEvent updates the tally.
func (r *Recorder) OnEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventRoundStart:
		r.current = storage.RoundRecord{GameID: r.gameID}
	case core.EventHit:
		r.current.Hits++
	case core.EventMiss:
		r.current.Misses++
	case core.EventEscape:
		r.current.Escapes++
	case core.EventRoundEnd:
		r.current.GameID = r.gameID
		r.current.Points = ev.Points
		r.current.Reason = ev.Detail
		r.current.Duration = ev.At
		r.save()
	}
}

func (r *Recorder) save() {
	rec := r.current
	r.current = storage.RoundRecord{GameID: r.gameID}
	if r.store == nil {
		return
	}

	id, err := r.store.SaveRound(rec)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("could not record round", "error", err)
		}
		return
	}
	rec.ID = id
	r.last = rec
	r.saved++
}

// Last returns the most recently saved round.
func (r *Recorder) Last() (storage.RoundRecord, bool) {
	return r.last, r.saved > 0
}

// Saved returns how many rounds were recorded.
func (r *Recorder) Saved() int {
	return r.saved
}
