package window

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/events"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/logging"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var (
	colorBackground = color.RGBA{0x4e, 0x8b, 0x3a, 0xff}
	colorHUD        = color.RGBA{0x24, 0x3b, 0x1c, 0xff}
	colorDirt       = color.RGBA{0x6b, 0x4a, 0x2b, 0xff}
	colorHole       = color.RGBA{0x1e, 0x12, 0x0a, 0xff}
	colorMole       = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	colorNose       = color.RGBA{0xe8, 0x8a, 0x9a, 0xff}
	colorCursor     = color.RGBA{0xff, 0xe0, 0x40, 0xff}
	colorHit        = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorMiss       = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	colorBarFull    = color.RGBA{0x6c, 0xd0, 0x5a, 0xff}
	colorBarLow     = color.RGBA{0xe0, 0x50, 0x40, 0xff}
	colorBarEmpty   = color.RGBA{0x15, 0x24, 0x10, 0xff}
	colorShade      = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	colorText       = color.White
	colorDim        = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

// Options wires the collaborators of a window session.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sound  bool // Play synthesized cues
}

// App runs a Whack game in an Ebitengine window. It implements ebiten.Game.
type App struct {
	game       *whack.Game
	cfg        core.RuntimeConfig
	queue      *core.InputQueue
	dispatcher *events.Dispatcher
	synth      *Synth
	logger     *log.Logger
	rects      []core.Rect

	face  font.Face
	large font.Face
}

// New creates the window app and resets the game.
func New(game *whack.Game, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.New(nil, log.InfoLevel, "")
	}

	a := &App{
		game:       game,
		cfg:        cfg,
		queue:      core.NewInputQueue(core.DefaultQueueSize),
		dispatcher: events.NewDispatcher(),
		logger:     logger,
	}
	a.face, a.large = loadFaces(logger)

	if opts.Sound {
		a.synth = NewSynth()
		a.dispatcher.SubscribeAll(events.Sound(a.synth))
	}
	a.dispatcher.SubscribeAll(events.Log(logger, game.ID()))
	if opts.Store != nil {
		a.dispatcher.Subscribe(events.NewRecorder(opts.Store, game.ID(), logger),
			core.EventRoundStart, core.EventHit, core.EventMiss, core.EventEscape, core.EventRoundEnd)
	}

	game.Reset(cfg)
	snap := game.Snapshot()
	a.rects = tileLayout(len(snap.Tiles), snap.Columns)
	return a
}

// loadFaces builds the HUD fonts, falling back to the built-in bitmap face.
func loadFaces(logger *log.Logger) (font.Face, font.Face) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		logger.Warn("could not parse font, using bitmap face", "error", err)
		return basicfont.Face7x13, basicfont.Face7x13
	}

	newFace := func(size float64) font.Face {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			logger.Warn("could not create font face", "size", size, "error", err)
			return basicfont.Face7x13
		}
		return face
	}
	return newFace(20), newFace(34)
}

// Update polls input and advances the game by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.synth != nil {
		a.synth.SetMuted(!a.synth.muted)
	}

	pollInput(a.queue, a.rects)
	result := a.game.Step(a.queue.Drain())
	a.dispatcher.DispatchAll(result.Events)
	return nil
}

// Close cancels a round still in progress so the listeners record it.
func (a *App) Close() {
	a.dispatcher.DispatchAll(a.game.Cancel())
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	a.rects = tileLayout(len(snap.Tiles), snap.Columns)

	screen.Fill(colorBackground)
	a.drawHUD(screen, snap)
	for i, r := range a.rects {
		a.drawTile(screen, snap, i, r)
	}

	switch {
	case snap.Phase == whack.PhaseNotStarted:
		a.drawOverlay(screen, a.game.Title(), "Click a hole or press Space to start")
	case snap.Phase == whack.PhaseEnded:
		headline := "Time's up!"
		switch snap.Reason {
		case whack.EndBoardFull:
			headline = "Overrun!"
		case whack.EndCancelled:
			headline = "Round cancelled"
		}
		a.drawOverlay(screen, headline, fmt.Sprintf("Final score %d  -  press R to play again", snap.Score.Points))
	case snap.Paused:
		a.drawOverlay(screen, "Paused", "Press P to continue")
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap whack.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, hudHeight, colorHUD, false)

	secs := int(math.Ceil(snap.Remaining.Seconds()))
	left := fmt.Sprintf("Points %d   Hits %d   Misses %d", snap.Score.Points, snap.Score.Hits, snap.Score.Misses)
	text.Draw(screen, left, a.face, boardMargin, 34, colorText)

	right := fmt.Sprintf("%ds", secs)
	w := font.MeasureString(a.face, right).Ceil()
	text.Draw(screen, right, a.face, ScreenWidth-boardMargin-w, 34, colorText)

	if snap.Pending > 0 {
		text.Draw(screen, fmt.Sprintf("+%d incoming!", snap.Pending), a.face, boardMargin, 62, colorMiss)
	} else if snap.Score.Escapes > 0 {
		text.Draw(screen, fmt.Sprintf("Escaped %d", snap.Score.Escapes), a.face, boardMargin, 62, colorDim)
	}

	// Timer bar
	barX, barY := float32(boardMargin), float32(hudHeight-18)
	barW, barH := float32(ScreenWidth-2*boardMargin), float32(8)
	fill := colorBarFull
	if snap.Fraction < 0.2 {
		fill = colorBarLow
	}
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorBarEmpty, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(snap.Fraction), barH, fill, false)
}

func (a *App) drawTile(screen *ebiten.Image, snap whack.Snapshot, i int, r core.Rect) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(screen, x, y, w, h, colorDirt, true)

	cx, cy := x+w/2, y+h/2
	radius := min(w, h) * 0.36

	// Hole
	vector.DrawFilledCircle(screen, cx, cy+radius*0.35, radius, colorHole, true)

	if snap.Tiles[i].Occupied {
		// Mole peeking out of the hole
		vector.DrawFilledCircle(screen, cx, cy, radius*0.8, colorMole, true)
		eye := radius * 0.12
		vector.DrawFilledCircle(screen, cx-radius*0.3, cy-radius*0.2, eye, color.Black, true)
		vector.DrawFilledCircle(screen, cx+radius*0.3, cy-radius*0.2, eye, color.Black, true)
		vector.DrawFilledCircle(screen, cx, cy+radius*0.1, eye*1.4, colorNose, true)
	}

	if outcome, ok := snap.Marks[i]; ok {
		if outcome == whack.OutcomeHit {
			a.drawCentered(screen, "WHACK!", a.large, int(cx), int(cy), colorHit)
		} else {
			d := radius * 0.5
			vector.StrokeLine(screen, cx-d, cy-d, cx+d, cy+d, 6, colorMiss, true)
			vector.StrokeLine(screen, cx-d, cy+d, cx+d, cy-d, 6, colorMiss, true)
		}
	}

	if i < 9 {
		text.Draw(screen, fmt.Sprint(i+1), a.face, r.X+8, r.Y+22, colorDim)
	}

	if i == snap.Cursor && snap.Phase == whack.PhaseRunning {
		vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 4, colorCursor, true)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, line1, line2 string) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, colorShade, false)
	a.drawCentered(screen, line1, a.large, ScreenWidth/2, ScreenHeight/2-24, colorText)
	a.drawCentered(screen, line2, a.face, ScreenWidth/2, ScreenHeight/2+24, colorDim)
}

// drawCentered draws s with its center at (cx, cy).
func (a *App) drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b, _ := font.BoundString(face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	text.Draw(screen, s, face, cx-w/2, cy+h/2, clr)
}

// Run opens the window and blocks until it is closed.
func Run(game *whack.Game, cfg core.RuntimeConfig, opts Options) error {
	app := New(game, cfg, opts)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	err := ebiten.RunGame(app)
	// The window may have been closed without Q
	app.Close()
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
