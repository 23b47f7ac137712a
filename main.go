package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-tetris/internal/board"
	"go-tetris/internal/config"
	"go-tetris/internal/game"
	"go-tetris/internal/piece"
	"go-tetris/internal/state"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Game over and danger
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // High score
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Color for the stats
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

const (
	filledCell = "██"
	emptyCell  = " ·"
)

// LocalState is the bubbletea model. It renders whatever snapshot the game
// loop last handed it.
type LocalState struct {
	Loop     *game.Loop
	Game     *game.Game
	Snapshot game.Snapshot

	keys      keyMap
	help      help.Model
	frameRate int
}

type frameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func initialModel(cfg config.Config, seed uint64, logger *slog.Logger) *LocalState {
	rng := rand.New(rand.NewPCG(seed, seed))
	g := game.NewGame(piece.NewFactory(rng, board.Width), logger)

	s := &LocalState{
		Game:      g,
		keys:      defaultKeyMap(),
		help:      help.New(),
		frameRate: cfg.FrameRate,
	}
	s.Loop = game.NewLoop(g, s)
	s.Snapshot = g.Snapshot()
	return s
}

// Render implements game.Renderer.
func (s *LocalState) Render(snap game.Snapshot) {
	s.Snapshot = snap
}

func (s *LocalState) Init() tea.Cmd {
	// Nothing ticks until a round starts.
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if s.Loop.Frame(time.Time(msg)) {
			return s, frameCmd(s.frameRate)
		}
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			return s, tea.Quit
		}
		if cmd, ok := s.keys.command(msg); ok && s.Loop.Apply(cmd) {
			return s, frameCmd(s.frameRate)
		}
	}
	return s, nil
}

func (s *LocalState) RenderBoard() string {
	snap := s.Snapshot

	grid := make([][]piece.Color, len(snap.Grid))
	for y, row := range snap.Grid {
		grid[y] = slices.Clone(row)
	}
	if snap.Active != nil && snap.Phase != state.Idle {
		snap.Active.Cells(func(x, y int) {
			if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
				grid[y][x] = snap.Active.Color
			}
		})
	}

	var b strings.Builder
	for y, row := range grid {
		for _, c := range row {
			b.WriteString(renderCell(c))
		}
		if y < len(grid)-1 {
			b.WriteString("\n")
		}
	}

	borderColor := lipgloss.Color("8")
	if snap.TopRowOccupied {
		borderColor = lipgloss.Color("9")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Render(b.String())
}

func renderCell(c piece.Color) string {
	if c == piece.Empty {
		return dimStyle.Render(emptyCell)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render(filledCell)
}

// renderPreview draws p's shape on its own, without the board behind it.
func renderPreview(p *piece.Piece) string {
	if p == nil {
		return strings.Repeat(" ", 8) + "\n"
	}
	var b strings.Builder
	for _, row := range p.Shape {
		if !slices.Contains(row, true) {
			continue
		}
		for _, filled := range row {
			if filled {
				b.WriteString(renderCell(p.Color))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *LocalState) RenderStats() string {
	snap := s.Snapshot
	var b strings.Builder

	b.WriteString(boldStyle.Render("NEXT") + "\n")
	b.WriteString(renderPreview(snap.Next) + "\n")

	stats := fmt.Sprintf("SCORE: %d\nLINES: %d\nLEVEL: %d\nSPEED: %v",
		snap.Score, snap.Lines, snap.Level, snap.FallInterval)
	b.WriteString(scoreStyle.Render(stats) + "\n\n")

	fmt.Fprintf(&b, "HIGH:  %d\nGAMES: %d", snap.HighScore, snap.Attempts)
	return b.String()
}

func (s *LocalState) StatusMessage() string {
	snap := s.Snapshot
	switch snap.Phase {
	case state.Idle:
		return "Press s to start."
	case state.Paused:
		return boldStyle.Render("PAUSED") + " Press p to resume."
	case state.GameOver:
		display := redStyle.Render(fmt.Sprintf("Game over! Final score: %d", snap.Score))
		if snap.GotHighScore {
			display += "\n" + greenStyle.Render("You got a high score! Top 5 scores:")
			for _, entry := range snap.TopScores {
				display += fmt.Sprintf("\n  * %d (%d lines) on %s", entry.Score, entry.Lines, entry.Timestamp)
			}
		}
		return display + "\nPress s to play again."
	}
	if snap.TopRowOccupied {
		return redStyle.Render("Danger! The stack has reached the top.")
	}
	return ""
}

func (s *LocalState) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, s.RenderBoard(), "  ", s.RenderStats())
	return titleStyle.Render("TETRIS") + "\n" +
		body + "\n" +
		s.StatusMessage() + "\n\n" +
		s.help.View(s.keys)
}

// seedFlag accepts "random" or a fixed unsigned seed.
type seedFlag string

func (f *seedFlag) String() string {
	return string(*f)
}

func (f *seedFlag) Set(s string) error {
	if _, _, err := config.ParseSeed(s); err != nil {
		return err
	}
	*f = seedFlag(s)
	return nil
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Environment values become the flag defaults.
	seed := seedFlag(cfg.Seed)
	fps := strictIntFlag(cfg.FrameRate)

	flag.Var(&seed, "seed", "Piece sequence seed: 'random' or a non-negative integer")
	flag.Var(&fps, "fps", "Frames per second")
	flag.Var(&fps, "f", "Frames per second (shorthand)")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write JSON logs to this file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "        --seed=VALUE    Piece sequence seed: 'random' or a non-negative integer\n")
		fmt.Fprintf(os.Stderr, "    -f, --fps=N         Frames per second (default 60)\n")
		fmt.Fprintf(os.Stderr, "        --log=PATH      Write JSON logs to PATH\n")
		fmt.Fprintf(os.Stderr, "    -h, --help          Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment: TETRIS_SEED, TETRIS_FRAME_RATE, TETRIS_LOG_FILE, TETRIS_LOG_LEVEL\n")
	}

	flag.Parse()

	cfg.Seed = string(seed)
	cfg.FrameRate = int(fps)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	seedValue, err := cfg.ResolveSeed()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", "seed", seedValue, "fps", cfg.FrameRate)

	model := initialModel(cfg, seedValue, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Printf("Error starting the program: %v\n", err)
		return
	}

	if snap := model.Snapshot; snap.Attempts > 0 {
		fmt.Printf("Games played: %d | High score: %d | Seed: %d\n", snap.Attempts, snap.HighScore, seedValue)
	}
}
