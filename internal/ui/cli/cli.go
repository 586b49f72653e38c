// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/connectGo/internal/generics"
	. "github.com/janpfeifer/connectGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const (
	// CharsPerColumn is the width of each board column when printed.
	CharsPerColumn = 4

	// MaxInputErrors is the number of invalid inputs accepted before ReadColumn gives up.
	MaxInputErrors = 3
)

var (
	// ErrQuit is returned by ReadColumn when the user asks to quit.
	ErrQuit = errors.New("user quit")

	// ErrTooManyInputErrors is returned by ReadColumn after MaxInputErrors invalid inputs.
	ErrTooManyInputErrors = errors.Errorf("failed to read a column %d times", MaxInputErrors)
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

func centerString(s string, fit int) string {
	width := displayWidth(s)
	if width >= fit {
		return s
	}
	marginLeft := (fit - width) / 2
	marginRight := fit - width - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

var (
	pieceStyles = map[Piece]lipgloss.Style{
		PlayerOne: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("9")).Bold(true),
		PlayerTwo: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Bold(true),
	}
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true).Bold(true)
	drawStyle   = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(1, 2)
	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// pieceSymbols used when printing without color.
var pieceSymbols = map[Piece]string{Empty: ".", PlayerOne: "X", PlayerTwo: "O"}

// UI prints boards and reads the columns played by a human.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI on the standard input and output.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading from in and writing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// terminalWidth returns the width of the output if it is a terminal, or 0.
func (ui *UI) terminalWidth() int {
	f, ok := ui.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((ui.terminalWidth()-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func (ui *UI) render(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

// PieceString returns the piece as shown on the board.
func (ui *UI) PieceString(piece Piece) string {
	if !ui.color || piece == Empty {
		return pieceSymbols[piece]
	}
	return pieceStyles[piece].Render(" ")
}

// PlayerString returns the player name, colored with its piece color.
func (ui *UI) PlayerString(piece Piece) string {
	name := fmt.Sprintf("%s (%s)", piece, pieceSymbols[piece])
	if !ui.color {
		return name
	}
	return pieceStyles[piece].Render(" " + name + " ")
}

// Print the board with a header with the move number and whose turn it is.
func (ui *UI) Print(board Board) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	_, _ = fmt.Fprintf(ui.out, "\n%s\n\n", ui.render(headerStyle, fmt.Sprintf("Move #%d", board.CountPieces()+1)))
	ui.PrintBoard(board)
	_, _ = fmt.Fprintln(ui.out)
	if !board.IsFinished() {
		_, _ = fmt.Fprintf(ui.out, "\t%s turn to play\n", ui.PlayerString(board.NextPlayer()))
	}
}

// PrintBoard prints the board centered on the terminal, top row first, with the column numbers below.
func (ui *UI) PrintBoard(board Board) {
	var sb strings.Builder
	border := ui.render(frameStyle, "|")
	for row := NumRows - 1; row >= 0; row-- {
		sb.WriteString(border)
		for col := range Column(NumColumns) {
			sb.WriteString(centerString(ui.PieceString(board.At(row, col)), CharsPerColumn))
		}
		sb.WriteString(border)
		sb.WriteString("\n")
	}
	sb.WriteString(ui.render(frameStyle, "+"+strings.Repeat("-", NumColumns*CharsPerColumn)+"+"))
	sb.WriteString("\n ")
	for col := range NumColumns {
		sb.WriteString(centerString(strconv.Itoa(col), CharsPerColumn))
	}
	sb.WriteString("\n")
	ui.printCentered(sb.String())
}

// PrintWinner prints the result of a finished board.
func (ui *UI) PrintWinner(board Board) {
	outcome, winner := board.Outcome()
	_, _ = fmt.Fprintln(ui.out)
	switch outcome {
	case Draw:
		ui.printCentered(ui.render(drawStyle, "*** DRAW: the board is full! ***"))
	case Win:
		var lines []string
		for _, o := range Orientations {
			if board.WinsIn(winner, o) {
				lines = append(lines, o.String())
			}
		}
		ui.printCentered(fmt.Sprintf("*** %s WINS (%s)!! Congratulations! ***",
			ui.PlayerString(winner), strings.Join(lines, ", ")))
	default:
		ui.printCentered("Match not finished.")
	}
	_, _ = fmt.Fprintln(ui.out)
}

// ReadColumn asks the next player of the board for a column, until a valid one is given.
//
// It returns ErrQuit if the user types "q" or "quit", and ErrTooManyInputErrors after MaxInputErrors
// invalid inputs. Errors reading the input are returned as is (io.EOF included).
func (ui *UI) ReadColumn(board Board) (Column, error) {
	for range MaxInputErrors {
		_, _ = fmt.Fprintf(ui.out, "    %s column (0-%d) > ", ui.PlayerString(board.NextPlayer()), NumColumns-1)
		text, err := ui.reader.ReadString('\n')
		text = strings.ToLower(strings.TrimSpace(text))
		if err != nil && (err != io.EOF || text == "") {
			return NoMove, err
		}
		switch text {
		case "q", "quit", "exit":
			return NoMove, ErrQuit
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * Failed to parse your input %q, please type a column number.\n", text)
			continue
		}
		col := Column(value)
		if value < 0 || value >= NumColumns || !board.IsValid(col) {
			valid := generics.SliceMap(board.ValidColumns(), func(c Column) string { return strconv.Itoa(int(c)) })
			_, _ = fmt.Fprintf(ui.out, "    * Column %s is not valid, choose one of %s.\n",
				ui.render(inputStyle, text), strings.Join(valid, ", "))
			continue
		}
		return col, nil
	}
	return NoMove, ErrTooManyInputErrors
}
