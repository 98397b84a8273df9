// Package cli renders match3 game state for the command line.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/match3/internal/games/match3"
	"github.com/vovakirdan/match3/internal/storage"
)

// tileStyles maps tiles to lipgloss styles.
var tileStyles = map[match3.Tile]lipgloss.Style{
	match3.TileEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	match3.TileRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	match3.TileBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	match3.TileGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	match3.TileYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	match3.TilePurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

var (
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	statusStyles = map[match3.Status]lipgloss.Style{
		match3.StatusPlaying: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		match3.StatusClear:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		match3.StatusOver:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

// RenderBoard draws the grid with row and column indices, one colored
// letter per tile.
func RenderBoard(grid [][]match3.Tile) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := range grid {
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%2d", c)))
	}

	for r, row := range grid {
		sb.WriteRune('\n')
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%2d ", r)))
		for _, t := range row {
			style, ok := tileStyles[t]
			if !ok {
				style = tileStyles[match3.TileEmpty]
			}
			sb.WriteRune(' ')
			sb.WriteString(style.Render(string(t.Char())))
		}
	}
	return sb.String()
}

// RenderView draws the board followed by the score line.
func RenderView(v match3.GameView) string {
	var sb strings.Builder
	sb.WriteString(RenderBoard(v.Board))
	sb.WriteString("\n\n")
	sb.WriteString(RenderStatus(v))
	return sb.String()
}

// RenderStatus draws the one-line summary of a game.
func RenderStatus(v match3.GameView) string {
	status, ok := statusStyles[v.Status]
	if !ok {
		status = lipgloss.NewStyle()
	}

	parts := []string{
		labelStyle.Render("session ") + v.SessionID,
		labelStyle.Render("difficulty ") + v.Difficulty,
		labelStyle.Render("score ") + fmt.Sprintf("%d/%d", v.Score, v.TargetScore),
		labelStyle.Render("moves ") + strconv.Itoa(v.MovesLeft),
		status.Render(v.Status.String()),
	}
	line := strings.Join(parts, "  ")
	if v.NewHighScore {
		line += "  " + statusStyles[match3.StatusClear].Render("new high score!")
	}
	return line
}

// RenderMove draws the chain log of a move and the resulting game.
func RenderMove(res match3.MoveResult) string {
	var sb strings.Builder

	if len(res.Steps) == 0 {
		sb.WriteString(labelStyle.Render("no match, swap reverted"))
	}
	for i, step := range res.Steps {
		if i > 0 {
			sb.WriteRune('\n')
		}
		fmt.Fprintf(&sb, "step %d: cleared %d, %d fell, %d spawned",
			i+1, step.Matched.Len(), len(step.Refill.Falls), len(step.Refill.Spawns))
	}
	if res.Combo > 1 {
		sb.WriteRune('\n')
		sb.WriteString(titleStyle.Render(fmt.Sprintf("combo x%d", res.Combo)))
	}

	sb.WriteString("\n\n")
	sb.WriteString(RenderView(res.GameView))
	return sb.String()
}

// RenderProfiles draws the difficulty table.
func RenderProfiles(profiles []match3.Profile, defaultName string) string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		name := p.Name
		if name == defaultName {
			name += " (default)"
		}
		rows = append(rows, []string{name, strconv.Itoa(p.TargetScore), strconv.Itoa(p.StartingMoves)})
	}
	return newTable([]string{"Difficulty", "Target", "Moves"}, rows)
}

// RenderScores draws the score history with ranks and the stored best.
func RenderScores(entries []storage.ScoreEntry, best int) string {
	var sb strings.Builder

	if len(entries) == 0 {
		sb.WriteString("No scores recorded yet.")
	} else {
		rows := make([][]string, 0, len(entries))
		for i, e := range entries {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(e.Score),
				e.Difficulty,
				e.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		sb.WriteString(newTable([]string{"Rank", "Score", "Difficulty", "Date"}, rows))
	}

	sb.WriteString("\n\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Best: %d", best)))
	return sb.String()
}

func newTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(indexStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
