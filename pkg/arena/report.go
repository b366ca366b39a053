package arena

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/knightsmove/isolation/pkg/isolation"
)

const (
	colMatch = 9
	colName  = 13
)

// TableListener renders tournament progress as a text table: one row per
// round, won/lost columns per test agent, and a colored win-rate summary.
type TableListener struct {
	w   io.Writer
	out *termenv.Output

	testAgents []Competitor
	matchCount int
}

func NewTableListener(w io.Writer) *TableListener {
	return &TableListener{w: w, out: termenv.NewOutput(w)}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func (l *TableListener) OnTournamentStart(anchors, testAgents []Competitor, matchCount int) {
	l.testAgents = testAgents
	l.matchCount = matchCount

	header := strings.Builder{}
	header.WriteString("\n" + center("*************************", 74))
	header.WriteString("\n" + center("Playing Matches", 74))
	header.WriteString("\n" + center("*************************", 74))
	header.WriteString("\n\n" + center("Match #", colMatch) + center("Opponent", colName))
	for _, agent := range testAgents {
		header.WriteString(center(agent.Name, colName))
	}
	header.WriteString("\n" + center("", colMatch) + center("", colName) + " ")

	cols := make([]string, len(testAgents))
	for i := range cols {
		cols[i] = center("Won", 5) + "| " + center("Lost", 5)
	}
	header.WriteString(strings.Join(cols, " "))

	fmt.Fprintln(l.w, header.String())
}

func (l *TableListener) OnRoundStart(round int, anchor Competitor) {
	fmt.Fprintf(l.w, "%s%s", center(fmt.Sprint(round+1), colMatch), center(anchor.Name, colName))
}

func (l *TableListener) OnGameFinished(GameRecord) {}

func (l *TableListener) OnRoundDone(round int, anchor Competitor, wins WinCounts, reasons LossReasonCounts) {
	gamesEach := 2 * l.matchCount

	cols := make([]string, len(l.testAgents))
	for i, agent := range l.testAgents {
		won := wins[agent]
		cols[i] = center(fmt.Sprint(won), 5) + "| " + center(fmt.Sprint(gamesEach-won), 5)
	}
	fmt.Fprintln(l.w, " "+strings.Join(cols, " "))
}

func (l *TableListener) OnTournamentDone(result *Result) {
	fmt.Fprintln(l.w, strings.Repeat("-", colMatch+colName+colName*len(l.testAgents)))

	row := strings.Builder{}
	row.WriteString(center("", colMatch) + center("Win Rate:", colName))
	for _, agent := range l.testAgents {
		rate := result.WinRate(agent)
		cell := fmt.Sprintf("%.1f%%", rate*100)

		styled := l.out.String(center(cell, colName))
		if rate >= 0.5 {
			styled = styled.Foreground(l.out.Color("10")) // green
		} else {
			styled = styled.Foreground(l.out.Color("9")) // red
		}
		row.WriteString(styled.String())
	}
	fmt.Fprintln(l.w, row.String())

	if n := result.LossReasons[isolation.LossTimeout]; n > 0 {
		fmt.Fprintf(l.w, "\nThere were %d timeout(s) during the tournament -- make sure\n"+
			"your agent returns before the deadline, and consider\n"+
			"increasing the timeout margin for your agent.\n", n)
	}
	if n := result.LossReasons[isolation.LossForfeit]; n > 0 {
		fmt.Fprintf(l.w, "\nYour agent forfeited %d game(s) while there were still legal\n"+
			"moves available to play.\n", n)
	}
}
