// Package probability computes pairwise win chances for a die list and
// renders them as the help table. It has no protocol dependency.
package probability

import (
	"fmt"
	"strings"

	"fairdice/internal/dice"
)

// WinPercent returns the chance, in percent, that a roll of a beats a
// roll of b over all ordered face pairs. Ties count for neither side, so
// WinPercent(a, b) and WinPercent(b, a) need not sum to 100.
func WinPercent(a, b dice.Die) float64 {
	wins := 0
	for _, fa := range a.Faces() {
		for _, fb := range b.Faces() {
			if fa > fb {
				wins++
			}
		}
	}
	return 100 * float64(wins) / float64(a.FaceCount()*b.FaceCount())
}

// Table renders win chances for every unordered pair of dice, indexed by
// command-line position. Both columns are padded to their widest cell and
// joined with " | ".
func Table(diceList []dice.Die) string {
	rows := [][]string{{"Dice Pair", "Win Probability"}}
	for i := 0; i < len(diceList); i++ {
		for j := i + 1; j < len(diceList); j++ {
			rows = append(rows, []string{
				fmt.Sprintf("%d-%d", i, j),
				fmt.Sprintf("%.2f%%", WinPercent(diceList[i], diceList[j])),
			})
		}
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	var b strings.Builder
	for r, row := range rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = fmt.Sprintf("%-*s", widths[c], cell)
		}
		b.WriteString(strings.Join(cells, " | "))
	}
	return b.String()
}
