package probability

import (
	"strings"
	"testing"

	"fairdice/internal/dice"
)

func mustDie(t *testing.T, faces ...int) dice.Die {
	t.Helper()
	die, err := dice.NewDie(faces)
	if err != nil {
		t.Fatalf("NewDie(%v): %v", faces, err)
	}
	return die
}

func TestWinPercent(t *testing.T) {
	ones := mustDie(t, 1, 1, 1, 1)
	twos := mustDie(t, 2, 2, 2, 2)
	mixed := mustDie(t, 1, 2, 3, 4)

	tests := []struct {
		name string
		a, b dice.Die
		want float64
	}{
		{name: "never wins", a: ones, b: twos, want: 0},
		{name: "always wins", a: twos, b: ones, want: 100},
		{name: "against itself ties excluded", a: mixed, b: mixed, want: 37.5},
		{name: "ties only lose percentage", a: twos, b: mixed, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WinPercent(tt.a, tt.b); got != tt.want {
				t.Fatalf("WinPercent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinPercentIsNotReciprocal(t *testing.T) {
	mixed := mustDie(t, 1, 2, 3, 4)
	sum := WinPercent(mixed, mixed) + WinPercent(mixed, mixed)
	if sum == 100 {
		t.Fatal("expected ties to keep the two directions from summing to 100")
	}
}

func TestTable(t *testing.T) {
	diceList := []dice.Die{
		mustDie(t, 1, 1, 1, 1),
		mustDie(t, 2, 2, 2, 2),
		mustDie(t, 1, 2, 3, 4),
	}

	want := strings.Join([]string{
		"Dice Pair | Win Probability",
		"0-1       | 0.00%          ",
		"0-2       | 0.00%          ",
		"1-2       | 25.00%         ",
	}, "\n")

	if got := Table(diceList); got != want {
		t.Fatalf("Table mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableRowsCoverEveryPair(t *testing.T) {
	diceList := []dice.Die{
		mustDie(t, 1, 1, 1, 1),
		mustDie(t, 2, 2, 2, 2),
		mustDie(t, 3, 3, 3, 3),
		mustDie(t, 4, 4, 4, 4),
	}

	lines := strings.Split(Table(diceList), "\n")
	// Header plus C(4,2) unordered pairs.
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	for _, pair := range []string{"0-1", "0-2", "0-3", "1-2", "1-3", "2-3"} {
		found := false
		for _, line := range lines[1:] {
			if strings.HasPrefix(line, pair) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("pair %s missing from table", pair)
		}
	}
}
