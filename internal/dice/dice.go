package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinDice is the smallest playable set
	MinDice = 3

	// MinFaces is the smallest face count a die may have
	MinFaces = 4
)

// Parser and roll errors
var (
	ErrNotEnoughDice    = errors.New("not enough dice")
	ErrNotEnoughFaces   = errors.New("not enough faces")
	ErrBadFace          = errors.New("face is not an integer")
	ErrIndexOutOfBounds = errors.New("face index out of bounds")
)

// Die is an immutable ordered list of faces. Face values may repeat and
// may be negative; a die is identified by its position in the session's
// die list.
type Die struct {
	faces []int
}

// NewDie creates a die from the given faces
func NewDie(faces []int) (Die, error) {
	if len(faces) < MinFaces {
		return Die{}, fmt.Errorf("%w: got %d, need at least %d", ErrNotEnoughFaces, len(faces), MinFaces)
	}

	owned := make([]int, len(faces))
	copy(owned, faces)

	return Die{faces: owned}, nil
}

// FaceCount returns the number of faces
func (d Die) FaceCount() int {
	return len(d.faces)
}

// Faces returns a copy of the face list
func (d Die) Faces() []int {
	faces := make([]int, len(d.faces))
	copy(faces, d.faces)
	return faces
}

// Roll returns the face at the given index
func (d Die) Roll(index int) (int, error) {
	if index < 0 || index >= len(d.faces) {
		return 0, fmt.Errorf("%w: index %d, die has %d faces", ErrIndexOutOfBounds, index, len(d.faces))
	}
	return d.faces[index], nil
}

// String renders the faces the way they were supplied on the command line
func (d Die) String() string {
	parts := make([]string, len(d.faces))
	for i, face := range d.faces {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, ",")
}

// Parse turns raw command-line arguments into a validated die list. Each
// argument is a comma-separated list of at least MinFaces integers, and at
// least MinDice arguments are required.
func Parse(args []string) ([]Die, error) {
	if len(args) < MinDice {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrNotEnoughDice, len(args), MinDice)
	}

	diceList := make([]Die, 0, len(args))
	for i, arg := range args {
		tokens := strings.Split(arg, ",")
		faces := make([]int, 0, len(tokens))
		for _, token := range tokens {
			face, err := strconv.Atoi(strings.TrimSpace(token))
			if err != nil {
				return nil, fmt.Errorf("die %d (%q): %w: %q", i+1, arg, ErrBadFace, token)
			}
			faces = append(faces, face)
		}

		die, err := NewDie(faces)
		if err != nil {
			return nil, fmt.Errorf("die %d (%q): %w", i+1, arg, err)
		}
		diceList = append(diceList, die)
	}

	return diceList, nil
}
