package question

import (
	"fmt"
	"strings"
)

// Label identifies one of the four answer options
type Label int

const (
	LabelA Label = iota
	LabelB
	LabelC
	LabelD
	labelCount
)

// Labels lists all option labels in display order
var Labels = [labelCount]Label{LabelA, LabelB, LabelC, LabelD}

// String returns the single-letter form
func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return string(rune('A' + int(l)))
}

// Valid reports whether l is one of A-D
func (l Label) Valid() bool {
	return l >= LabelA && l < labelCount
}

// ParseLabel accepts "a".."d" / "A".."D" with surrounding whitespace
func ParseLabel(s string) (Label, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'A' || s[0] > 'D' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
	return Label(s[0] - 'A'), nil
}
