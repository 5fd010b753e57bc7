package gocalc

import (
	"errors"
	"strings"
)

type positioner interface {
	Position() int
}

// Diagnose renders err followed by src and a caret under the character the
// error points at:
//
//	Unexpected '*' (token type Star) at position 3 (expecting one of [Integer, Minus, LParen])
//	  3-*1
//	    ^
//
// Errors that carry no position are rendered as err.Error().
func Diagnose(src string, err error) string {
	if err == nil {
		return ""
	}
	var pe positioner
	if !errors.As(err, &pe) {
		return err.Error()
	}

	// Tabs keep their width so the caret lines up under them.
	line := strings.NewReplacer("\n", " ", "\r", " ").Replace(src)
	col := pe.Position()
	var pad strings.Builder
	i := 0
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		i++
	}
	for ; i < col; i++ {
		pad.WriteByte(' ')
	}

	var buf strings.Builder
	buf.WriteString(err.Error())
	buf.WriteString("\n  ")
	buf.WriteString(line)
	buf.WriteString("\n  ")
	buf.WriteString(pad.String())
	buf.WriteByte('^')
	return buf.String()
}
