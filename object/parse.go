package object

import (
	"bufio"
	"encoding/hex"
	"io"
	"log"
	"strconv"
	"strings"
)

// Parser reads object programs.
type Parser struct {
	Verbose bool // Set to log each record as it is read.
}

// Parse reads an object program with a default Parser.
func Parse(input io.Reader) (prog *Program, err error) {
	return (&Parser{}).Parse(input)
}

// Parse reads an object program from input.
//
// Blank lines and lines starting with '.' are ignored. A program without
// an E record starts at its load address.
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var ended bool
	var hasEntry bool

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = strings.TrimRight(scanner.Text(), " \t\r")
		lineno++

		if len(line) == 0 || line[0] == '.' {
			continue
		}

		if ps.Verbose {
			log.Printf("object: %v: %v", lineno, line)
		}

		kind := line[0]
		fields := split(line)

		if kind != 'H' && prog == nil {
			err = ErrHeaderMissing
			return
		}

		if ended {
			err = ErrRecordAfterEnd
			return
		}

		switch kind {
		case 'H':
			if prog != nil {
				err = ErrHeaderDuplicate
				return
			}
			prog, err = parseHeader(fields)
		case 'T':
			var txt Text
			txt, err = parseText(fields)
			prog.Text = append(prog.Text, txt)
		case 'M':
			var mod Modification
			mod, err = parseModification(fields)
			prog.Modifications = append(prog.Modifications, mod)
		case 'E':
			ended = true
			if len(fields) > 1 && len(fields[1]) > 0 {
				prog.Entry, err = parseHex(fields[1])
				hasEntry = true
			}
		default:
			err = ErrRecordType
		}
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if prog == nil {
		err = ErrHeaderMissing
		return
	}

	if !hasEntry {
		prog.Entry = prog.Start
	}

	return
}

// columns lists the fixed field widths of each record type, after the type.
var columns = map[byte][]int{
	'H': {6, 6, 6},
	'T': {6, 2, -1},
	'M': {6, 2, -1},
	'E': {6},
}

// split breaks a record into its type and fields.
func split(line string) (fields []string) {
	if strings.Contains(line, "^") {
		fields = strings.Split(line, "^")
		for n, field := range fields {
			fields[n] = strings.TrimSpace(field)
		}
		return
	}

	fields = []string{line[:1]}
	rest := line[1:]
	for _, width := range columns[line[0]] {
		if len(rest) == 0 {
			break
		}
		if width < 0 || width > len(rest) {
			width = len(rest)
		}
		fields = append(fields, strings.TrimSpace(rest[:width]))
		rest = rest[width:]
	}

	return
}

func parseHex(field string) (value int, err error) {
	v, err := strconv.ParseUint(field, 16, 24)
	if err != nil {
		err = ErrRecordSyntax
		return
	}

	value = int(v)
	return
}

func parseHeader(fields []string) (prog *Program, err error) {
	if len(fields) != 4 {
		err = ErrRecordSyntax
		return
	}

	prog = &Program{Name: fields[1]}

	prog.Start, err = parseHex(fields[2])
	if err != nil {
		return
	}

	prog.Length, err = parseHex(fields[3])
	return
}

func parseText(fields []string) (txt Text, err error) {
	if len(fields) < 3 {
		err = ErrRecordSyntax
		return
	}

	txt.Start, err = parseHex(fields[1])
	if err != nil {
		return
	}

	length, err := parseHex(fields[2])
	if err != nil {
		return
	}

	txt.Data, err = hex.DecodeString(strings.Join(fields[3:], ""))
	if err != nil || len(txt.Data) != length {
		err = ErrRecordSyntax
		return
	}

	return
}

func parseModification(fields []string) (mod Modification, err error) {
	if len(fields) == 3 && len(fields[2]) > 2 {
		// Symbol run into the half-byte count: M^000007^05+COPY
		fields = []string{fields[0], fields[1], fields[2][:2], fields[2][2:]}
	}

	if len(fields) < 3 || len(fields) > 4 {
		err = ErrRecordSyntax
		return
	}

	mod.Address, err = parseHex(fields[1])
	if err != nil {
		return
	}

	mod.HalfBytes, err = parseHex(fields[2])
	if err != nil {
		return
	}
	if mod.HalfBytes == 0 || mod.HalfBytes > 6 {
		err = ErrRecordSyntax
		return
	}

	if len(fields) == 4 && len(fields[3]) > 0 {
		switch fields[3][0] {
		case '+':
		case '-':
			mod.Negative = true
		default:
			err = ErrRecordSyntax
			return
		}
		mod.Symbol = fields[3][1:]
	}

	return
}
