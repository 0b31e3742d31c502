package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

var errInvalidInput = errors.New("invalid input")

// tokens reads whitespace separated tokens, the way the prompts expect them.
type tokens struct {
	scanner *bufio.Scanner
}

// maxTokenSize bounds a single token. Longer input fails with bufio.ErrTooLong.
const maxTokenSize = 1 << 20

func newTokens(r io.Reader) *tokens {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxTokenSize)
	s.Split(bufio.ScanWords)
	return &tokens{scanner: s}
}

func (t *tokens) next() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (t *tokens) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", errInvalidInput, tok)
	}
	return v, nil
}

func (t *tokens) nextInt64() (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", errInvalidInput, tok)
	}
	return v, nil
}

func (t *tokens) nextDecimal() (decimal.Decimal, error) {
	tok, err := t.next()
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", errInvalidInput, tok)
	}
	return v, nil
}
