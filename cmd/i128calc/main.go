package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	num "github.com/spbx/go-num"
)

const usage = `128-bit signed integer calculator

Usage: i128calc [-base N] [-dump] <a> [<op> <b>]

Operands are decimal, or hex if prefixed with 0x or -0x. Shift amounts are
unsigned decimal.

Operators:
  + - * / %         wrapping arithmetic, truncated division
  & | ^ &^          bitwise
  << >> >>>         left, arithmetic right, logical right shift
  cmp               prints -1, 0 or 1
`

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("i128calc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	base := fs.Int("base", 10, "output base, 2 to 36")
	dump := fs.Bool("dump", false, "dump the raw words, hex and binary forms")
	nflags := countFlags(fs, args)
	if err := fs.Parse(args[:nflags]); err != nil {
		fmt.Fprint(out, usage)
		return err
	}

	if *base < 2 || *base > 36 {
		return fmt.Errorf("-base must be between 2 and 36, found %d", *base)
	}

	rest := args[nflags:]
	if len(rest) != 1 && len(rest) != 3 {
		fmt.Fprint(out, usage)
		return errUsage
	}

	a, err := parseOperand(rest[0])
	if err != nil {
		return err
	}

	result := a
	if len(rest) == 3 {
		op, bs := rest[1], rest[2]
		if op == "cmp" {
			b, err := parseOperand(bs)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, a.Cmp(b))
			return nil
		}
		result, err = eval(a, op, bs)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, result.Text(*base))

	if *dump {
		hi, lo := result.Raw()
		spew.Fdump(out, struct {
			Hi, Lo uint64
			Hex    string
			Binary string
		}{hi, lo, result.HexStringReadable(), result.BinaryStringReadable()})
	}

	return nil
}

// countFlags returns the number of leading args that belong to flags
// registered on fs. flag.Parse can't be used on its own, as it would take a
// negative operand like "-5" for an unknown flag.
func countFlags(fs *flag.FlagSet, args []string) int {
	idx := 0
	for idx < len(args) {
		arg := args[idx]
		if arg == "--" {
			return idx + 1
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg || name == "" {
			break
		}
		hasValue := false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, hasValue = name[:eq], true
		}
		f := fs.Lookup(name)
		if f == nil {
			break
		}
		idx++
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if !hasValue {
			idx++
		}
	}
	if idx > len(args) {
		idx = len(args)
	}
	return idx
}

func eval(a num.I128, op string, bs string) (num.I128, error) {
	switch op {
	case "<<", ">>", ">>>":
		n, err := strconv.ParseUint(bs, 10, 0)
		if err != nil {
			return a, fmt.Errorf("shift amount: %w", err)
		}
		switch op {
		case "<<":
			return a.Lsh(uint(n)), nil
		case ">>":
			return a.Rsh(uint(n)), nil
		default:
			return a.RshUnsigned(uint(n)), nil
		}
	}

	b, err := parseOperand(bs)
	if err != nil {
		return a, err
	}

	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Divide(b)
	case "%":
		_, r, err := a.QuoRemChecked(b)
		return r, err
	case "&":
		return a.And(b), nil
	case "|":
		return a.Or(b), nil
	case "^":
		return a.Xor(b), nil
	case "&^":
		return a.AndNot(b), nil
	}
	return a, fmt.Errorf("unknown operator %q", op)
}

func parseOperand(s string) (num.I128, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") ||
		strings.HasPrefix(s, "-0x") || strings.HasPrefix(s, "-0X") {
		return num.I128FromHexString(s)
	}
	return num.I128FromString(s)
}
