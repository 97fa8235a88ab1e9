package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ShanizOgallo2/evaluator"
)

var errcolor = color.New(color.FgRed)

func main() {
	log.SetFlags(0)
	var (
		verb string
		echo bool
	)
	reg := evaluator.NewRegistry()
	given := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		nm := strings.TrimSpace(d[0])
		r, err := reg.Eval(d[1])
		if err != nil {
			return fmt.Errorf("setting %s: %w", nm, err)
		}
		reg.Set(nm, r)
		return nil
	}
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("given", "name=value variable definition (any number of times)", given)
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.Parse()
	verb += "\n"

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(reg, arg, verb, echo)
		}
		return
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl(reg, verb, echo)
		return
	}
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			eval(reg, line, verb, echo)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval runs one expression through the pipeline and prints its value.
func eval(reg *evaluator.Registry, src, verb string, echo bool) {
	pf := evaluator.ToPostfix(evaluator.Tokenize(evaluator.Normalize(src), reg))
	if echo {
		fmt.Printf("%v : ", pf)
	}
	r, err := evaluator.Evaluate(pf, reg)
	if err != nil {
		if echo {
			fmt.Println()
		}
		errcolor.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf(verb, r)
}

// repl evaluates lines interactively. Variables bound with "name = expr"
// lines keep their values for the rest of the session.
func repl(reg *evaluator.Registry, verb string, echo bool) {
	sc := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case line == "vars":
			for _, name := range reg.Vars() {
				v, _ := reg.Var(name)
				fmt.Printf("%s = %g\n", name, v)
			}
		default:
			if name, expr, ok := binding(line); ok {
				r, err := reg.Eval(expr)
				if err != nil {
					errcolor.Fprintln(os.Stderr, err)
					break
				}
				reg.Set(name, r)
				break
			}
			eval(reg, line, verb, echo)
		}
		fmt.Print("> ")
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
}

// binding splits a "name = expr" line, reporting whether the line has that
// form. Lines like "x=3" bind; lines like "1+2=" or "sin(x) = 1" are
// expressions.
func binding(line string) (name, expr string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	if !identifier(name) {
		return "", "", false
	}
	return name, strings.TrimSpace(line[i+1:]), true
}

// identifier reports whether s would lex as a single variable or function
// name.
func identifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return s != ""
}
