package stage

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse compiles an infix expression such as "x * sin(x) + 2" into a
// straight-line Program.
//
// Supported syntax: +, -, *, /, unary minus, parentheses, decimal literals,
// variables, and calls to the unary primitives sin, cos, exp, log. Each
// operation becomes one equation bound to a generated temporary; free
// variables become the program's inputs in order of first appearance.
func Parse(src string) (Program, error) {
	toks, err := lex(src)
	if err != nil {
		return Program{}, err
	}
	p := &parser{toks: toks}
	root, err := p.expr()
	if err != nil {
		return Program{}, err
	}
	if p.peek().kind != tokEOF {
		return Program{}, errors.Errorf("stage: unexpected %q after expression", p.peek().text)
	}
	p.prog.Outputs = []Atom{root}
	return p.prog, nil
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp     // + - * /
	tokLParen
	tokRParen
)

type token struct {
	kind tokKind
	text string
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '+' || c == '-' || c == '*' || c == '/':
			toks = append(toks, token{tokOp, string(c)})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(src) && (src[j] >= '0' && src[j] <= '9' || src[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, src[i:j]})
			i = j
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
			j := i
			for j < len(src) && (src[j] >= 'a' && src[j] <= 'z' || src[j] >= 'A' && src[j] <= 'Z' ||
				src[j] >= '0' && src[j] <= '9' || src[j] == '_') {
				j++
			}
			toks = append(toks, token{tokIdent, src[i:j]})
			i = j
		default:
			return nil, errors.Errorf("stage: unexpected character %q", string(c))
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

type parser struct {
	toks []token
	pos  int
	prog Program
	tmp  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// emit appends an equation binding a fresh temporary and returns a
// reference to it.
func (p *parser) emit(prim string, args ...Atom) Atom {
	p.tmp++
	name := "%" + strconv.Itoa(p.tmp)
	p.prog.Equations = append(p.prog.Equations, Equation{Result: name, Prim: prim, Args: args})
	return Var(name)
}

// input records name as a program input on first use.
func (p *parser) input(name string) Atom {
	for _, in := range p.prog.Inputs {
		if in == name {
			return Var(name)
		}
	}
	p.prog.Inputs = append(p.prog.Inputs, name)
	return Var(name)
}

func (p *parser) expr() (Atom, error) {
	left, err := p.term()
	if err != nil {
		return Atom{}, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "+" || p.peek().text == "-") {
		op := p.next().text
		right, err := p.term()
		if err != nil {
			return Atom{}, err
		}
		if op == "+" {
			left = p.emit("add", left, right)
		} else {
			left = p.emit("sub", left, right)
		}
	}
	return left, nil
}

func (p *parser) term() (Atom, error) {
	left, err := p.unary()
	if err != nil {
		return Atom{}, err
	}
	for p.peek().kind == tokOp && (p.peek().text == "*" || p.peek().text == "/") {
		op := p.next().text
		right, err := p.unary()
		if err != nil {
			return Atom{}, err
		}
		if op == "*" {
			left = p.emit("mul", left, right)
		} else {
			left = p.emit("div", left, right)
		}
	}
	return left, nil
}

func (p *parser) unary() (Atom, error) {
	if p.peek().kind == tokOp && p.peek().text == "-" {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return Atom{}, err
		}
		return p.emit("neg", operand), nil
	}
	return p.primary()
}

func (p *parser) primary() (Atom, error) {
	switch t := p.next(); t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return Atom{}, errors.Wrapf(err, "stage: bad number %q", t.text)
		}
		return Lit(v), nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			return p.input(t.text), nil
		}
		prim, ok := primitives[t.text]
		if !ok || prim.arity != 1 {
			return Atom{}, errors.Errorf("stage: unknown function %q", t.text)
		}
		p.next() // consume "("
		arg, err := p.expr()
		if err != nil {
			return Atom{}, err
		}
		if tok := p.next(); tok.kind != tokRParen {
			return Atom{}, errors.Errorf("stage: expected ) after %s(...), got %q", t.text, tok.text)
		}
		return p.emit(t.text, arg), nil
	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return Atom{}, err
		}
		if tok := p.next(); tok.kind != tokRParen {
			return Atom{}, errors.Errorf("stage: expected ), got %q", tok.text)
		}
		return inner, nil
	case tokEOF:
		return Atom{}, errors.New("stage: unexpected end of expression")
	default:
		return Atom{}, errors.Errorf("stage: unexpected %q", t.text)
	}
}
