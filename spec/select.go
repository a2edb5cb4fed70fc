// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package spec

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// predeclared returns the Starlark names describing a record.
func (rec Record) predeclared() starlark.StringDict {
	return starlark.StringDict{
		"opcode":   starlark.MakeInt(int(rec.Opcode)),
		"mnemonic": starlark.String(rec.Name()),
		"root":     starlark.String(rec.Mnemonic),
		"extra":    starlark.String(rec.Extra),
		"mode":     starlark.String(rec.Mode.String()),
		"length":   starlark.MakeInt(rec.Mode.Length()),
	}
}

// Match evaluates a Starlark boolean expression against the record.
// The expression sees opcode, mnemonic, root, extra, mode and length.
func (rec Record) Match(expr string) (ok bool, err error) {
	thread := starlark.Thread{Name: "select"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"

	dict, err := starlark.ExecFileOptions(&opts, &thread, "select", prog, rec.predeclared())
	if err != nil {
		err = ErrSelect{Expr: expr, Err: err}
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrSelect{Expr: expr, Err: ErrSelectExpression}
		return
	}
	st_bool, ok := st_rc.(starlark.Bool)
	if !ok {
		err = ErrSelect{Expr: expr, Err: ErrSelectExpression}
		return
	}

	ok = bool(st_bool)

	return
}

// Select returns a new Spec holding the records, in input order, that
// match a Starlark boolean expression. An empty expression selects all.
func (s *Spec) Select(expr string) (out *Spec, err error) {
	if len(strings.TrimSpace(expr)) == 0 {
		out = s
		return
	}

	selected := &Spec{}
	for rec := range s.All() {
		var ok bool
		ok, err = rec.Match(expr)
		if err != nil {
			err = rec.Syntax(err)
			return
		}
		if !ok {
			continue
		}
		err = selected.Add(*rec)
		if err != nil {
			return
		}
	}

	out = selected

	return
}
