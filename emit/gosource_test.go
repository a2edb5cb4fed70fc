package emit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/optable/table"
)

func TestGoSource(t *testing.T) {
	assert := assert.New(t)

	tab := loadTables(t, table.Options{Sentinel: "unk"},
		"00;BRK;imp",
		"01;ORA;X,ind",
		"4C;JMP;abs",
	)

	opt := DefaultOptions()
	opt.Package = "nmos"

	var buf bytes.Buffer
	assert.NoError(GoSource(&buf, tab, opt))

	text := buf.String()
	assert.Contains(text, "// Code generated by optable from instructions.txt. DO NOT EDIT.\n")
	assert.Regexp(`\tOP_abs_X += 0xC4\n`, text)
	assert.Contains(text, "var Op6502ToName = [256]byte{\n\t0, // brk  imp\n\t3, // ora  X,ind\n\t9,\n")
	assert.Contains(text, "const Op6502Names = \"brkorajmpunk\"\n")
	assert.Contains(text, "\tOP_X_ind, // ora X,ind\n")
	assert.Contains(text, "\tOP_ill,\n")

	file, err := parser.ParseFile(token.NewFileSet(), "optable.go", buf.Bytes(), 0)
	if !assert.NoError(err) {
		return
	}
	assert.Equal("nmos", file.Name.Name)

	var decls []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, s := range gen.Specs {
			for _, name := range s.(*ast.ValueSpec).Names {
				decls = append(decls, name.Name)
			}
		}
	}
	assert.Contains(decls, "OP_ill")
	assert.Contains(decls, "OP_zpg_rel")
	assert.Contains(decls, "Op6502ToName")
	assert.Contains(decls, "Op6502Names")
	assert.Contains(decls, "Op6502Modes")
}

func TestGoSourceBadPackage(t *testing.T) {
	assert := assert.New(t)

	tab := loadTables(t, table.Options{}, "EA;NOP;imp")

	opt := DefaultOptions()
	opt.Package = "not a package"

	var buf bytes.Buffer
	assert.Error(GoSource(&buf, tab, opt))
	assert.Equal(0, buf.Len())
}

func TestGoSourceChunks(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultOptions()
	opt.Width = 63

	var buf bytes.Buffer
	assert.NoError(GoSource(&buf, load65c02(t), opt))
	assert.Contains(buf.String(), "const Op6502Names = \"brkoratsbaslrmbphpbbrbpltrbclcincjsrandbitrolplpbmisecdecrtieor\" +\n")
	assert.Contains(buf.String(), "\t\"cpxsbcinxnopbeqsedplxdb \"\n")
}
