/*
File   : monkey-go/function/function.go
Package: function

Package function defines the Function runtime value: a user-defined
function literal paired with the scope that was active when it was
evaluated. Holding that scope by reference (not a copy) is what gives
Monkey closures correct lexical capture, including capture of names
bound after the closure escapes its defining call (see scope.Scope).

This lives in its own package, rather than inside object, because a
Function needs scope (for its captured environment) and scope already
imports object — folding it into object would create an import cycle.
*/
package function

import (
	"bytes"
	"strings"

	"github.com/micahkepe/monkey-go/ast"
	"github.com/micahkepe/monkey-go/object"
	"github.com/micahkepe/monkey-go/scope"
)

// Function is a closure: parameters and body from the FunctionLiteral it
// was evaluated from, plus the scope active at that point.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *scope.Scope
}

func (f *Function) Type() object.Type { return object.FunctionObj }

// Inspect renders the multi-line `fn(<params>) { <body> }` display form
// used by puts and the REPL.
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn")
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}
