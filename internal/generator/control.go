package generator

import (
	"strings"

	"github.com/mcncl/tsgen/internal/syntax"
)

// BlockOptions control statements that take a body.
type BlockOptions struct {
	// NoBracket writes the body inline without braces.
	NoBracket bool
}

// GenPrefixedBlock renders `prefix { ... }` at indent, or `prefix stmt`
// when NoBracket is set.
func GenPrefixedBlock(prefix string, statements []string, opts BlockOptions, indent string) string {
	if opts.NoBracket {
		return indent + prefix + " " + strings.Join(statements, "\n")
	}
	return indent + prefix + " " + GenBlock(statements, indent)
}

// GenTernary renders `cond ? a : b`.
func GenTernary(cond, whenTrue, whenFalse string) string {
	return cond + " ? " + whenTrue + " : " + whenFalse
}

// GenIf renders `if (cond) { ... }`.
func GenIf(cond string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("if ("+cond+")", statements, opts, indent)
}

// GenElseIf renders `else if (cond) { ... }`.
func GenElseIf(cond string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("else if ("+cond+")", statements, opts, indent)
}

// GenElse renders `else { ... }`.
func GenElse(statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("else", statements, opts, indent)
}

// GenTry renders `try { ... }`.
func GenTry(statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("try", statements, opts, indent)
}

// GenCatch renders `catch (binding) { ... }`. An empty binding omits the
// parentheses.
func GenCatch(binding string, statements []string, opts BlockOptions, indent string) string {
	prefix := "catch"
	if binding != "" {
		prefix += " (" + binding + ")"
	}
	return GenPrefixedBlock(prefix, statements, opts, indent)
}

// GenFinally renders `finally { ... }`.
func GenFinally(statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("finally", statements, opts, indent)
}

// GenFor renders `for (init; test; update) { ... }`.
func GenFor(init, test, update string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("for ("+init+"; "+test+"; "+update+")", statements, opts, indent)
}

// GenForOf renders `for (left of iterable) { ... }`.
func GenForOf(left, iterable string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("for ("+left+" of "+iterable+")", statements, opts, indent)
}

// GenForIn renders `for (left in obj) { ... }`.
func GenForIn(left, obj string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("for ("+left+" in "+obj+")", statements, opts, indent)
}

// GenWhile renders `while (cond) { ... }`.
func GenWhile(cond string, statements []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("while ("+cond+")", statements, opts, indent)
}

// GenDoWhile renders `do { ... } while (cond);`.
func GenDoWhile(statements []string, cond string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("do", statements, opts, indent) + " while (" + cond + ");"
}

// GenSwitch renders `switch (expr) { ... }` around rendered cases.
func GenSwitch(expr string, cases []string, opts BlockOptions, indent string) string {
	return GenPrefixedBlock("switch ("+expr+")", cases, opts, indent)
}

// GenCase renders `case value:` followed by its indented statements.
func GenCase(value string, statements []string, indent string) string {
	return genCaseClause(indent+"case "+value+":", statements, indent)
}

// GenDefault renders `default:` followed by its indented statements.
func GenDefault(statements []string, indent string) string {
	return genCaseClause(indent+"default:", statements, indent)
}

func genCaseClause(label string, statements []string, indent string) string {
	if len(statements) == 0 {
		return label
	}
	return label + "\n" + strings.Join(syntax.IndentLines(statements, indent+"  "), "\n")
}

// GenThrow renders `throw expr;`.
func GenThrow(expr, indent string) string {
	return indent + "throw " + expr + ";"
}

// GenReturn renders `return expr;`.
func GenReturn(expr, indent string) string {
	return indent + "return " + expr + ";"
}

// GenReturnVoid renders a bare `return;`.
func GenReturnVoid(indent string) string {
	return indent + "return;"
}
