// Package fixtures generates small, syntactically valid programs for
// benchmarks and fuzz-style tests, the way the teacher's internal/test
// package assembled random token streams from a fixed vocabulary — except
// that every program this package emits is expected to lex and parse
// cleanly, since there is no value in the parser separately re-discovering
// the same grammar the generator already knows.
package fixtures

import (
	"fmt"
	"math/rand"
	"strings"
)

var builtinTypes = []string{"int", "float", "bool", "str"}

var operators = []string{"+", "-", "*", "/", "==", "!=", "<", ">", "<=", ">="}

// GenerateProgram returns a source text containing n independently
// generated functions, each taking a handful of scalar arguments and
// returning one of the builtin types.
func GenerateProgram(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		writeFunction(&sb, rng, fmt.Sprintf("f%d", i))
	}
	return sb.String()
}

func writeFunction(sb *strings.Builder, rng *rand.Rand, name string) {
	retType := builtinTypes[rng.Intn(len(builtinTypes))]
	argCount := rng.Intn(3)

	args := make([]string, argCount)
	for i := range args {
		args[i] = fmt.Sprintf("a%d: %s", i, builtinTypes[rng.Intn(len(builtinTypes))])
	}

	fmt.Fprintf(sb, "def %s(%s) -> %s:\n", name, strings.Join(args, ", "), retType)
	fmt.Fprintf(sb, "    x: int = %d\n", rng.Intn(1000))
	if argCount > 0 {
		fmt.Fprintf(sb, "    if a0 %s x:\n", operators[rng.Intn(len(operators))])
		fmt.Fprintf(sb, "        x = x %s 1\n", operators[rng.Intn(4)])
		fmt.Fprintf(sb, "    else:\n")
		fmt.Fprintf(sb, "        x = x %s 2\n", operators[rng.Intn(4)])
	}
	fmt.Fprintf(sb, "    return %s\n", zeroLiteral(retType))
	sb.WriteString("\n")
}

func zeroLiteral(typ string) string {
	switch typ {
	case "int":
		return "0"
	case "float":
		return "0.0"
	case "bool":
		return "False"
	case "str":
		return "\"\""
	default:
		return "None"
	}
}

// GenerateCommentNoise appends a random inline `#` comment to each non-blank
// line of source, for exercising the preprocessor independently of the
// lexer. Blank lines are left as they are.
func GenerateCommentNoise(rng *rand.Rand, source string) string {
	lines := strings.Split(source, "\n")
	notes := []string{"TODO", "fixme", "see above", "noqa"}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines[i] = line + " # " + notes[rng.Intn(len(notes))]
	}
	return strings.Join(lines, "\n")
}
