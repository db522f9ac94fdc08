package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var seeds = []string{
	"",
	"switch (foo) {\n    case 0, 1:\n        someFunc(foo);\n    case 2:\n        someOtherFunc(foo);\n}\n",
	"switch (x) {\n\tcase a, b, c:\n\t\treturn 1;\n}\n",
	"switch (x) { case (a, b): break; default: a, b; }",
	"switch (x) { case /* one */ 1, /* two */ 2: }",
	"switch (x) { case 1, 2 }",
	"switch (x) { case , : }",
	"switch (x) { case a ? b, c : d: }",
	"switch (a) { case 1: switch (b) { case 2, 3: } }",
	"\ufeffswitch (x) {\r\n  case 'a', 'b':\r\n    y();\r\n}\r\n",
	"var s = `tpl ${a, b}`; switch (s) { case f(a, b), g(): }",
	"switch (x) { case x = 1, y += 2: }",
	"/* unterminated",
	"'unterminated string\nswitch (",
	"{{{{{{{{{{",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
