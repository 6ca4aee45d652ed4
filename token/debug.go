package token

import "fmt"

func PrintTokens(toks []Token, msg string) {
	fmt.Printf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Printf("\t%s %q line=%d off=%d\n", t.Type, t.Text, t.Line, t.Offset)
	}
}
