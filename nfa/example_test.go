package nfa_test

import (
	"fmt"

	"github.com/arbelos/arbelos/nfa"
)

// ExampleNFA_Recognizes matches the canonical (A*B|AC)D pattern.
func ExampleNFA_Recognizes() {
	n, err := nfa.Compile("(A*B|AC)D")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, text := range []string{"AAAABD", "ACD", "AAAAC"} {
		fmt.Printf("%s %v\n", text, n.Recognizes(text))
	}
	// Output:
	// AAAABD true
	// ACD true
	// AAAAC false
}
