// Package fixtures holds the small placeholder functions and values printed
// by the fixtures command.
package fixtures

import (
	"fmt"
	"io"
)

// LongLine is a deliberately long string value.
const LongLine = "This string is intentionally very long to demonstrate line length formatting and should be wrapped or split across multiple lines according to our 120-character limit and this makes it even longer to really test the formatter"

// SumAll returns x + y plus every element of z. A nil z adds nothing.
func SumAll(x, y int, z []int) int {
	result := x + y
	for _, v := range z {
		result += v
	}
	return result
}

// Combine returns 2a+b+c+d+e+f when a is positive, and 0 otherwise.
func Combine(a, b, c, d, e, f int) int {
	if a > 0 {
		x := a * 2
		y := b + c
		return x + y + d + e + f
	}
	return 0
}

// DocstringMessage returns a fixed demonstration message.
func DocstringMessage() string {
	return "Docstring formatting demonstration"
}

// WarnMissingDoc writes the undocumented-function warning to w.
func WarnMissingDoc(w io.Writer) {
	fmt.Fprintln(w, "Missing docstring should be flagged")
}

// NumberList returns the integers 1 through 30.
func NumberList() []int {
	list := make([]int, 30)
	for i := range list {
		list[i] = i + 1
	}
	return list
}

// KeyValues returns key1..key5 mapped to value1..value5.
func KeyValues() map[string]string {
	m := make(map[string]string, 5)
	for i := 1; i <= 5; i++ {
		m[fmt.Sprintf("key%d", i)] = fmt.Sprintf("value%d", i)
	}
	return m
}
