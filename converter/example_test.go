package converter_test

import (
	"errors"
	"fmt"

	"github.com/rgonek/delta-markdown-converter/converter"
)

func ExampleToMarkdown() {
	md, err := converter.ToMarkdown(`{"ops":[
		{"insert":"Shopping"},
		{"insert":"\n","attributes":{"header":2}},
		{"insert":"milk","attributes":{"bold":true}},
		{"insert":" and eggs\n"}
	]}`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(md)
	// Output:
	// ## Shopping
	// **milk** and eggs
}

func ExampleParseError() {
	_, err := converter.ToMarkdown(`{"ops":[{"insert":"x","attributes":{"bold":"yes"}}]}`)
	fmt.Println(errors.Is(err, converter.ErrInvalidBoldAttribute))
	fmt.Println(err)
	// Output:
	// true
	// bold attribute must have type of bool: "yes"
}
