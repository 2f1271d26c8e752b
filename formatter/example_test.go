package formatter_test

import (
	"fmt"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
)

func ExampleConsole() {
	f := formatter.NewConsole(formatter.Config{})

	info := &core.Entry{Level: core.InfoLevel, Message: "cluster is up"}
	warn := &core.Entry{Level: core.WarnLevel, Message: "node n-2 is slow"}
	fail := &core.Entry{Level: core.ErrorLevel, Message: "node n-3 unreachable"}

	fmt.Println(string(f.Format(info)))
	fmt.Println(string(f.Format(warn)))
	fmt.Println(string(f.Format(fail)))
	// Output:
	// >>> cluster is up
	// *** WARN - node n-2 is slow
	// !!! ERROR - node n-3 unreachable
}
