/*
Command minij analyzes MiniJava source files. It prints tokens, symbol
tables and diagnostics, or runs an interactive session.

   minij symbols Example.java
   minij check --error-limit 10 < Example.java
   minij repl

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/minij/cmd/minij/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
