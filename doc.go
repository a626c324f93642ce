/*
Package minij is the analysis engine of a code-inspection tool for MiniJava,
a small Java-like teaching language.

An analysis turns source text into three products: a positioned token stream,
a flat symbol table of declared classes, methods, parameters and variables,
and a list of lexical and syntactic diagnostics. Package structure is
as follows:

■ scanner: Package scanner splits source text into classified tokens.

■ parser: Package parser implements a recursive-descent parser which builds
the symbol table.

■ symtab: Package symtab provides symbol entries, the append-only symbol
table and the scope tree used for owner labels.

■ inspect: Package inspect chains scanner and parser for clients.

■ config: Package config holds analysis options, loaded from TOML or YAML.

The base package contains the token model and the bounded diagnostics list,
which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package minij
