/*
Package scanning is a multi-package Go repo focused on slice scanning, with cursors, matchers, and composable
peek combinators.

Goal

This repo aspires to be the best toolset for creating hand-written recursive-descent parsers over flat,
random-access input in Golang.

Exported Packages

The following packages are currently exported:

 * github.com/tekwizely/go-scanning/scan
 * github.com/tekwizely/go-scanning/token


Scan

Base components of the scanning core: the cursor over an immutable element slice, the matcher / visitor /
peekable capabilities, the alternative combinators (first-match recognizer, first-match acceptor,
shortest-match peeker), and the peek modifiers (Until, Last, delimited groups).

Some Features of the Core:

 * Generic over the element type, bytes being the archetypal case
 * Rollback on miss, via cursor markers
 * Non-consuming lookahead with structured find results
 * Single-pass balanced / quoted group scanning with escape handling


Token

A pre-built vocabulary of single-byte and short-sequence tokens (brackets, quotes, punctuation,
operators, whitespace, newline forms) implementing all of the core capabilities, along with ready-made
balanced-paren and quoted-group peekables.


Links

You can learn more online:

  * GitHub https://github.com/TekWizely/go-scanning
  * GoDoc  https://godoc.org/github.com/tekwizely/go-scanning


NOTE

Although useful in its own right, this file (doc.go) mostly exists to prevent pre-commit hooks from generating
"no file" errors against the root folder.


License

The go-scanning repo and all contained packages are released under the MIT License.

*/
package scanning
