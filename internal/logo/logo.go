package logo

import (
	"fmt"
	"io"
)

func PrintLogo(w io.Writer) {
	fmt.Fprintln(w, `
Welcome to speller!
===================
   ___ _ __   ___| | | ___ _ __
  / __| '_ \ / _ \ | |/ _ \ '__|
  \__ \ |_) |  __/ | |  __/ |
  |___/ .__/ \___|_|_|\___|_|
      |_|
Type a word to check it, "quit" to exit.`)
}
