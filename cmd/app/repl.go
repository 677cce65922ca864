package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/box1bs/speller/internal/app/spellChecker"
	"github.com/box1bs/speller/pkg/logger"
)

const (
	prompt = `Enter a word to spell check or "quit" to exit: `
	quitCommand = "quit"
)

type checker interface {
	Check(string) spellChecker.Result
}

// runRepl checks whitespace separated words read from in until "quit" or EOF.
func runRepl(in io.Reader, out io.Writer, sc checker, log *logger.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		word := scanner.Text()
		if word == quitCommand {
			return nil
		}

		t := time.Now()
		res := sc.Check(word)
		log.Write(logger.NewMessage(logger.MAIN_LAYER, logger.DEBUG, "checked %q in %v", word, time.Since(t)))
		Present(out, word, res)
		fmt.Fprint(out, prompt)
	}
	return scanner.Err()
}

func Present(out io.Writer, word string, res spellChecker.Result) {
	if res.Correct {
		fmt.Fprintf(out, "\n%q is spelled correctly.\n\n", word)
		return
	}

	if len(res.Suggestions) == 0 {
		fmt.Fprint(out, "\nNo suggestions.\n\n")
		return
	}

	fmt.Fprintln(out, "\nDid you mean:")
	for _, s := range res.Suggestions {
		fmt.Fprintln(out, s)
	}
	fmt.Fprintln(out)
}
