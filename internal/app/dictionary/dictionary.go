// Package dictionary turns text into the word stream fed to the spell checker.
//
// A word is a maximal run of letters, digits and apostrophes. Case is kept
// as is.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

var ErrEmptyDictionary = errors.New("dictionary is empty")

const (
	initialBufSize = 64 * 1024
	maxTokenSize = 10 * 1024 * 1024
)

type Reader struct {
	sc 		*bufio.Scanner
	closer 	io.Closer
	words 	int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, initialBufSize), maxTokenSize)
	sc.Split(ScanWords)
	return &Reader{sc: sc}
}

// Open reads the dictionary file at path. With an empty encoding label the
// charset is sniffed from the content, falling back to windows-1252 for
// non UTF-8 bytes.
func Open(path, encoding string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}

	var decoded io.Reader
	if encoding != "" {
		decoded, err = charset.NewReaderLabel(encoding, file)
	} else {
		decoded, err = charset.NewReader(file, "text/plain")
	}
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("decode dictionary %s: %w", path, err)
	}

	r := NewReader(decoded)
	r.closer = file
	return r, nil
}

// All yields words until the input is exhausted or fails; see Err.
func (r *Reader) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.sc.Scan() {
			r.words++
			if !yield(r.sc.Text()) {
				return
			}
		}
	}
}

func (r *Reader) Err() error {
	if err := r.sc.Err(); err != nil {
		return err
	}
	if r.words == 0 {
		return ErrEmptyDictionary
	}
	return nil
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\''
}

// ScanWords is a bufio.SplitFunc returning word tokens.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for width := 0; start < len(data); start += width {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if isWordRune(r) {
			break
		}
	}

	for width, i := 0, start; i < len(data); i += width {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return start, nil, nil
		}
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if !isWordRune(r) {
			return i + width, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
