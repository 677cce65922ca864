package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type messageType int

const (
	INFO = iota
	DEBUG
	ERROR
	CRITICAL_ERROR
)

type layer int

const (
	MAP_LAYER = iota
	SPELL_LAYER
	DICTIONARY_LAYER
	REPOSITORY_LAYER
	MAIN_LAYER
)

var layerNames = map[layer]string{
	MAP_LAYER: 			"map",
	SPELL_LAYER: 		"spell",
	DICTIONARY_LAYER: 	"dictionary",
	REPOSITORY_LAYER: 	"repository",
	MAIN_LAYER: 		"main",
}

type Logger struct {
	ch   	chan message
	wg   	*sync.WaitGroup
	debug 	atomic.Bool
	closed 	atomic.Bool
}

type message struct {
	text 	string
	t 		messageType
	layer 	layer
}

func NewLogger(info, error io.Writer, cap int) *Logger {
	log := &Logger{
		ch:   	make(chan message, cap),
		wg: 	new(sync.WaitGroup),
	}
	log.debug.Store(true)
	log.wg.Add(1)
	go func() {
		defer log.wg.Done()
		for msg := range log.ch {
			switch msg.t {
			case INFO, DEBUG:
				info.Write(log.compareMessage(msg))
			case ERROR, CRITICAL_ERROR:
				error.Write(log.compareMessage(msg))
			}
		}
	}()
	return log
}

// SetDebug toggles DEBUG messages; they are written by default.
func (log *Logger) SetDebug(enabled bool) {
	log.debug.Store(enabled)
}

func (log *Logger) compareMessage(msg message) []byte {
	var s strings.Builder
	s.WriteString(time.Now().Local().Format("2006-01-02 15:04:05"))
	switch msg.t {
	case INFO:
		s.WriteString(" INFO: ")
	case DEBUG:
		s.WriteString(" DEBUG: ")
	case ERROR:
		s.WriteString(" ERROR: ")
	case CRITICAL_ERROR:
		s.WriteString(" CRITICAL_ERROR: ")
	}
	s.WriteString(strings.TrimRight(msg.text, "\n"))
	s.WriteString(" on layer: " + msg.layer.String() + "\n")
	return []byte(s.String())
}

func (log *Logger) Write(msg message) {
	if log == nil {
		return
	}
	if msg.t == DEBUG && !log.debug.Load() || log.closed.Load() {
		return
	}
	select {
	case log.ch <- msg:
	default:
		fmt.Printf("log channel full, dropping log: %s\n", msg.text)
	}
}

// Close flushes pending messages. Writes after Close are discarded.
func (log *Logger) Close() {
	if log.closed.Swap(true) {
		return
	}
	close(log.ch)
	log.wg.Wait()
}

func NewMessage(layer layer, Type messageType, format string, v ...any) message {
	return message{
		text: fmt.Sprintf(format, v...),
		layer: layer,
		t: Type,
	}
}

func (l layer) String() string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(l))
}
