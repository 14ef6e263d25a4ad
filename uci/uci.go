/*
 * Kestrel - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package uci contains the UciHandler data structure and functionality to
// handle the UCI protocol communication between the Chess User Interface
// and the chess engine. Only a narrow command subset is supported: there
// is no setoption, no ponder, no time management and no "position fen" -
// see handleReceivedCommand.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"sort"
	"strings"

	logging2 "github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kestrel-chess/kestrel/board"
	"github.com/kestrel-chess/kestrel/config"
	"github.com/kestrel-chess/kestrel/logging"
	"github.com/kestrel-chess/kestrel/movegen"
	"github.com/kestrel-chess/kestrel/search"
	. "github.com/kestrel-chess/kestrel/types"
)

var out = message.NewPrinter(language.German)
var log = logging.GetLog()

// UciHandler handles all communication with the chess ui via UCI and
// runs the search. Create an instance with NewUciHandler().
type UciHandler struct {
	InIo       *bufio.Scanner
	OutIo      *bufio.Writer
	myPosition board.Board
	mySearch   *search.Search
	uciLog     *logging2.Logger
}

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
//  Example:
// 		u.InIo = bufio.NewScanner(os.Stdin)
//		u.OutIo = bufio.NewWriter(os.Stdout)
func NewUciHandler() *UciHandler {
	return &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		myPosition: board.StartPosition(),
		mySearch:   search.NewSearch(),
		uciLog:     logging.GetUciLog(),
	}
}

// Loop starts the main loop to receive commands through
// input stream (pipe or user)
func (u *UciHandler) Loop() {
	u.loop()
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

func (u *UciHandler) loop() {
	// infinite loop until "quit" command or EOF is received
	for u.InIo.Scan() {
		if u.handleReceivedCommand(u.InIo.Text()) {
			return
		}
	}
	// EOF on stdin: exit gracefully
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handleReceivedCommand dispatches a single UCI line. It returns true
// when the caller should stop reading (the "quit" command).
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	u.uciLog.Infof("<< %s", cmd)
	tokens := regexWhiteSpace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		u.uciCommand()
	case "isready":
		u.isReadyCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand()
	case "time", "otim":
		// accepted and ignored
	case "DEBUG":
		u.debugCommand(tokens)
	default:
		msg := out.Sprintf("ERROR: unknown command: %s", cmd)
		u.send(msg)
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (u *UciHandler) uciCommand() {
	u.send(out.Sprintf("id name %s", config.Settings.Engine.Name))
	u.send(out.Sprintf("id author %s", config.Settings.Engine.Author))
	u.send("uciok")
}

func (u *UciHandler) isReadyCommand() {
	u.send("readyok")
}

// positionCommand resets the position and optionally replays a move
// list. "position fen ..." is not implemented and is rejected with an
// ERROR: line instead.
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.send("ERROR: command 'position' malformed, missing subcommand")
		return
	}

	i := 1
	switch tokens[i] {
	case "startpos":
		u.myPosition = board.StartPosition()
		i++
	case "fen":
		u.send("ERROR: command 'position fen' is not supported")
		return
	default:
		u.send(out.Sprintf("ERROR: command 'position' malformed: %s", strings.Join(tokens, " ")))
		return
	}

	if i >= len(tokens) {
		return
	}
	if tokens[i] != "moves" {
		u.send(out.Sprintf("ERROR: command 'position' malformed, expected 'moves': %s", strings.Join(tokens, " ")))
		return
	}
	i++
	for ; i < len(tokens); i++ {
		m, ok := movegen.MoveFromUCI(u.myPosition, tokens[i])
		if !ok {
			u.send(out.Sprintf("ERROR: invalid move '%s'", tokens[i]))
			log.Warningf("invalid move in position command: %s", tokens[i])
			continue
		}
		u.myPosition = u.myPosition.ApplyMove(m)
	}
}

// goCommand runs the fixed-depth search regardless of the suffix
// tokens following "go" - time controls are accepted elsewhere but
// never acted on. It emits one "info" line per root move, then a
// single "bestmove" line. Results are shuffled before the final
// stable sort so that equal-scoring root moves are picked at random,
// giving the engine some stylistic variety between games.
func (u *UciHandler) goCommand() {
	results := u.mySearch.Run(u.myPosition)
	if len(results) == 0 {
		u.send("bestmove (none)")
		return
	}

	rand.Shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Value < results[j].Value
	})

	for _, r := range results {
		u.send(out.Sprintf("info depth %d score %s pv %s",
			config.Settings.Search.Depth, r.Value.String(), r.Move.StringUci()))
	}

	best := results[len(results)-1].Move
	u.send(out.Sprintf("bestmove %s", best.StringUci()))
}

// debugCommand implements human-readable internal-state dumps. These
// are not part of the UCI contract and exist purely for interactive
// inspection while developing.
func (u *UciHandler) debugCommand(tokens []string) {
	if len(tokens) < 2 {
		u.send("ERROR: command 'DEBUG' requires a subcommand")
		return
	}
	switch tokens[1] {
	case "showboard":
		u.send(u.myPosition.String())
	case "showbitboards":
		u.send(u.bitboardDump())
	case "showmoves":
		u.send(movegen.LegalMoves(u.myPosition).StringUci())
	case "showpmoves":
		u.send(movegen.PseudoMoves(u.myPosition).StringUci())
	case "color":
		u.send(u.myPosition.SideToMove.String())
	default:
		u.send(out.Sprintf("ERROR: unknown DEBUG subcommand: %s", tokens[1]))
	}
}

// bitboardDump renders the twelve raw piece bitboards as hex words,
// kings first, one color block after the other.
func (u *UciHandler) bitboardDump() string {
	var sb strings.Builder
	for c := White; c <= Black; c++ {
		if c == White {
			sb.WriteString("White K/Q/R/B/N/P:\n")
		} else {
			sb.WriteString("Black K/Q/R/B/N/P:\n")
		}
		for _, pt := range []PieceType{King, Queen, Rook, Bishop, Knight, Pawn} {
			sb.WriteString(fmt.Sprintf("%016X\n", uint64(u.myPosition.Pieces[c][pt])))
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (u *UciHandler) send(s string) {
	u.uciLog.Infof(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
