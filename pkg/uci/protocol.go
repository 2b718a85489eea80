package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ChizhovVadim/CounterBoard/pkg/common"
)

var ErrUnknownCommand = errors.New("command not found")

type Engine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

// Protocol owns the current position and answers commands on out.
type Protocol struct {
	name      string
	author    string
	version   string
	options   []Option
	engine    Engine
	position  *common.Position
	out       io.Writer
	showBoard bool
}

func New(name, author, version string, engine Engine, out io.Writer, showBoard bool) *Protocol {
	var uci = &Protocol{
		name:      name,
		author:    author,
		version:   version,
		engine:    engine,
		position:  common.NewPosition(),
		out:       out,
		showBoard: showBoard,
	}
	uci.options = []Option{
		&BoolOption{Name: "ShowBoard", Value: &uci.showBoard},
	}
	return uci
}

// Position returns the position the next command will work on.
func (uci *Protocol) Position() *common.Position {
	return uci.position
}

func (uci *Protocol) Handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(ctx context.Context, fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	}

	if h == nil {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, commandName)
	}

	return h(ctx, fields)
}

func (uci *Protocol) uciCommand(ctx context.Context, fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.out, option.UciString())
	}
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(ctx context.Context, fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	for _, option := range uci.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return errors.New("unhandled option")
}

func (uci *Protocol) isReadyCommand(ctx context.Context, fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

// positionCommand replaces the current position. Moves that do not parse or
// are not valid for the side to move are skipped.
func (uci *Protocol) positionCommand(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return errors.New("invalid position command")
	}
	var args = fields
	var token = args[0]
	var movesIndex = findIndexString(args, "moves")
	var p *common.Position
	if token == "startpos" {
		p = common.NewPosition()
	} else if token == "fen" {
		var fen string
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
		var err error
		p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
	} else {
		return errors.New("invalid position command")
	}
	if movesIndex >= 0 {
		for _, smove := range args[movesIndex+1:] {
			p.MakeMoveLAN(smove)
		}
	}
	uci.position = p
	if uci.showBoard {
		fmt.Fprint(uci.out, p.Dump())
	}
	return nil
}

func (uci *Protocol) goCommand(ctx context.Context, fields []string) error {
	var searchResult = uci.engine.Search(ctx, common.SearchParams{
		Position: uci.position,
	})
	var bestMove = common.MoveEmpty
	if len(searchResult.MainLine) != 0 {
		bestMove = searchResult.MainLine[0]
	}
	fmt.Fprintf(uci.out, "bestmove %v\n", bestMove)
	return nil
}

func (uci *Protocol) uciNewGameCommand(ctx context.Context, fields []string) error {
	uci.engine.Clear()
	uci.position = common.NewPosition()
	return nil
}

func findIndexString(slice []string, value string) int {
	for p, v := range slice {
		if v == value {
			return p
		}
	}
	return -1
}
