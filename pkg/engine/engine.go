package engine

import (
	"context"
	"time"

	. "github.com/ChizhovVadim/CounterBoard/pkg/common"
)

// Engine answers "go" with the first valid move in enumeration order.
type Engine struct {
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Clear() {
	e.nodes = 0
}

// Nodes is the number of moves enumerated since the last Clear.
func (e *Engine) Nodes() int64 {
	return e.nodes
}

func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	var start = time.Now()
	var result SearchInfo
	if searchParams.Position == nil || ctx.Err() != nil {
		return result
	}
	var ml = GenerateMoves(searchParams.Position)
	e.nodes += int64(len(ml))
	result.Nodes = int64(len(ml))
	if len(ml) != 0 {
		result.MainLine = []Move{ml[0]}
	}
	result.Time = time.Since(start)
	return result
}
