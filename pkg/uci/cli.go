package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds lines from r to handler one at a time until "quit" or end of input.
// Handler errors are logged and do not stop the loop.
func RunCli(ctx context.Context, logger *log.Logger, r io.Reader, handler CommandHandler) error {
	g, ctx := errgroup.WithContext(ctx)
	var commands = make(chan string)

	g.Go(func() error {
		defer close(commands)
		return readCommands(ctx, r, commands)
	})

	g.Go(func() error {
		for commandLine := range commands {
			var err = safeHandle(ctx, handler, commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
		return nil
	})

	return g.Wait()
}

// readCommands reads whole lines of any length, so one oversized line cannot end the loop.
func readCommands(ctx context.Context, r io.Reader, commands chan<- string) error {
	var reader = bufio.NewReader(r)
	for {
		var line, err = reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		var commandLine = strings.TrimSpace(line)
		if commandLine == "quit" {
			return nil
		}
		if commandLine != "" {
			select {
			case commands <- commandLine:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func safeHandle(ctx context.Context, handler CommandHandler, commandLine string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %q panicked: %v", commandLine, r)
		}
	}()
	return handler.Handle(ctx, commandLine)
}
