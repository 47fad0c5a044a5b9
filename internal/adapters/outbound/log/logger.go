package log

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger registers the application logger. Components prefix their messages with
// their own name ("SessionFactory: ...").
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"smartread "`
	Output string `config:"LOG_OUTPUT" default:"stdout"`
	UTC    string `config:"LOG_UTC" default:"true"`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	var out io.Writer
	switch il.Output {
	case "stdout", "":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		return ctx, fmt.Errorf("unsupported LOG_OUTPUT %q: use stdout or stderr", il.Output)
	}

	flags := log.LstdFlags | log.Lmsgprefix
	if il.UTC == "true" {
		flags |= log.LUTC
	}

	depend.Register(log.New(out, il.Prefix, flags))
	return ctx, nil
}
