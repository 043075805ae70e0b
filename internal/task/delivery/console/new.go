package console

import (
	"bufio"
	"io"
	"time"

	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
)

// Handler runs the interactive text menu.
type Handler interface {
	Run() error
}

type handler struct {
	l     pkgLog.Logger
	uc    task.UseCase
	in    *bufio.Scanner
	out   io.Writer
	today func() time.Time
}

// New creates a console handler reading from in and writing to out.
// today supplies the reference date for suggestions on each listing.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer, today func() time.Time) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		in:    bufio.NewScanner(in),
		out:   out,
		today: today,
	}
}
