// Package lol (log of location) prints a timestamp, a level tag and the source location
// of every log line so that the origin of a message or error can be found quickly.
// Printing is filtered by a global level.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{"off", "fatal", "error", "warn", "info", "debug", "trace"}

type (
	// Ln prints its arguments separated by spaces.
	Ln func(a ...any)
	// F prints like fmt.Printf.
	F func(format string, a ...any)
	// S prints a spew.Sdump of its arguments.
	S func(a ...any)
	// C calls the closure only if the level is being printed.
	C func(closure func() string)
	// Chk prints a non-nil error and reports whether there was one.
	Chk func(e error) bool
	// Err constructs an error with fmt.Errorf, printing it at the call site.
	Err func(format string, a ...any) error

	// LevelPrinter is the set of printers for one level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
		Err
	}

	// LevelSpec names a level and colours its tag.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	LevelSpecs = []LevelSpec{
		{Off, "", NoSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}
	// NoTimeStamp disables the timestamp prefix, for reproducible output.
	NoTimeStamp atomic.Bool
)

// NoSprint returns nothing no matter what is given to it.
func NoSprint(a ...any) string { return "" }

// Log is a set of printers, one per level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error checkers, one per level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Errorf is the set of error constructors, one per level.
type Errorf struct {
	F, E, W, I, D, T Err
}

// Logger bundles the printers, checkers and error constructors.
type Logger struct {
	*Log
	*Check
	*Errorf
}

// Level is the highest level that is printed.
var Level atomic.Int32

// Main is the logger used by the log, chk and errorf packages.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check, Main.Errorf = New(os.Stderr)
	SetLoggers(Info)
}

// SetLoggers sets the level by number.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		level = Info
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the number of a named level, or Info if the name is unknown.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if strings.EqualFold(level, LevelNames[i]) {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the level by name.
func SetLogLevel(level string) { SetLoggers(GetLogLevel(level)) }

// JoinStrings renders anything into a space separated string.
func JoinStrings(a ...any) (s string) {
	var sb strings.Builder
	for i := range a {
		sb.WriteString(fmt.Sprint(a[i]))
		if i < len(a)-1 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

var msgCol = color.New(color.FgBlue).Sprint

func printLine(w io.Writer, l int32, text string) {
	_, _ = fmt.Fprintf(w,
		"%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		text,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns the printers for level l writing to w.
func GetPrinter(l int32, w io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(w, l, JoinStrings(a...))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(w, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(w, l, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			printLine(w, l, closure())
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				printLine(w, l, e.Error())
			}
			return true
		},
		Err: func(format string, a ...any) error {
			if Level.Load() >= l {
				printLine(w, l, fmt.Sprintf(format, a...))
			}
			return fmt.Errorf(format, a...)
		},
	}
}

// New creates the printers, checkers and error constructors writing to w.
func New(w io.Writer) (l *Log, c *Check, errorf *Errorf) {
	l = &Log{
		T: GetPrinter(Trace, w),
		D: GetPrinter(Debug, w),
		I: GetPrinter(Info, w),
		W: GetPrinter(Warn, w),
		E: GetPrinter(Error, w),
		F: GetPrinter(Fatal, w),
	}
	c = &Check{F: l.F.Chk, E: l.E.Chk, W: l.W.Chk, I: l.I.Chk, D: l.D.Chk, T: l.T.Chk}
	errorf = &Errorf{F: l.F.Err, E: l.E.Err, W: l.W.Err, I: l.I.Err, D: l.D.Err, T: l.T.Err}
	return
}

// TimeStamper generates the timestamp prefix.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the file and line of the caller skip frames up.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	return fmt.Sprintf("%s:%d", file, line)
}
