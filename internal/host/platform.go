package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/blakepell/ArcaneScript/internal/value"
)

// registerPlatform installs the host/platform builtins: sleep, input,
// terminal geometry, cursor positioning, and screen clearing. Terminal
// geometry goes through golang.org/x/term rather than a raw
// ioctl(TIOCGWINSZ) syscall.
func registerPlatform(r *Registry, out io.Writer, in io.Reader) {
	r.Register("sleep", func(args []value.Value) value.Value {
		if e, ok := wantArgs("sleep", len(args), 1); !ok {
			return e
		}
		if e, ok := wantKind("sleep", args[0], value.Int, "first"); !ok {
			return e
		}
		ms := args[0].IntVal
		if ms < 0 {
			ms = 0
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return value.NewNull()
	})

	reader := bufio.NewReader(in)
	r.Register("input", func(args []value.Value) value.Value {
		if e, ok := wantArgsRange("input", len(args), 0, 1); !ok {
			return e
		}
		if len(args) == 1 {
			if e, ok := wantKind("input", args[0], value.String, "first"); !ok {
				return e
			}
			fmt.Fprint(out, args[0].StrVal)
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return value.NewNull()
		}
		return value.NewString(strings.TrimRight(line, "\r\n"))
	})

	r.Register("terminal_width", func(args []value.Value) value.Value {
		if e, ok := wantArgs("terminal_width", len(args), 0); !ok {
			return e
		}
		w, _ := terminalSize()
		return value.NewInt(int64(w))
	})

	r.Register("terminal_height", func(args []value.Value) value.Value {
		if e, ok := wantArgs("terminal_height", len(args), 0); !ok {
			return e
		}
		_, h := terminalSize()
		return value.NewInt(int64(h))
	})

	r.Register("get_terminal_size", func(args []value.Value) value.Value {
		if e, ok := wantArgs("get_terminal_size", len(args), 0); !ok {
			return e
		}
		w, h := terminalSize()
		return value.NewArray([]value.Value{value.NewInt(int64(w)), value.NewInt(int64(h))})
	})

	r.Register("pos", func(args []value.Value) value.Value {
		if e, ok := wantArgs("pos", len(args), 2); !ok {
			return e
		}
		if e, ok := wantKind("pos", args[0], value.Int, "first"); !ok {
			return e
		}
		if e, ok := wantKind("pos", args[1], value.Int, "second"); !ok {
			return e
		}
		fmt.Fprintf(out, "\033[%d;%dH", args[0].IntVal, args[1].IntVal)
		return value.NewNull()
	})

	r.Register("cls", func(args []value.Value) value.Value {
		if e, ok := wantArgs("cls", len(args), 0); !ok {
			return e
		}
		fmt.Fprint(out, "\033[2J\033[H")
		return value.NewNull()
	})
}

func terminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 25
	}
	return w, h
}
