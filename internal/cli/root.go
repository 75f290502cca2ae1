package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/lifeadvance/internal/config"
	"github.com/julianstephens/lifeadvance/internal/errors"
	"github.com/julianstephens/lifeadvance/internal/storage"
	"github.com/julianstephens/lifeadvance/internal/tracker"
)

// Context is handed to every command's Run method.
type Context struct {
	Store      storage.Provider
	Config     *config.Config
	ConfigPath string
	Location   *time.Location
	Now        func() time.Time
	Out        io.Writer
	In         io.Reader

	// NewID overrides ID generation, for tests.
	NewID func() string

	tracker *tracker.Tracker
}

func (ctx *Context) now() time.Time {
	if ctx.Now == nil {
		return time.Now()
	}
	return ctx.Now()
}

func (ctx *Context) out() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}

func (ctx *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(ctx.out(), format, args...)
}

func (ctx *Context) println(args ...interface{}) {
	fmt.Fprintln(ctx.out(), args...)
}

func (ctx *Context) windowDays() int {
	if ctx.Config == nil {
		return 0
	}
	return ctx.Config.CompletionWindowDays
}

// Tracker loads storage on first use and returns the loaded tracker.
func (ctx *Context) Tracker() (*tracker.Tracker, error) {
	if ctx.tracker != nil {
		return ctx.tracker, nil
	}
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	ctx.tracker = ctx.newTracker()
	return ctx.tracker, nil
}

func (ctx *Context) newTracker() *tracker.Tracker {
	t := tracker.New(ctx.Store, tracker.Options{
		Now:        ctx.now,
		Location:   ctx.Location,
		NewID:      ctx.NewID,
		WindowDays: ctx.windowDays(),
	})
	t.LoadAll()
	return t
}

// confirm asks a yes/no question on In, defaulting to no.
func (ctx *Context) confirm(prompt string) (bool, error) {
	in := ctx.In
	if in == nil {
		in = os.Stdin
	}
	ctx.printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// resolveID matches an exact ID or a unique ID prefix.
func resolveID(kind string, ids []string, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.Invalidf("%s id must not be empty", kind)
	}

	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, ref, errors.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", errors.Invalidf("%s id %q is ambiguous (%d matches)", kind, ref, len(matches))
	}
}

func idsOf[T any](items []T, idOf func(T) string) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = idOf(item)
	}
	return ids
}

// shortID is the display form of an ID; any unique prefix is accepted back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (ctx *Context) formatDate(t time.Time) string {
	loc := ctx.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}
