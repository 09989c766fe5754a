// Package lineio reads and writes text lines as effects.
//
// A single worker owns the reader and the writer, so requests from any number
// of streams are served one at a time in the order they were performed.
//
// A process writing to a closed pipe on stdout or stderr is killed by SIGPIPE
// unless it ignores the signal (signal.Ignore(syscall.SIGPIPE)); only then does
// the write fail with EPIPE and reach ErrBrokenPipe.
package lineio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"syscall"

	"github.com/on-the-ground/effect_ive_stream/effects"
	"github.com/on-the-ground/effect_ive_stream/effects/binding"
	"github.com/on-the-ground/effect_ive_stream/effects/configkeys"
	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
	"github.com/on-the-ground/effect_ive_stream/effects/log"
	"github.com/on-the-ground/effect_ive_stream/shared/helper"
	"go.uber.org/multierr"
)

// ErrBrokenPipe is wrapped by WriteLine when the reading side of the output has gone away.
var ErrBrokenPipe = errors.New("broken pipe")

const (
	defaultBufferSize    = 1
	defaultWriteAttempts = 3
)

type op uint8

const (
	opRead op = iota
	opWrite
)

type request struct {
	op   op
	line string
	// done is the caller's ctx.Done(); a request whose caller left is skipped.
	done <-chan struct{}
}

type reply struct {
	line string
	ok   bool
}

type handler struct {
	scanner       *bufio.Scanner
	w             io.Writer
	writeAttempts int
}

func (h *handler) handle(_ context.Context, req request) (reply, error) {
	select {
	case <-req.done:
		return reply{}, context.Canceled
	default:
	}
	switch req.op {
	case opRead:
		return h.read()
	default:
		return reply{}, h.write(req.line)
	}
}

func (h *handler) read() (reply, error) {
	if h.scanner.Scan() {
		return reply{line: h.scanner.Text(), ok: true}, nil
	}
	if err := h.scanner.Err(); err != nil {
		return reply{}, fmt.Errorf("read line: %w", err)
	}
	return reply{}, nil
}

// write retries short writes with the bytes still unwritten.
func (h *handler) write(line string) error {
	buf := []byte(line + "\n")
	err := helper.RetryIf(h.writeAttempts, isShortWrite, func() error {
		n, err := h.w.Write(buf)
		buf = buf[n:]
		if err == nil && len(buf) > 0 {
			err = io.ErrShortWrite
		}
		return err
	})
	switch {
	case err == nil:
		return nil
	case isBrokenPipe(err):
		return fmt.Errorf("write line: %w: %w", ErrBrokenPipe, err)
	default:
		return fmt.Errorf("write line: %w", err)
	}
}

func isShortWrite(err error) bool {
	return errors.Is(err, io.ErrShortWrite)
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

// WithEffectHandler registers a line handler reading from r and writing to w.
//
// Settings are read through the binding effect when a binding handler is
// registered in ctx (configkeys.ConfigEffectLineIO*): the request buffer size,
// the longest accepted input line and the number of attempts for a short write.
//
// r and w stay open after teardown; see WithClosingEffectHandler.
func WithEffectHandler(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
) (context.Context, func() context.Context) {
	return withEffectHandler(ctx, r, w, func() {})
}

// WithClosingEffectHandler is WithEffectHandler closing r and w on teardown.
// Close failures are combined and logged through the log effect when one is registered.
func WithClosingEffectHandler(
	ctx context.Context,
	r io.ReadCloser,
	w io.WriteCloser,
) (context.Context, func() context.Context) {
	return withEffectHandler(ctx, r, w, func() {
		if err := closeAll(r, w); err != nil {
			_ = log.TryLogEff(ctx, log.LogError, "failed to close line io", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
}

func withEffectHandler(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	teardown func(),
) (context.Context, func() context.Context) {
	bufferSize := settingOf(ctx, configkeys.ConfigEffectLineIOHandlerBufferSize, defaultBufferSize)
	maxLineSize := settingOf(ctx, configkeys.ConfigEffectLineIOMaxLineSize, bufio.MaxScanTokenSize)
	writeAttempts := settingOf(ctx, configkeys.ConfigEffectLineIOWriteAttempts, defaultWriteAttempts)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(maxLineSize, 4096)), maxLineSize)
	h := &handler{scanner: scanner, w: w, writeAttempts: writeAttempts}

	return effects.WithResumableEffectHandler(
		ctx,
		bufferSize,
		effectmodel.EffectLineIO,
		h.handle,
		teardown,
	)
}

// settingOf reads a positive int setting, falling back to def.
func settingOf(ctx context.Context, key string, def int) int {
	n, err := binding.GetOrDefault(ctx, key, def)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func closeAll(r io.Closer, w io.Closer) error {
	err := r.Close()
	if !sameCloser(r, w) {
		err = multierr.Append(err, w.Close())
	}
	return err
}

// sameCloser reports whether a and b are one value, such as a socket used both ways.
func sameCloser(a, b io.Closer) bool {
	ta := reflect.TypeOf(a)
	return ta == reflect.TypeOf(b) && ta.Comparable() && a == b
}

func perform(ctx context.Context, req request) (reply, error) {
	req.done = ctx.Done()
	resultCh := effects.PerformResumableEffect[request, reply](ctx, effectmodel.EffectLineIO, req)
	select {
	case res := <-resultCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return reply{}, ctx.Err()
	}
}

// ReadLine reads the next line without its line ending. ok is false at end of input.
// A read still queued when ctx is done is skipped and consumes no line; a read
// the handler already started keeps its line even though ReadLine returns ctx.Err().
// Panics if no line handler is registered.
func ReadLine(ctx context.Context) (line string, ok bool, err error) {
	rep, err := perform(ctx, request{op: opRead})
	return rep.line, rep.ok, err
}

// WriteLine writes line followed by a newline.
// A closed output is reported with an error wrapping ErrBrokenPipe.
// Panics if no line handler is registered.
func WriteLine(ctx context.Context, line string) error {
	_, err := perform(ctx, request{op: opWrite, line: line})
	return err
}
