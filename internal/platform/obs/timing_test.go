package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prev)
		log.SetFlags(flags)
	})
	return &buf
}

func TestWithRequestID(t *testing.T) {
	ctx, id := WithRequestID(context.Background(), "abc")
	if id != "abc" || RequestID(ctx) != "abc" {
		t.Fatalf("id = %q, ctx id = %q", id, RequestID(ctx))
	}

	_, generated := WithRequestID(context.Background(), "")
	if len(generated) != 36 {
		t.Fatalf("generated id = %q, want a uuid", generated)
	}

	if RequestID(context.Background()) != "" {
		t.Fatalf("empty context has a request id")
	}
}

func TestTimeLogsOperation(t *testing.T) {
	buf := captureLog(t)
	ctx, _ := WithRequestID(context.Background(), "r1")

	func() (err error) {
		defer Time(ctx, "session.command", "cmd", "toggleUnit")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "session.command")(&err)
		return errors.New("boom")
	}()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "req_id=r1 op=session.command cmd=toggleUnit dur=") {
		t.Fatalf("line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "err=boom") {
		t.Fatalf("line = %q", lines[1])
	}
}
