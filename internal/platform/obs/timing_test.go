package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestWithRequestID(t *testing.T) {
	ctx, id := WithRequestID(context.Background(), "abc")
	if id != "abc" || RequestID(ctx) != "abc" {
		t.Fatalf("expected given id, got %q / %q", id, RequestID(ctx))
	}

	ctx, id = WithRequestID(context.Background(), "")
	if id == "" || RequestID(ctx) != id {
		t.Fatalf("expected generated id, got %q / %q", id, RequestID(ctx))
	}
}

func TestTimeLogsError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	ctx, _ := WithRequestID(context.Background(), "r1")
	err := errors.New("boom")
	Time(ctx, "test.op")(&err)

	out := buf.String()
	for _, want := range []string{"req_id=r1", "op=test.op", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %q missing %q", out, want)
		}
	}
}
