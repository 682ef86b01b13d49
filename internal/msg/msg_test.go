package msg

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndentWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &IndentWriter{Indent: "    ", W: &buf}

	if _, err := w.Write([]byte("first\nsecond\n")); err != nil {
		t.Fatal(err)
	}

	want := "    first\n    second\n"
	if buf.String() != want {
		t.Errorf("wrong output:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestIndentWriterSplitWrites(t *testing.T) {
	var buf bytes.Buffer
	w := &IndentWriter{Indent: "  ", W: &buf}

	// A line split across writes must only be indented once.
	for _, chunk := range []string{"par", "tial", "\nnext\n"} {
		if _, err := w.Write([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}

	want := "  partial\n  next\n"
	if buf.String() != want {
		t.Errorf("wrong output:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestProgressBarFinish(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(100, 2, &buf)

	if _, err := pb.Write(make([]byte, 50)); err != nil {
		t.Fatal(err)
	}
	pb.Finish()

	out := buf.String()
	if !strings.Contains(out, "100%") {
		t.Errorf("finished bar should read 100%%: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Finish should end the line")
	}
}
