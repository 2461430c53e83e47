package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T) (*Impl, string) {
	dir := filepath.Join(t.TempDir(), "uploads")
	fixed := time.UnixMilli(1700000000123)
	return &Impl{dir: dir, now: func() time.Time { return fixed }}, dir
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\cat pic.jpg`, "cat-pic.jpg"},
		{"オモロー.mp3", "オモロー.mp3"},
		{".hidden", "hidden"},
		{"", "file"},
		{"/", "file"},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	svc, dir := newTestService(t)

	name, err := svc.Save(context.Background(), "aho.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if name != "1700000000123-aho.png" {
		t.Errorf("unexpected filename %q", name)
	}

	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(b) != "png-bytes" {
		t.Errorf("unexpected content %q", b)
	}
}

func TestSave_NameCollision(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Save(context.Background(), "a.txt", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := svc.Save(context.Background(), "a.txt", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct names, both were %q", first)
	}
}
