package dev

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/minireact/internal/logging"
)

func TestWatcher_Basic(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(testFile, []byte("<p>one</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
		Logger:   logging.NewNop(),
	})

	batches := make(chan []Change, 10)
	watcher.OnChange(func(c []Change) {
		batches <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start watcher in background
	go watcher.Start(ctx)
	waitRunning(t, watcher)
	// fsnotify registers watches synchronously in Start; give it a moment.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(testFile, []byte("<p>two</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case batch := <-batches:
		if len(batch) != 1 {
			t.Fatalf("batch = %v, want one change", batch)
		}
		if batch[0].Type != ChangePage {
			t.Errorf("Type = %v, want page", batch[0].Type)
		}
		if batch[0].Path != testFile {
			t.Errorf("Path = %q, want %q", batch[0].Path, testFile)
		}
	case <-time.After(2 * time.Second):
		t.Error("Timeout waiting for change")
	}

	watcher.Stop()
}

func TestWatcher_NewDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	watcher := NewWatcher(WatcherConfig{
		Paths:    []string{tmpDir},
		Debounce: 50 * time.Millisecond,
		Logger:   logging.NewNop(),
	})
	batches := make(chan []Change, 10)
	watcher.OnChange(func(c []Change) { batches <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Start(ctx)
	waitRunning(t, watcher)
	time.Sleep(50 * time.Millisecond)

	sub := filepath.Join(tmpDir, "css")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Let the directory event flush and the new watch register.
	drain(batches, 300*time.Millisecond)

	styles := filepath.Join(sub, "app.css")
	if err := os.WriteFile(styles, []byte("body{}"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case batch := <-batches:
			for _, c := range batch {
				if c.Path == styles && c.Type == ChangeCSS {
					return
				}
			}
		case <-deadline:
			t.Fatal("Timeout waiting for change in new directory")
		}
	}
}

func TestWatcher_StopAndContext(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}, Logger: logging.NewNop()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Start(ctx) }()
	waitRunning(t, watcher)

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	if watcher.IsRunning() {
		t.Error("IsRunning() = true after Start returned")
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{Paths: []string{filepath.Join(t.TempDir(), "nope")}, Logger: logging.NewNop()})
	err := watcher.Start(context.Background())
	if err == nil || !strings.Contains(err.Error(), "E142") {
		t.Errorf("Start() = %v, want E142", err)
	}
}

func waitRunning(t *testing.T, w *Watcher) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !w.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("watcher did not start")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func drain(ch chan []Change, d time.Duration) {
	timeout := time.After(d)
	for {
		select {
		case <-ch:
		case <-timeout:
			return
		}
	}
}

func TestShouldIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{
		Ignore: []string{".git", "node_modules", "*.swp", "build/out"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"/site/.git/HEAD", true},
		{"/site/node_modules/x/index.js", true},
		{"/site/index.html.swp", true},
		{"/site/build/out/app.js", true},
		{"/site/build/app.js", false},
		{"/site/index.html", false},
		{"/site/gitlog.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.shouldIgnore(tt.path); got != tt.want {
				t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"index.html", ChangePage},
		{"INDEX.HTM", ChangePage},
		{"app.css", ChangeCSS},
		{"dom.js", ChangeScript},
		{"main.wasm", ChangeScript},
		{"logo.png", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func dialReload(t *testing.T, r *ReloadServer) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(r)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("Dial() error = %v", err)
	}
	deadline := time.Now().Add(time.Second)
	for r.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn, func() {
		conn.Close()
		r.Close()
		srv.Close()
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("bad message %q: %v", data, err)
	}
	return msg
}

func TestReloadServer_Broadcast(t *testing.T) {
	r := NewReloadServer(logging.NewNop())
	conn, cleanup := dialReload(t, r)
	defer cleanup()

	if r.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", r.ClientCount())
	}

	r.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("Type = %q, want reload", msg.Type)
	}
}

func TestReloadServer_NotifyChanges(t *testing.T) {
	r := NewReloadServer(logging.NewNop())
	conn, cleanup := dialReload(t, r)
	defer cleanup()

	r.NotifyChanges(nil)

	r.NotifyChanges([]Change{{Path: "a.css", Type: ChangeCSS}})
	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeCSS || msg.File != "a.css" {
		t.Errorf("msg = %+v, want css a.css", msg)
	}

	r.NotifyChanges([]Change{{Path: "a.css", Type: ChangeCSS}, {Path: "index.html", Type: ChangePage}})
	if msg := readMessage(t, conn); msg.Type != ReloadTypeFull {
		t.Errorf("mixed changes Type = %q, want reload", msg.Type)
	}
}

func TestInjectClientScript(t *testing.T) {
	page := []byte("<html><body><p>x</p></BODY></html>")
	out := string(InjectClientScript(page))

	if !strings.Contains(out, ReloadPath) {
		t.Error("script should reference the reload path")
	}
	scriptAt := strings.Index(out, "<script>")
	bodyAt := strings.Index(out, "</BODY>")
	if scriptAt < 0 || scriptAt > bodyAt {
		t.Errorf("script should precede </body>: %s", out)
	}
	if string(page) != "<html><body><p>x</p></BODY></html>" {
		t.Error("input must not be modified")
	}

	bare := string(InjectClientScript([]byte("<p>fragment</p>")))
	if !strings.HasPrefix(bare, "<p>fragment</p><script>") {
		t.Errorf("fragment result = %s", bare)
	}
}
