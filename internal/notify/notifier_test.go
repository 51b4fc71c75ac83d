package notify

import (
	"sync"
	"testing"
	"time"
)

type recordingListener struct {
	mu        sync.Mutex
	shown     []Notification
	dismissed []string
}

func (l *recordingListener) NotificationShown(n Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shown = append(l.shown, n)
}

func (l *recordingListener) NotificationDismissed(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dismissed = append(l.dismissed, id)
}

func (l *recordingListener) counts() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.shown), len(l.dismissed)
}

func TestShowNotifiesListener(t *testing.T) {
	n := New(time.Minute)
	defer n.Close()
	l := &recordingListener{}
	n.SetListener(l)

	id := n.Show("saved", VariantSuccess)
	if id == "" {
		t.Fatal("expected an id")
	}

	shown, dismissed := l.counts()
	if shown != 1 || dismissed != 0 {
		t.Fatalf("shown=%d dismissed=%d", shown, dismissed)
	}
	if got := l.shown[0]; got.Message != "saved" || got.Variant != VariantSuccess {
		t.Fatalf("unexpected notification %+v", got)
	}
}

func TestAutoDismiss(t *testing.T) {
	n := New(10 * time.Millisecond)
	defer n.Close()
	l := &recordingListener{}
	n.SetListener(l)

	n.Show("transient", VariantDefault)

	deadline := time.After(time.Second)
	for {
		if _, dismissed := l.counts(); dismissed == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("notification never auto-dismissed")
		case <-time.After(time.Millisecond):
		}
	}
	if len(n.Active()) != 0 {
		t.Fatal("expected no active notifications")
	}
}

func TestDismissOneLeavesOthers(t *testing.T) {
	n := New(time.Minute)
	defer n.Close()

	first := n.Show("one", VariantDefault)
	n.Show("two", VariantError)

	n.Dismiss(first)

	active := n.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 active, got %d", len(active))
	}
	if active[0].Message != "two" {
		t.Fatalf("wrong survivor: %q", active[0].Message)
	}
}

func TestDismissUnknownID(t *testing.T) {
	n := New(time.Minute)
	defer n.Close()
	n.Dismiss("nope") // must not panic
}

func TestCloseDropsPending(t *testing.T) {
	n := New(time.Minute)
	n.Show("pending", VariantDefault)

	n.Close()

	if len(n.Active()) != 0 {
		t.Fatal("expected close to drop pending notifications")
	}
	if id := n.Show("late", VariantDefault); id != "" {
		t.Fatal("expected Show after Close to be rejected")
	}
}
