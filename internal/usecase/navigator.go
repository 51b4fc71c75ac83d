package usecase

import (
	"fmt"

	"github.com/vibe-english-platform/vocabcli/internal/entity"
)

// View is one of the three top-level screens.
type View string

const (
	ViewLearn          View = "learn"
	ViewCollections    View = "collections"
	ViewLearningCenter View = "learning-center"
)

// Paths map 1:1 to views, mirroring the browser client's URL scheme. They
// are the only session-scoped navigation state.
const (
	PathLearn          = "/"
	PathCollections    = "/collections"
	PathLearningCenter = "/learning"
)

// ViewForPath resolves a path to its view.
func ViewForPath(path string) (View, bool) {
	switch path {
	case PathLearn:
		return ViewLearn, true
	case PathCollections:
		return ViewCollections, true
	case PathLearningCenter:
		return ViewLearningCenter, true
	default:
		return "", false
	}
}

// Path returns the view's canonical path.
func (v View) Path() string {
	switch v {
	case ViewCollections:
		return PathCollections
	case ViewLearningCenter:
		return PathLearningCenter
	default:
		return PathLearn
	}
}

// authChecker is the slice of the API client the navigator needs.
type authChecker interface {
	Authenticated() bool
}

// Navigator is the root controller's view state machine. It keeps the
// current view in sync with a browser-style history: navigating pushes the
// previous path onto the back stack and clears the forward stack; Back and
// Forward move along it. Collections and the learning center require
// authentication; navigating there without a token fails with
// entity.ErrAuthRequired and leaves the view unchanged so the caller can
// open its auth prompt.
type Navigator struct {
	auth    authChecker
	current View
	back    []string
	forward []string
}

// NewNavigator starts at the learn view.
func NewNavigator(auth authChecker) *Navigator {
	return &Navigator{auth: auth, current: ViewLearn}
}

// View returns the current view.
func (n *Navigator) View() View { return n.current }

// Path returns the current view's path.
func (n *Navigator) Path() string { return n.current.Path() }

// Navigate switches to the view behind path.
func (n *Navigator) Navigate(path string) error {
	view, ok := ViewForPath(path)
	if !ok {
		return fmt.Errorf("unknown path %q", path)
	}
	if view == n.current {
		return nil
	}
	if view != ViewLearn && !n.auth.Authenticated() {
		return fmt.Errorf("open %s: %w", view, entity.ErrAuthRequired)
	}
	n.back = append(n.back, n.current.Path())
	n.forward = n.forward[:0]
	n.current = view
	return nil
}

// Back pops the history like the browser back button. Returns false at the
// start of history.
func (n *Navigator) Back() bool {
	if len(n.back) == 0 {
		return false
	}
	prev := n.back[len(n.back)-1]
	n.back = n.back[:len(n.back)-1]
	n.forward = append(n.forward, n.current.Path())
	view, _ := ViewForPath(prev)
	n.current = view
	return true
}

// Forward re-applies an undone navigation. Returns false at the end of
// history.
func (n *Navigator) Forward() bool {
	if len(n.forward) == 0 {
		return false
	}
	next := n.forward[len(n.forward)-1]
	n.forward = n.forward[:len(n.forward)-1]
	n.back = append(n.back, n.current.Path())
	view, _ := ViewForPath(next)
	n.current = view
	return true
}
