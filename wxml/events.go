package wxml

import "strings"

// Action is what a tap on a rendered node should trigger.
type Action uint8

const (
	ActionNone Action = iota
	ActionNavigate
	ActionCopy
	ActionPreview
)

func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionCopy:
		return "copy"
	case ActionPreview:
		return "preview"
	}
	return "none"
}

// Router decides how taps on links and images are handled. The decision is
// pure; performing the navigation, clipboard write, or preview is the
// caller's job and never touches parser state.
type Router struct {
	// NavPrefixes mark hrefs that navigate inside the app. Anything else
	// is copied to the clipboard.
	NavPrefixes []string
}

func (r Router) LinkTap(href string) Action {
	if href == "" {
		return ActionNone
	}
	for _, prefix := range r.NavPrefixes {
		if prefix != "" && strings.HasPrefix(href, prefix) {
			return ActionNavigate
		}
	}
	return ActionCopy
}

func (r Router) ImageTap(src string) Action {
	if src == "" {
		return ActionNone
	}
	return ActionPreview
}
