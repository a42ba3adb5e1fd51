package studio

import "strings"

// Tab is one of the three views of the shell.
type Tab string

const (
	TabImage Tab = "image"
	TabEdit  Tab = "edit"
	TabVideo Tab = "video"
)

// Tabs lists the views in display order.
func Tabs() []Tab {
	return []Tab{TabImage, TabEdit, TabVideo}
}

// ParseTab returns the tab named by s. Unknown or empty names select the
// image view.
func ParseTab(s string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabEdit:
		return TabEdit
	case TabVideo:
		return TabVideo
	default:
		return TabImage
	}
}
