//go:build !windows

package engine

import "github.com/go-gl/glfw/v3.3/glfw"

// SetDarkTitleBar is a no-op outside Windows; DWM window attributes have no
// equivalent elsewhere.
func SetDarkTitleBar(window *glfw.Window) {}
