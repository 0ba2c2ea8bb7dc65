//go:build glfw

package main

import "github.com/dshills/inputmux/internal/platform"

func init() {
	openWindow = func(title string, width, height int, capture bool) (platform.Source, error) {
		return platform.OpenGLFW(title, width, height, capture)
	}
}
