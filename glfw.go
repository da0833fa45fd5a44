package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const desiredFPS = 30

var fbSize Size

func init() {
	runtime.LockOSThread()
}

func GetTime() float64 {
	return glfw.GetTime()
}

type GlfwApp interface {
	Init() error
	IsRunning() bool
	Title() string
	OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey)
	OnFramebufferSize(width, height int)
	Render() error
	Update() error
	Close() error
}

func WithGL(windowSize Size, app GlfwApp) error {
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	title := app.Title()
	window, err := glfw.CreateWindow(windowSize.X, windowSize.Y, title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		fbSize.X = width
		fbSize.Y = height
		gl.Viewport(0, 0, int32(width), int32(height))
		app.OnFramebufferSize(width, height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	glfw.SwapInterval(1)
	width, height := window.GetFramebufferSize()
	framebufferSizeCallback(nil, width, height)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()
	for app.IsRunning() && !window.ShouldClose() {
		start := glfw.GetTime()
		if t := app.Title(); t != title {
			title = t
			window.SetTitle(title)
		}
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := app.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
		elapsedSeconds := glfw.GetTime() - start
		frameSeconds := 1.0 / desiredFPS
		if frameSeconds > elapsedSeconds {
			glfw.WaitEventsTimeout(frameSeconds - elapsedSeconds)
		} else {
			glfw.PollEvents()
		}
		if err := app.Update(); err != nil {
			return err
		}
	}
	return nil
}
