package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/klauspost/cpuid/v2"
)

const (
	width  = 640
	height = 480
	title  = "Point Cube"
)

func main() {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)
	fmt.Println("CPU", cpuid.CPU.BrandName)

	// The clock does the frame cap, not vsync.
	glfw.SwapInterval(0)

	surface, err := newHostSurface(window)
	if err != nil {
		log.Fatalln(err)
	}

	points := BuildCubeEdges(cubeSize, latticeStep)
	loop := NewLoop(surface, newGLFWClock(), NewSimulation(width, height), points)
	if err := loop.Run(); err != nil {
		log.Fatalln(err)
	}
}
