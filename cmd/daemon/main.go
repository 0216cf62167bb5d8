package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/tranvietanh/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	engine *engine.CompositionEngine
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		engine: engine.NewConfiguredEngine(engine.DefaultConfig()),
		logger: logger,
	}
}

// ProcessKey handles key events from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state).
// Output: action (0=none, 1=send, 2=restore), backspace count, replacement text.
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (int32, int32, string, *dbus.Error) {
	key, caps, ok := keysymToKey(keysym)
	if !ok {
		return int32(engine.ActionNone), 0, "", nil
	}
	ctrl := modifiers&ModControl != 0 || modifiers&ModMod1 != 0

	result := e.engine.OnKey(key, caps, ctrl)

	if e.logger != nil {
		modsStr := ""
		if modifiers&ModShift != 0 {
			modsStr += "Shift+"
		}
		if modifiers&ModControl != 0 {
			modsStr += "Ctrl+"
		}
		if modifiers&ModMod1 != 0 {
			modsStr += "Alt+"
		}
		e.logger.Printf("Type: %-15s | Action: %-8v | Backspace: %-3d | Chars: %-15q",
			modsStr+keyLabel(keysym, key, caps, ok), result.Action, result.Backspace, string(result.Chars))
	}

	return int32(result.Action), int32(result.Backspace), string(result.Chars), nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.engine.Clear()
	fmt.Println(">>> [GoViet] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// SetMethod switches the input convention to "Telex" or "VNI".
func (e *InputEngine) SetMethod(name string) *dbus.Error {
	var m engine.InputMethod = engine.NewTelex()
	if name == "VNI" || name == "vni" {
		m = engine.NewVNI()
	}
	e.engine.SetMethod(m)
	fmt.Printf(">>> [GoViet] Input method: %s\n", name)
	return nil
}

func main() {
	// 1. Connect to Session Bus
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	// 2. Register Service Name
	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	// 3. Setup Logging
	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	// 4. Create and export the engine
	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	// 5. Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
