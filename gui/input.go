package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// InputState holds input state for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse cursor position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets a mouse button state.
// Pressing a button that was up also raises the clicked edge;
// releasing raises the up edge.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	if down && !s.mouseDown[button] {
		s.mouseClicked[button] = true
	}
	if !down && s.mouseDown[button] {
		s.mouseUp[button] = true
	}
	s.mouseDown[button] = down
}

// SetMouseWheel sets the mouse wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// SetKey sets a keyboard key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

// MouseDown returns true while the button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true on the frame the button was pressed.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true on the frame the button was released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true while the key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true on the frame the key was pressed.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}
