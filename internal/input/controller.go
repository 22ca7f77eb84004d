// Package input implements the NES controller-port protocol: a strobed
// shift register exposed to the bus at $4016/$4017.
package input

// Button identifies one of the eight standard NES buttons, in the
// hardware's serial read order.
type Button uint8

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a single standard NES joypad: a button latch plus the
// 8-bit shift register the CPU reads one bit at a time.
type Controller struct {
	buttons       uint8
	shiftRegister uint8
	strobe        bool
}

// New creates a Controller with no buttons held.
func New() *Controller {
	return &Controller{}
}

// SetButton sets or clears a single button.
func (c *Controller) SetButton(button Button, pressed bool) {
	if pressed {
		c.buttons |= uint8(button)
	} else {
		c.buttons &^= uint8(button)
	}
}

// SetButtons sets all eight buttons at once, in A,B,Select,Start,Up,Down,
// Left,Right order.
func (c *Controller) SetButtons(buttons [8]bool) {
	var b uint8
	for i, pressed := range buttons {
		if pressed {
			b |= 1 << uint(i)
		}
	}
	c.buttons = b
}

// Write latches the strobe bit. While strobe is high the shift register
// continuously reloads from the live button state; the falling edge
// freezes the snapshot the CPU then reads out serially.
func (c *Controller) Write(value uint8) {
	c.strobe = value&1 != 0
	if c.strobe {
		c.shiftRegister = c.buttons
	}
}

// Read returns the next serial bit (button A first) and shifts the
// register. Once all eight bits are consumed, further reads return 1.
func (c *Controller) Read() uint8 {
	if c.strobe {
		c.shiftRegister = c.buttons
	}
	bit := c.shiftRegister & 1
	c.shiftRegister = (c.shiftRegister >> 1) | 0x80
	return bit
}

// Reset clears button state and the shift register.
func (c *Controller) Reset() {
	c.buttons = 0
	c.shiftRegister = 0
	c.strobe = false
}

// State owns both controller ports and implements bus.InputInterface.
type State struct {
	Controller1 *Controller
	Controller2 *Controller
}

// NewState creates a State with two idle controllers.
func NewState() *State {
	return &State{Controller1: New(), Controller2: New()}
}

// Reset resets both controllers.
func (s *State) Reset() {
	s.Controller1.Reset()
	s.Controller2.Reset()
}

// SetButtons1 sets controller 1's button state.
func (s *State) SetButtons1(buttons [8]bool) { s.Controller1.SetButtons(buttons) }

// SetButtons2 sets controller 2's button state.
func (s *State) SetButtons2(buttons [8]bool) { s.Controller2.SetButtons(buttons) }

// Read services $4016 (controller 1) and $4017 (controller 2). Bit 6 of
// the $4017 read is always set, matching the open-bus behavior real
// hardware exhibits on that port.
func (s *State) Read(address uint16) uint8 {
	switch address {
	case 0x4016:
		return s.Controller1.Read()
	case 0x4017:
		return s.Controller2.Read() | 0x40
	default:
		return 0
	}
}

// Write services $4016; the strobe line is wired to both controllers.
func (s *State) Write(address uint16, value uint8) {
	if address == 0x4016 {
		s.Controller1.Write(value)
		s.Controller2.Write(value)
	}
}
