package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestController_StrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.Write(0x01) // strobe high
	assert.Equal(t, uint8(1), c.Read())
	assert.Equal(t, uint8(1), c.Read())
}

func TestController_StrobeLowShiftsOutAllEightButtonsInOrder(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonSelect, true)
	c.Write(0x01)
	c.Write(0x00) // falling edge snapshots buttons

	want := []uint8{1, 0, 1, 0, 0, 0, 0, 0} // A, B, Select, Start, U, D, L, R
	for i, w := range want {
		assert.Equal(t, w, c.Read(), "bit %d", i)
	}
}

func TestController_ReadsPastEighthBitReturnOne(t *testing.T) {
	c := New()
	c.Write(0x01)
	c.Write(0x00)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	assert.Equal(t, uint8(1), c.Read())
}

func TestState_Port2ReadHasBitSixAlwaysSet(t *testing.T) {
	s := NewState()
	s.Write(0x4016, 0x01)
	s.Write(0x4016, 0x00)
	v := s.Read(0x4017)
	assert.NotEqual(t, uint8(0), v&0x40)
}

func TestState_StrobeAppliesToBothControllers(t *testing.T) {
	s := NewState()
	s.Controller1.SetButton(ButtonA, true)
	s.Controller2.SetButton(ButtonB, true)
	s.Write(0x4016, 0x01)
	s.Write(0x4016, 0x00)
	assert.Equal(t, uint8(1), s.Read(0x4016))
	assert.Equal(t, uint8(0), s.Read(0x4017)&0x01)
}
