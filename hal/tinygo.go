//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// Default wiring for the panel breakout on an RP2040 board.
const (
	panelSCK = machine.GP10
	panelSDO = machine.GP11
	panelCS  = machine.GP13
	panelDC  = machine.GP14
	panelRST = machine.GP15
)

// OpenPanelSPI configures SPI1 and the control pins, pulses the hardware
// reset, and returns a transport ready for panel register programming.
func OpenPanelSPI() (*SPITransport, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("hal: SPI1 unavailable")
	}

	err := machine.SPI1.Configure(machine.SPIConfig{
		SCK:       panelSCK,
		SDO:       panelSDO,
		Frequency: 40_000_000,
	})
	if err != nil {
		return nil, err
	}

	cs := panelCS
	dc := panelDC
	rst := panelRST
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()
	dc.High()

	// Hardware reset pulse.
	rst.High()
	time.Sleep(10 * time.Millisecond)
	rst.Low()
	time.Sleep(10 * time.Millisecond)
	rst.High()
	time.Sleep(50 * time.Millisecond)

	return NewSPITransport(machine.SPI1, dc, cs), nil
}
