package hal

import (
	"tinygo.org/x/drivers"
)

// SPITransport drives a panel over a SPI bus with a data/command select
// pin. The chip select pin is optional; pass nil when the bus handles CS
// itself.
type SPITransport struct {
	bus drivers.SPI
	dc  Pin
	cs  Pin
	one [1]byte
}

func NewSPITransport(bus drivers.SPI, dc, cs Pin) *SPITransport {
	return &SPITransport{bus: bus, dc: dc, cs: cs}
}

func (t *SPITransport) Command(b byte) error {
	t.open()
	t.dc.Low()
	t.one[0] = b
	err := t.bus.Tx(t.one[:], nil)
	t.shut()
	return err
}

func (t *SPITransport) Data(b byte) error {
	t.open()
	t.dc.High()
	t.one[0] = b
	err := t.bus.Tx(t.one[:], nil)
	t.shut()
	return err
}

func (t *SPITransport) Transmit(p []byte) error {
	t.open()
	t.dc.High()
	err := t.bus.Tx(p, nil)
	t.shut()
	return err
}

func (t *SPITransport) Close() error {
	if t.cs != nil {
		t.cs.High()
	}
	return nil
}

func (t *SPITransport) open() {
	if t.cs != nil {
		t.cs.Low()
	}
}

func (t *SPITransport) shut() {
	if t.cs != nil {
		t.cs.High()
	}
}
