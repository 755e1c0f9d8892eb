// Package termio implements the Confirmer port against the interactive
// control device.
package termio

import (
	"bufio"
	"io"
	"os"
)

// Confirm reads yes/no responses from the interactive control device. The
// device is opened lazily on first use and held open for the rest of the run,
// so a run that never prompts never touches the terminal.
type Confirm struct {
	open func() (io.ReadCloser, error)
	dev  io.ReadCloser
	br   *bufio.Reader
}

// New returns a Confirm that opens /dev/tty on first use.
func New() *Confirm {
	return &Confirm{
		open: func() (io.ReadCloser, error) {
			return os.Open("/dev/tty")
		},
	}
}

// NewWithDevice returns a Confirm reading from the given device. Used by
// tests and by embedders that already hold a terminal handle.
func NewWithDevice(dev io.ReadCloser) *Confirm {
	return &Confirm{dev: dev, br: bufio.NewReader(dev)}
}

// Confirm reads one response line. Only a leading 'y' or 'Y' confirms;
// everything else, including an empty line or end of input, declines.
func (c *Confirm) Confirm() (bool, error) {
	if c.br == nil {
		dev, err := c.open()
		if err != nil {
			return false, err
		}
		c.dev = dev
		c.br = bufio.NewReader(dev)
	}

	line, err := c.br.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t':
			continue
		case 'y', 'Y':
			return true, nil
		default:
			return false, nil
		}
	}
	return false, nil
}

// Close releases the control device if it was ever opened.
func (c *Confirm) Close() error {
	if c.dev == nil {
		return nil
	}
	return c.dev.Close()
}
