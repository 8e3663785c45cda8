package location

import (
	"bufio"
	"context"
	"discgolf-session-service/internal/domain"
	"errors"
	"fmt"
	"io"
	"log"

	"go.bug.st/serial"
)

const DefaultBaudRate = 9600

// SerialGPS reads NMEA sentences from a receiver on a serial port.
type SerialGPS struct {
	PortName string
	BaudRate int
}

func NewSerialGPS(portName string, baudRate int) *SerialGPS {
	if baudRate <= 0 {
		baudRate = DefaultBaudRate
	}
	return &SerialGPS{PortName: portName, BaudRate: baudRate}
}

// ListPorts returns the serial ports visible to the OS.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

// Run opens the port and emits every position fix until ctx is cancelled.
func (g *SerialGPS) Run(ctx context.Context, emit func(domain.Coordinate)) error {
	port, err := serial.Open(g.PortName, &serial.Mode{BaudRate: g.BaudRate})
	if err != nil {
		return fmt.Errorf("open gps %s: %w", g.PortName, err)
	}
	log.Printf("gps connected port=%s baud=%d", g.PortName, g.BaudRate)

	// Closing the port unblocks the scanner.
	stop := context.AfterFunc(ctx, func() { port.Close() })
	defer func() {
		if stop() {
			port.Close()
		}
	}()

	err = ReadSentences(ctx, port, emit)
	if ctx.Err() != nil {
		log.Printf("gps listener stopped port=%s", g.PortName)
		return nil
	}
	return err
}

// ReadSentences scans r line by line and emits the position of every
// sentence that carries one. Malformed lines are logged and skipped.
func ReadSentences(ctx context.Context, r io.Reader, emit func(domain.Coordinate)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		p, err := ParseSentence(scanner.Text())
		switch {
		case err == nil:
			emit(p)
		case errors.Is(err, ErrNoFix), errors.Is(err, ErrUnsupportedSentence):
		default:
			log.Printf("gps skip line err=%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read gps: %w", err)
	}
	return nil
}
