// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package visa

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.bug.st/serial"
	"go.uber.org/multierr"
)

// openSerial connects an ASRL resource: 8N1 at the configured baud rate,
// with the read timeout armed once for the lifetime of the port.
func openSerial(res Resource, o options) (Session, error) {
	mode := &serial.Mode{
		BaudRate: o.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(res.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("visa: open %s: %w", res.Device, err)
	}
	if err := port.SetReadTimeout(o.timeout); err != nil {
		port.Close()
		return nil, fmt.Errorf("visa: read timeout on %s: %w", res.Device, err)
	}
	return newSession(port, nil, o), nil
}

// serialResources lists the host's serial ports as ASRL resource strings,
// sorted for deterministic pick-first behavior.
func serialResources() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("visa: listing serial ports: %w", err)
	}
	sort.Strings(ports)

	out := make([]string, 0, len(ports))
	for _, p := range ports {
		out = append(out, Resource{Type: TypeASRL, Device: p}.String())
	}
	return out, nil
}

// PortInfo describes one serial port candidate. The USB descriptor fields
// are filled on Linux hosts where sysfs exposes them and are empty
// otherwise.
type PortInfo struct {
	Device   string // device path, e.g. /dev/ttyUSB0
	Resource string // resource string accepted by Open

	VendorID     string
	ProductID    string
	Manufacturer string
	Product      string
	Serial       string
}

func (p PortInfo) String() string {
	s := p.Device
	if p.VendorID != "" || p.ProductID != "" {
		s += fmt.Sprintf(" [%s:%s]", p.VendorID, p.ProductID)
	}
	if p.Manufacturer != "" || p.Product != "" {
		s += " " + strings.TrimSpace(p.Manufacturer+" "+p.Product)
	}
	if p.Serial != "" {
		s += " serial " + p.Serial
	}
	return s
}

// ListPorts enumerates the host's serial ports in sorted order, annotated
// with USB metadata where available. Annotation problems are accumulated
// into the returned error without removing the port from the list.
func ListPorts() ([]PortInfo, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("visa: listing serial ports: %w", err)
	}
	sort.Strings(ports)

	var errs error
	infos := make([]PortInfo, 0, len(ports))
	for _, dev := range ports {
		info := PortInfo{
			Device:   dev,
			Resource: Resource{Type: TypeASRL, Device: dev}.String(),
		}
		if err := annotateUSB(&info); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", dev, err))
		}
		infos = append(infos, info)
	}
	return infos, errs
}

// sysClassTTY is where the kernel exposes tty devices; each entry is a
// symlink into the physical device tree.
var sysClassTTY = "/sys/class/tty"

// annotateUSB fills the USB descriptor fields for a serial device by
// resolving its /sys/class/tty symlink into the device tree. Ports that are
// not USB backed, and hosts without sysfs, leave the info untouched.
func annotateUSB(info *PortInfo) error {
	name := filepath.Base(info.Device)
	link := filepath.Join(sysClassTTY, name)
	if fi, err := os.Lstat(link); err != nil || fi.Mode()&fs.ModeSymlink == 0 {
		return nil
	}
	abs, err := filepath.EvalSymlinks(link)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", link, err)
	}
	if !strings.Contains(abs, "usb") {
		return nil
	}

	// The device symlink points at the USB interface; the descriptor files
	// live one level up, on the USB device itself.
	dev, err := filepath.EvalSymlinks(filepath.Join(abs, "device"))
	if err != nil {
		return fmt.Errorf("resolving device dir: %w", err)
	}
	return readUSBStrings(filepath.Dir(dev), info)
}

// readUSBStrings reads the USB descriptor files under dir. Absent files are
// skipped; the last read failure, if any, is returned after all fields have
// been attempted.
func readUSBStrings(dir string, info *PortInfo) error {
	fields := []struct {
		file string
		dst  *string
	}{
		{"idVendor", &info.VendorID},
		{"idProduct", &info.ProductID},
		{"manufacturer", &info.Manufacturer},
		{"product", &info.Product},
		{"serial", &info.Serial},
	}

	var last error
	for _, f := range fields {
		b, err := os.ReadFile(filepath.Join(dir, f.file))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				last = err
			}
			continue
		}
		*f.dst = strings.TrimSpace(string(b))
	}
	return last
}
