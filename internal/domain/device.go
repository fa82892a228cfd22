package domain

import (
	"fmt"
	"strings"
)

// Device is a preview viewport class.
type Device string

// Preview devices.
const (
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
	DeviceDesktop Device = "desktop"
)

// ParseDevice validates a device name. Empty input selects desktop.
func ParseDevice(s string) (Device, error) {
	switch Device(strings.ToLower(strings.TrimSpace(s))) {
	case DeviceMobile:
		return DeviceMobile, nil
	case DeviceTablet:
		return DeviceTablet, nil
	case DeviceDesktop, "":
		return DeviceDesktop, nil
	default:
		return "", fmt.Errorf("unknown device %q", s)
	}
}

// MaxWidth returns the viewport width in pixels, 0 meaning full width.
func (d Device) MaxWidth() int {
	switch d {
	case DeviceMobile:
		return 375
	case DeviceTablet:
		return 768
	default:
		return 0
	}
}
