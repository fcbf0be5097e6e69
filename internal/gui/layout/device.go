package layout

// DeviceType is the layout variant chosen for a measured width.
type DeviceType int

const (
	Mobile DeviceType = iota
	Desktop
)

func (d DeviceType) String() string {
	switch d {
	case Mobile:
		return "mobile"
	case Desktop:
		return "desktop"
	}
	return "unknown"
}

// ClassifyWidth returns Mobile for widths strictly below breakpoint and
// Desktop otherwise, so a width exactly at the breakpoint is Desktop.
func ClassifyWidth(width, breakpoint float32) DeviceType {
	if width < breakpoint {
		return Mobile
	}
	return Desktop
}
