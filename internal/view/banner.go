package view

// SlowHeatingBanner is the advisory shown when slow heating is detected.
const SlowHeatingBanner = "Possible slow heating: the heater and filter pump stayed on in cold air " +
	"while the pool warmed slowly and is still well below its set point."

// Banner returns the advisory for a verdict, or "" when there is none.
func Banner(slowHeating bool) string {
	if slowHeating {
		return SlowHeatingBanner
	}
	return ""
}
