package trace

import "fmt"

// FormatText renders ev as a single human-readable line:
// [HH:MM:SS.mmm] →/←/• name (detail)
func FormatText(ev Event) []byte {
	var arrow string
	switch ev.Kind {
	case KindBegin:
		arrow = "→" // →
	case KindEnd:
		arrow = "←" // ←
	default:
		arrow = "•" // •
	}
	line := fmt.Sprintf("[%s] %s %s", ev.Time.Format("15:04:05.000"), arrow, ev.Name)
	if ev.Detail != "" {
		line += " (" + ev.Detail + ")"
	}
	return []byte(line + "\n")
}
