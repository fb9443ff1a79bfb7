package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// celebrationStep is how long each frame of the animation stays up.
var celebrationStep = 120 * time.Millisecond

// printCelebration fills a progress bar next to msg and then caps it off,
// for a terminal where every course is finished.
func printCelebration(w io.Writer, msg string) {
	const cells = 10
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	for n := 0; n <= cells; n += 2 {
		bar := filled.Render(strings.Repeat("█", n)) + empty.Render(strings.Repeat("░", cells-n))
		fmt.Fprintf(w, "\r\033[K%s %s", bar, msg)
		time.Sleep(celebrationStep)
	}
	fmt.Fprintf(w, "\r\033[K%s\n", done.Render("🎓 "+msg+" 🎓"))
}
