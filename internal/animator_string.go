package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull/internal/dbg"
)

// Debug strings. Points are shown by readable name as well as coordinates,
// since coincident points are distinct.

func (p *Point) DbgName() string {
	if p == nil {
		return "Ø"
	}
	return fmt.Sprintf("%s%s", dbg.Name(p), p.String())
}

func (item *WorkItem) String() string {
	return fmt.Sprintf("WorkItem %s→%s [%s]",
		item.A.DbgName(),
		item.B.DbgName(),
		pointNames(item.Candidates),
	)
}

func (e Edge) String() string {
	return fmt.Sprintf("%s—%s", e.A.DbgName(), e.B.DbgName())
}

// One line summary of the most recent step: the phase, the baseline in cyan,
// the farthest point in green, and discarded points in red.
func (a *Animator) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s #%d]", a.phaseColor(), a.steps)
	if a.currentA == nil {
		if a.Done() {
			fmt.Fprintf(&b, " hull: %s", pointNames(a.hull.Points()))
		} else {
			b.WriteString(" idle")
		}
		return b.String()
	}

	fmt.Fprintf(&b, " %s→%s", aurora.Cyan(a.currentA.DbgName()), aurora.Cyan(a.currentB.DbgName()))
	if a.currentFarthest == nil {
		fmt.Fprintf(&b, " %s", aurora.Yellow("edge"))
	} else {
		fmt.Fprintf(&b, " farthest %s", aurora.Green(a.currentFarthest.DbgName()))
	}
	if len(a.discarded) > 0 {
		fmt.Fprintf(&b, " discarded %s", aurora.Red(pointNames(a.discarded)))
	}
	fmt.Fprintf(&b, " pending %d", len(a.queue))
	return b.String()
}

func (a *Animator) phaseColor() aurora.Value {
	switch a.phase {
	case PhaseLowerHull:
		return aurora.Magenta(a.phase)
	case PhaseUpperHull:
		return aurora.Blue(a.phase)
	}
	return aurora.Bold(a.phase)
}

func pointNames(points []*Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.DbgName()
	}
	return strings.Join(parts, ", ")
}
