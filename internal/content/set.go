package content

import "fmt"

// Set is the full authored corpus for one content key: an ordered list of
// variations, each a complete alternative rendering of the experience.
// Sets are immutable reference data once loaded.
type Set struct {
	Key        string
	Variations []Variation
}

// Variation is one complete alternative rendering: a fixed-length ordered
// list of screens. All variations within a set are expected to share the same
// screen count.
type Variation struct {
	Screens []Screen
}

// Screen holds the ordered pre-substitution text lines of one displayed unit.
type Screen struct {
	Lines []string
}

// ShapeIssues reports content-authoring bugs in the set: variations whose
// screen count differs from the first variation, and screens whose line count
// differs from the first screen. Shape mismatches are surfaced for logging
// but are never fatal; assembly degrades line-by-line instead of rejecting
// the set.
// Parameters: none.
// Returns:
//   - []string: human-readable descriptions of each mismatch, empty if clean.
func (s *Set) ShapeIssues() []string {
	var issues []string
	if len(s.Variations) == 0 {
		return []string{"set has no variations"}
	}
	wantScreens := len(s.Variations[0].Screens)
	var wantLines int
	if wantScreens > 0 {
		wantLines = len(s.Variations[0].Screens[0].Lines)
	}
	for vi, v := range s.Variations {
		if len(v.Screens) != wantScreens {
			issues = append(issues, fmt.Sprintf("variation %d has %d screens, want %d", vi, len(v.Screens), wantScreens))
		}
		for si, scr := range v.Screens {
			if len(scr.Lines) != wantLines {
				issues = append(issues, fmt.Sprintf("variation %d screen %d has %d lines, want %d", vi, si, len(scr.Lines), wantLines))
			}
		}
	}
	return issues
}
