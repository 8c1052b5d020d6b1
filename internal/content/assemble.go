package content

import (
	"strings"

	"github.com/krishnaa-0506/always/internal/domain"
)

// preferredImageSlots are the 0-based screen indices images are attached to,
// in assignment order. Slots falling outside [0, totalScreens-2] are simply
// unavailable; images beyond the available slots are dropped.
var preferredImageSlots = [...]int{6, 7, 8, 9, 10}

// Image is one already-uploaded photo to interleave into the assembled
// screens. The upload boundary has validated and capped the list before it
// reaches assembly.
type Image struct {
	URL     string
	Caption string
}

// OutputScreen is one screen of the final assembled message, ready to
// persist. Index is the position in the final ordered list.
type OutputScreen struct {
	Index      int
	Type       domain.ScreenType
	Content    string
	Lines      []string
	HasImage   bool
	ImageURL   string
	ImageIndex *int
}

// AssembleInput carries everything needed to assemble one message.
type AssembleInput struct {
	// PersonalMessage, when non-blank, becomes a single leading screen with
	// the text carried verbatim (never substituted).
	PersonalMessage string
	Variation       Variation
	Values          Values
	Images          []Image
}

// Assemble builds the final ordered screen list: an optional personal-message
// screen, the substituted content screens in original order, and up to five
// images interleaved at the preferred slot indices.
//
// Assembly is best-effort: an empty or malformed variation produces whatever
// screens can be built rather than failing the request.
// Parameters:
//   - in: assembly input.
// Returns:
//   - []OutputScreen: the ordered screen list.
func Assemble(in AssembleInput) []OutputScreen {
	screens := make([]OutputScreen, 0, len(in.Variation.Screens)+1)

	hasPersonal := strings.TrimSpace(in.PersonalMessage) != ""
	if hasPersonal {
		screens = append(screens, OutputScreen{
			Index:   0,
			Type:    domain.ScreenTypePersonal,
			Content: in.PersonalMessage,
			Lines:   []string{in.PersonalMessage},
		})
	}

	for i, scr := range in.Variation.Screens {
		lines := make([]string, 0, len(scr.Lines))
		referencesMemory := false
		for _, raw := range scr.Lines {
			if strings.Contains(raw, TokenSpecialMemory) || strings.Contains(raw, TokenSpecificMemory) {
				referencesMemory = true
			}
			lines = append(lines, Substitute(raw, in.Values))
		}

		typ := domain.ScreenTypeContent
		switch {
		case i == len(in.Variation.Screens)-1:
			typ = domain.ScreenTypeFinal
		case i == 0 && !hasPersonal:
			typ = domain.ScreenTypeIntro
		case referencesMemory:
			typ = domain.ScreenTypeMemory
		}

		screens = append(screens, OutputScreen{
			Index:   len(screens),
			Type:    typ,
			Content: strings.Join(lines, "\n"),
			Lines:   lines,
		})
	}

	offset := 0
	if hasPersonal {
		offset = 1
	}
	interleaveImages(screens, in.Images, offset)
	return screens
}

// interleaveImages assigns images to the preferred slot indices in order,
// first image to the lowest index. The slots address the generated content
// screens, so a leading personal-message screen shifts them by offset. The
// last screen never receives an image.
func interleaveImages(screens []OutputScreen, images []Image, offset int) {
	if len(images) == 0 || len(screens) < 2 {
		return
	}

	count := len(images)
	if count > domain.MaxPhotosPerMessage {
		count = domain.MaxPhotosPerMessage
	}

	targets := make([]int, 0, count)
	for _, slot := range preferredImageSlots {
		if len(targets) == count {
			break
		}
		if idx := slot + offset; idx <= len(screens)-2 {
			targets = append(targets, idx)
		}
	}

	for imgIdx, slot := range targets {
		img := images[imgIdx]
		pos := imgIdx
		screens[slot].Type = domain.ScreenTypePhoto
		screens[slot].HasImage = true
		screens[slot].ImageURL = img.URL
		screens[slot].ImageIndex = &pos
	}
}
