package content

import (
	"strings"
	"testing"

	"github.com/krishnaa-0506/always/internal/domain"
)

func uniformVariation(screens, linesPerScreen int) Variation {
	v := Variation{Screens: make([]Screen, screens)}
	for i := range v.Screens {
		lines := make([]string, linesPerScreen)
		for j := range lines {
			lines[j] = "line"
		}
		v.Screens[i] = Screen{Lines: lines}
	}
	return v
}

func imageList(n int) []Image {
	imgs := make([]Image, n)
	for i := range imgs {
		imgs[i] = Image{URL: "https://cdn.example.com/p" + string(rune('0'+i)) + ".jpg"}
	}
	return imgs
}

func TestAssemblePersonalMessageFirst(t *testing.T) {
	out := Assemble(AssembleInput{
		PersonalMessage: "Happy bday!",
		Variation:       uniformVariation(5, 2),
		Values:          Values{ReceiverName: "Sam"},
	})

	if len(out) != 6 {
		t.Fatalf("screen count = %d, want 6", len(out))
	}
	if out[0].Type != domain.ScreenTypePersonal {
		t.Errorf("first screen type = %s, want personal_message", out[0].Type)
	}
	if out[0].Content != "Happy bday!" {
		t.Errorf("personal screen content = %q, want verbatim text", out[0].Content)
	}
}

func TestAssembleNoPersonalMessage(t *testing.T) {
	out := Assemble(AssembleInput{
		PersonalMessage: "   ",
		Variation:       uniformVariation(4, 2),
	})

	if len(out) != 4 {
		t.Fatalf("screen count = %d, want 4", len(out))
	}
	if out[0].Type != domain.ScreenTypeIntro {
		t.Errorf("first screen type = %s, want intro", out[0].Type)
	}
	if out[len(out)-1].Type != domain.ScreenTypeFinal {
		t.Errorf("last screen type = %s, want final", out[len(out)-1].Type)
	}
}

func TestAssembleMemoryScreenType(t *testing.T) {
	v := Variation{Screens: []Screen{
		{Lines: []string{"opening"}},
		{Lines: []string{"remember {{specialMemory}}?"}},
		{Lines: []string{"middle"}},
		{Lines: []string{"closing"}},
	}}
	out := Assemble(AssembleInput{Variation: v, Values: Values{ReceiverName: "Sam", SpecialMemory: "the lake trip"}})

	if out[1].Type != domain.ScreenTypeMemory {
		t.Errorf("memory screen type = %s, want memory", out[1].Type)
	}
	if !strings.Contains(out[1].Content, "the lake trip") {
		t.Errorf("memory screen not substituted: %q", out[1].Content)
	}
}

// TestAssembleNeverImagesLastScreen checks the interleaving invariant
// max(assignedIndices) < totalScreens-1 across screen counts and image counts.
func TestAssembleNeverImagesLastScreen(t *testing.T) {
	for screens := 2; screens <= 25; screens++ {
		for images := 0; images <= 5; images++ {
			out := Assemble(AssembleInput{
				Variation: uniformVariation(screens, 3),
				Images:    imageList(images),
			})
			last := len(out) - 1
			if out[last].HasImage {
				t.Errorf("screens=%d images=%d: last screen received an image", screens, images)
			}
		}
	}
}

func TestAssembleImageInterleaving(t *testing.T) {
	testCases := []struct {
		name        string
		screens     int
		images      int
		wantIndices []int
	}{
		{
			name:        "three images on standard count",
			screens:     21,
			images:      3,
			wantIndices: []int{6, 7, 8},
		},
		{
			name:        "five images on standard count",
			screens:     21,
			images:      5,
			wantIndices: []int{6, 7, 8, 9, 10},
		},
		{
			name:        "excess images dropped on short variation",
			screens:     9,
			images:      5,
			wantIndices: []int{6, 7},
		},
		{
			name:        "too short for any slot",
			screens:     5,
			images:      2,
			wantIndices: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := Assemble(AssembleInput{
				Variation: uniformVariation(tc.screens, 2),
				Images:    imageList(tc.images),
			})

			var got []int
			for _, scr := range out {
				if scr.HasImage {
					got = append(got, scr.Index)
					if scr.Type != domain.ScreenTypePhoto {
						t.Errorf("screen %d has image but type %s", scr.Index, scr.Type)
					}
					if scr.ImageURL == "" || scr.ImageIndex == nil {
						t.Errorf("screen %d missing image attachment fields", scr.Index)
					}
				}
			}
			if len(got) != len(tc.wantIndices) {
				t.Fatalf("assigned indices = %v, want %v", got, tc.wantIndices)
			}
			for i, idx := range tc.wantIndices {
				if got[i] != idx {
					t.Errorf("assigned indices = %v, want %v", got, tc.wantIndices)
					break
				}
			}
		})
	}
}

// TestAssembleEndToEnd covers the full scenario: personal message plus two
// images over a 20-screen variation shifts the photo slots by the
// personal-message offset.
func TestAssembleEndToEnd(t *testing.T) {
	v := uniformVariation(20, 6)
	v.Screens[3] = Screen{Lines: []string{
		"Hey {{receiverName}},",
		"remember {{specialMemory}}?",
		"I'm grateful for {{gratefulFor}}.",
		"", "", "",
	}}

	out := Assemble(AssembleInput{
		PersonalMessage: "Happy bday!",
		Variation:       v,
		Values:          Values{ReceiverName: "Sam", SpecialMemory: "the lake trip"},
		Images:          imageList(2),
	})

	if len(out) != 21 {
		t.Fatalf("screen count = %d, want 21", len(out))
	}
	if out[0].Type != domain.ScreenTypePersonal || out[0].Content != "Happy bday!" {
		t.Fatalf("first screen = {%s %q}, want verbatim personal message", out[0].Type, out[0].Content)
	}

	var photoIndices []int
	for _, scr := range out {
		if scr.Type == domain.ScreenTypePhoto {
			photoIndices = append(photoIndices, scr.Index)
		}
		for _, line := range scr.Lines {
			if strings.Contains(line, TokenSpecialMemory) {
				t.Errorf("screen %d still contains unsubstituted memory token: %q", scr.Index, line)
			}
		}
	}
	// Preferred slots 6 and 7 address the generated screens; the leading
	// personal-message screen shifts them to output indices 7 and 8.
	if len(photoIndices) != 2 || photoIndices[0] != 7 || photoIndices[1] != 8 {
		t.Errorf("photo indices = %v, want [7 8]", photoIndices)
	}
	if !strings.Contains(out[4].Content, "Sam") || !strings.Contains(out[4].Content, "the lake trip") {
		t.Errorf("substitution missing in content screen: %q", out[4].Content)
	}
}

func TestAssembleMalformedVariation(t *testing.T) {
	out := Assemble(AssembleInput{Variation: Variation{}})
	if len(out) != 0 {
		t.Errorf("empty variation produced %d screens, want 0", len(out))
	}

	// Uneven line counts must not panic and must substitute what exists.
	out = Assemble(AssembleInput{
		Variation: Variation{Screens: []Screen{
			{Lines: []string{"hi {{receiverName}}", "x"}},
			{Lines: []string{"bye"}},
		}},
		Values: Values{ReceiverName: "Sam"},
	})
	if len(out) != 2 {
		t.Fatalf("screen count = %d, want 2", len(out))
	}
	if !strings.Contains(out[0].Content, "hi Sam") {
		t.Errorf("substitution missing: %q", out[0].Content)
	}
}
