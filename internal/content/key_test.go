package content

import "testing"

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name         string
		gender       string
		relationship string
		occasion     string
		want         Key
	}{
		{
			name:         "already canonical",
			gender:       "male",
			relationship: "friend",
			occasion:     "birthday",
			want:         Key{GenderMale, RelationshipFriend, OccasionBirthday},
		},
		{
			name:         "mixed case and synonyms",
			gender:       "Female",
			relationship: "Mother",
			occasion:     "Mother's Day",
			want:         Key{GenderFemale, RelationshipMom, OccasionMothersDay},
		},
		{
			name:         "spouse maps to lover",
			gender:       "f",
			relationship: "spouse",
			occasion:     "anniversary",
			want:         Key{GenderFemale, RelationshipLover, OccasionAnniversary},
		},
		{
			name:         "unrecognized gender defaults to male",
			gender:       "unknown",
			relationship: "bro",
			occasion:     "bday",
			want:         Key{GenderMale, RelationshipBrother, OccasionBirthday},
		},
		{
			name:         "unrecognized relationship defaults to friend",
			gender:       "male",
			relationship: "colleague",
			occasion:     "graduation",
			want:         Key{GenderMale, RelationshipFriend, OccasionGraduation},
		},
		{
			name:         "unrecognized occasion defaults to birthday",
			gender:       "female",
			relationship: "sis",
			occasion:     "random day",
			want:         Key{GenderFemale, RelationshipSister, OccasionBirthday},
		},
		{
			name:         "grandma collapses to mom",
			gender:       "female",
			relationship: "grandma",
			occasion:     "birthday",
			want:         Key{GenderFemale, RelationshipMom, OccasionBirthday},
		},
		{
			name:         "grandfather collapses to dad",
			gender:       "male",
			relationship: "grandfather",
			occasion:     "fathers day",
			want:         Key{GenderMale, RelationshipDad, OccasionFathersDay},
		},
		{
			name:         "generic grandparent follows gender",
			gender:       "female",
			relationship: "grandparent",
			occasion:     "celebration",
			want:         Key{GenderFemale, RelationshipMom, OccasionCelebration},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.gender, tc.relationship, tc.occasion)
			if got != tc.want {
				t.Errorf("Normalize(%q, %q, %q) = %v, want %v", tc.gender, tc.relationship, tc.occasion, got, tc.want)
			}
		})
	}
}

// TestNormalizeIdempotent verifies that normalizing an already-canonical
// triple changes nothing, for every triple in the canonical enumeration.
func TestNormalizeIdempotent(t *testing.T) {
	genders := []Gender{GenderMale, GenderFemale}
	relationships := []string{
		RelationshipMom, RelationshipDad, RelationshipLover,
		RelationshipFriend, RelationshipBrother, RelationshipSister,
	}
	occasions := []string{
		OccasionBirthday, OccasionAnniversary, OccasionValentine,
		OccasionGraduation, OccasionMothersDay, OccasionFathersDay,
		OccasionFriendshipDay, OccasionCelebration,
	}

	for _, g := range genders {
		for _, rel := range relationships {
			for _, occ := range occasions {
				first := Normalize(string(g), rel, occ)
				second := Normalize(string(first.Gender), first.Relationship, first.Occasion)
				if first != second {
					t.Errorf("normalize not idempotent for (%s, %s, %s): first=%v, second=%v", g, rel, occ, first, second)
				}
			}
		}
	}
}

func TestKeyString(t *testing.T) {
	key := Key{GenderFemale, RelationshipMom, OccasionBirthday}
	if got := key.String(); got != "female_mom_birthday" {
		t.Errorf("Key.String() = %q, want %q", got, "female_mom_birthday")
	}
}

func TestParentGender(t *testing.T) {
	if g, ok := ParentGender(RelationshipMom); !ok || g != GenderFemale {
		t.Errorf("ParentGender(mom) = (%v, %v), want (female, true)", g, ok)
	}
	if g, ok := ParentGender(RelationshipDad); !ok || g != GenderMale {
		t.Errorf("ParentGender(dad) = (%v, %v), want (male, true)", g, ok)
	}
	if _, ok := ParentGender(RelationshipFriend); ok {
		t.Error("ParentGender(friend) should imply no gender")
	}
}
