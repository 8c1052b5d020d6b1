package content

import (
	"fmt"
	"strings"
)

// Gender is the canonical gender axis of a content key.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Canonical relationship values. The set is closed; free-form input is mapped
// into it through the synonym table below.
const (
	RelationshipMom     = "mom"
	RelationshipDad     = "dad"
	RelationshipLover   = "lover"
	RelationshipFriend  = "friend"
	RelationshipBrother = "brother"
	RelationshipSister  = "sister"
)

// Canonical occasion values. Closed set; unrecognized input falls back to
// OccasionBirthday.
const (
	OccasionBirthday      = "birthday"
	OccasionAnniversary   = "anniversary"
	OccasionValentine     = "valentine"
	OccasionGraduation    = "graduation"
	OccasionMothersDay    = "mothers_day"
	OccasionFathersDay    = "fathers_day"
	OccasionFriendshipDay = "friendship_day"
	OccasionCelebration   = "celebration"
)

// Key is the canonical (gender, relationship, occasion) triple identifying
// one content set.
type Key struct {
	Gender       Gender
	Relationship string
	Occasion     string
}

// String serializes the key in the form used to address content sets in the
// backing store and the in-memory cache.
// Parameters: none.
// Returns:
//   - string: "<gender>_<relationship>_<occasion>".
func (k Key) String() string {
	return fmt.Sprintf("%s_%s_%s", k.Gender, k.Relationship, k.Occasion)
}

var relationshipSynonyms = map[string]string{
	"mom":         RelationshipMom,
	"mother":      RelationshipMom,
	"mum":         RelationshipMom,
	"mommy":       RelationshipMom,
	"dad":         RelationshipDad,
	"father":      RelationshipDad,
	"papa":        RelationshipDad,
	"daddy":       RelationshipDad,
	"lover":       RelationshipLover,
	"spouse":      RelationshipLover,
	"partner":     RelationshipLover,
	"wife":        RelationshipLover,
	"husband":     RelationshipLover,
	"girlfriend":  RelationshipLover,
	"boyfriend":   RelationshipLover,
	"friend":      RelationshipFriend,
	"best friend": RelationshipFriend,
	"bestie":      RelationshipFriend,
	"buddy":       RelationshipFriend,
	"brother":     RelationshipBrother,
	"bro":         RelationshipBrother,
	"sister":      RelationshipSister,
	"sis":         RelationshipSister,
}

// Grandparent labels collapse onto the logical-parent relationships. Gendered
// labels pin the relationship directly; the generic ones follow the
// normalized gender.
var grandparentFemale = map[string]bool{
	"grandma":     true,
	"grandmother": true,
	"granny":      true,
	"nana":        true,
}

var grandparentMale = map[string]bool{
	"grandpa":     true,
	"grandfather": true,
	"grandad":     true,
	"granddad":    true,
}

var grandparentNeutral = map[string]bool{
	"grandparent": true,
}

var occasionSynonyms = map[string]string{
	"birthday":        OccasionBirthday,
	"bday":            OccasionBirthday,
	"anniversary":     OccasionAnniversary,
	"valentine":       OccasionValentine,
	"valentines":      OccasionValentine,
	"valentines day":  OccasionValentine,
	"valentine's day": OccasionValentine,
	"graduation":      OccasionGraduation,
	"mothers day":     OccasionMothersDay,
	"mother's day":    OccasionMothersDay,
	"mothers_day":     OccasionMothersDay,
	"fathers day":     OccasionFathersDay,
	"father's day":    OccasionFathersDay,
	"fathers_day":     OccasionFathersDay,
	"friendship day":  OccasionFriendshipDay,
	"friendship_day":  OccasionFriendshipDay,
	"celebration":     OccasionCelebration,
	"just because":    OccasionCelebration,
	"no reason":       OccasionCelebration,
}

// Normalize maps free-form gender, relationship, and occasion strings to a
// canonical Key. It never fails: unrecognized gender defaults to male (a
// documented lossy behavior), unrecognized relationship to friend, and
// unrecognized occasion to birthday.
// Parameters:
//   - gender: raw gender string, any case.
//   - relationship: raw relationship label, any case.
//   - occasion: raw occasion label, any case.
// Returns:
//   - Key: best-effort canonical key.
func Normalize(gender, relationship, occasion string) Key {
	g := NormalizeGender(gender)
	return Key{
		Gender:       g,
		Relationship: normalizeRelationship(relationship, g),
		Occasion:     NormalizeOccasion(occasion),
	}
}

// NormalizeGender maps a raw gender string to the canonical Gender.
// Unrecognized input defaults to GenderMale.
func NormalizeGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "female", "f", "woman", "girl":
		return GenderFemale
	case "male", "m", "man", "boy":
		return GenderMale
	default:
		return GenderMale
	}
}

// NormalizeOccasion maps a raw occasion label to the canonical occasion set,
// defaulting to birthday.
func NormalizeOccasion(raw string) string {
	if occ, ok := occasionSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return occ
	}
	return OccasionBirthday
}

func normalizeRelationship(raw string, g Gender) string {
	label := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case grandparentFemale[label]:
		return RelationshipMom
	case grandparentMale[label]:
		return RelationshipDad
	case grandparentNeutral[label]:
		if g == GenderFemale {
			return RelationshipMom
		}
		return RelationshipDad
	}
	if rel, ok := relationshipSynonyms[label]; ok {
		return rel
	}
	return RelationshipFriend
}

// ParentGender reports the gender implied by a logical-parent relationship.
// "mom" implies female and "dad" implies male; other relationships carry no
// implication. A mismatch between the implied and supplied gender is a
// fallback trigger, never an error.
// Parameters:
//   - relationship: canonical relationship value.
// Returns:
//   - Gender: implied gender when the relationship is a logical parent.
//   - bool: true if the relationship implies a gender.
func ParentGender(relationship string) (Gender, bool) {
	switch relationship {
	case RelationshipMom:
		return GenderFemale, true
	case RelationshipDad:
		return GenderMale, true
	}
	return "", false
}
