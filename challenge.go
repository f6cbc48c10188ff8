package challenge

// MightLevel is the scale at which a might applies.
type MightLevel string

const (
	MightOrigin    MightLevel = "origin"
	MightAdventure MightLevel = "adventure"
	MightGreatness MightLevel = "greatness"
)

// MightLevels lists the accepted might levels in ascending order.
var MightLevels = []MightLevel{MightOrigin, MightAdventure, MightGreatness}

// PublicationType describes where a challenge was published.
type PublicationType string

const (
	PublicationOfficial   PublicationType = "official"
	PublicationThirdParty PublicationType = "third_party"
	PublicationCauldron   PublicationType = "cauldron"
	PublicationHomebrew   PublicationType = "homebrew"
)

// PublicationTypes lists the accepted publication types.
var PublicationTypes = []PublicationType{
	PublicationOfficial,
	PublicationThirdParty,
	PublicationCauldron,
	PublicationHomebrew,
}

const (
	MinRating     = 1
	MaxRating     = 5
	MinLimitLevel = 1
	MaxLimitLevel = 6
)

// Challenge is a challenge document. Free-text fields may embed tokens; see
// package token. Absent optional strings are nil, never "".
type Challenge struct {
	Name                string           `toml:"name"`
	Description         string           `toml:"description"`
	Rating              int              `toml:"rating"`
	Roles               []string         `toml:"roles"`
	TagsAndStatuses     []string         `toml:"tags_and_statuses"`
	Mights              []Might          `toml:"mights,omitempty"`
	Limits              []Limit          `toml:"limits,omitempty"`
	Threats             []Threat         `toml:"threats,omitempty"`
	GeneralConsequences []string         `toml:"general_consequences"`
	SpecialFeatures     []SpecialFeature `toml:"special_features,omitempty"`
	Meta                *Meta            `toml:"meta,omitempty"`
}

// Might is a scale of power the challenge operates at.
type Might struct {
	Name          string     `toml:"name"`
	Level         MightLevel `toml:"level"`
	Vulnerability *string    `toml:"vulnerability,omitempty"`
}

// Limit is a threshold the heroes can push the challenge to. OnMax only
// matters for progress limits.
type Limit struct {
	Name       string  `toml:"name"`
	Level      int     `toml:"level"`
	IsImmune   bool    `toml:"is_immune"`
	IsProgress bool    `toml:"is_progress"`
	OnMax      *string `toml:"on_max,omitempty"`
}

// Threat is something the challenge does, with its consequences.
type Threat struct {
	Name         string   `toml:"name"`
	Description  string   `toml:"description"`
	Consequences []string `toml:"consequences"`
}

// SpecialFeature is a named markdown rule block.
type SpecialFeature struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Meta is optional attribution. Every field may be absent independently.
type Meta struct {
	PublicationType *PublicationType `toml:"publication_type,omitempty"`
	Source          *string          `toml:"source,omitempty"`
	SourceID        *string          `toml:"source_id,omitempty"`
	Authors         []string         `toml:"authors"`
	Page            *int             `toml:"page,omitempty"`
}

// New returns an empty, valid challenge.
func New() Challenge {
	return Challenge{
		Rating:              MinRating,
		Roles:               []string{},
		TagsAndStatuses:     []string{},
		Mights:              []Might{},
		Limits:              []Limit{},
		Threats:             []Threat{},
		GeneralConsequences: []string{},
		SpecialFeatures:     []SpecialFeature{},
	}
}

func strPtr(s string) *string {
	return &s
}
