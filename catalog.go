package challenge

// Source is a published book challenges can be attributed to.
type Source struct {
	ID              string
	Title           string
	Authors         []string
	PublicationType PublicationType
}

var sources = []Source{
	{
		ID:              "core-hero",
		Title:           "Legend in the Mist - Core Book Volume I - The Hero",
		Authors:         []string{"Son of Oak"},
		PublicationType: PublicationOfficial,
	},
	{
		ID:              "core-narrator",
		Title:           "Legend in the Mist - Core Book Volume II - The Narrator",
		Authors:         []string{"Son of Oak"},
		PublicationType: PublicationOfficial,
	},
	{
		ID:              "setting-hearts-of-ravensdale-the-dales",
		Title:           "Hearts of Ravensdale - Setting Book 1 - The Dales",
		Authors:         []string{"Son of Oak"},
		PublicationType: PublicationOfficial,
	},
	{
		ID:              "zamanora-core",
		Title:           "Zamanora - Ballad of the Witch - Core Book",
		Authors:         []string{"Eren Chronicles"},
		PublicationType: PublicationThirdParty,
	},
	{
		ID:              "zamanora-monsters-and-fables",
		Title:           "Zamanora - Ballad of the Witch - Monsters & Fables",
		Authors:         []string{"Eren Chronicles"},
		PublicationType: PublicationThirdParty,
	},
}

// Sources returns the catalog of known books, official ones first.
func Sources() []Source {
	out := make([]Source, len(sources))
	for i, s := range sources {
		s.Authors = append([]string(nil), s.Authors...)
		out[i] = s
	}
	return out
}

// LookupSource returns the catalog entry with the given id.
func LookupSource(id string) (Source, bool) {
	for _, s := range Sources() {
		if s.ID == id {
			return s, true
		}
	}
	return Source{}, false
}

// Attribution returns the catalog entry a document's meta points at.
func (c Challenge) Attribution() (Source, bool) {
	if c.Meta == nil || c.Meta.SourceID == nil {
		return Source{}, false
	}
	return LookupSource(*c.Meta.SourceID)
}
