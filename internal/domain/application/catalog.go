package application

type Club string

const (
	ClubCoding Club = "Coding Club"
	ClubArt    Club = "Art Club"
	ClubSports Club = "Sports Club"
	ClubMusic  Club = "Music Club"
	ClubDebate Club = "Debate Club"
)

type Domain string

const (
	DomainComputerScience Domain = "Computer Science"
	DomainArts            Domain = "Arts"
	DomainCommerce        Domain = "Commerce"
	DomainEngineering     Domain = "Engineering"
)

var clubs = []Club{ClubCoding, ClubArt, ClubSports, ClubMusic, ClubDebate}

var domains = []Domain{DomainComputerScience, DomainArts, DomainCommerce, DomainEngineering}

var skillsByDomain = map[Domain][]string{
	DomainComputerScience: {"Python", "Java", "C++", "JavaScript", "Web Development", "Machine Learning", "Data Structures"},
	DomainArts:            {"Painting", "Sketching", "Photography", "Graphic Design", "Creative Writing"},
	DomainCommerce:        {"Accounting", "Marketing", "Finance", "Business Analysis", "Economics"},
	DomainEngineering:     {"CAD", "Circuit Design", "Robotics", "MATLAB", "Thermodynamics"},
}

// Clubs returns the selectable clubs in display order.
func Clubs() []Club {
	return append([]Club(nil), clubs...)
}

// Domains returns the selectable academic domains in display order.
func Domains() []Domain {
	return append([]Domain(nil), domains...)
}

// SkillsFor returns the ordered skill list offered for a domain, or nil for
// an unknown or empty domain.
func SkillsFor(domain Domain) []string {
	skills, ok := skillsByDomain[domain]
	if !ok {
		return nil
	}
	return append([]string(nil), skills...)
}

// SkillsByDomain returns a copy of the full mapping.
func SkillsByDomain() map[Domain][]string {
	out := make(map[Domain][]string, len(skillsByDomain))
	for domain, skills := range skillsByDomain {
		out[domain] = append([]string(nil), skills...)
	}
	return out
}

func IsKnownClub(club Club) bool {
	for _, known := range clubs {
		if known == club {
			return true
		}
	}
	return false
}

func IsKnownDomain(domain Domain) bool {
	_, ok := skillsByDomain[domain]
	return ok
}

// IsKnownSkill reports whether skill is offered by any domain. Selections made
// under a previous domain stay valid after the domain changes.
func IsKnownSkill(skill string) bool {
	for _, skills := range skillsByDomain {
		for _, known := range skills {
			if known == skill {
				return true
			}
		}
	}
	return false
}
