package application

import "testing"

func TestSkillsForReturnsCopy(t *testing.T) {
	skills := SkillsFor(DomainComputerScience)
	if len(skills) == 0 || skills[0] != "Python" {
		t.Fatalf("unexpected computer science skills: %v", skills)
	}
	skills[0] = "COBOL"
	if SkillsFor(DomainComputerScience)[0] != "Python" {
		t.Fatalf("catalog was mutated through returned slice")
	}
}

func TestSkillsForUnknownDomain(t *testing.T) {
	if skills := SkillsFor(""); skills != nil {
		t.Fatalf("expected no skills for empty domain, got %v", skills)
	}
	if skills := SkillsFor("Astrology"); skills != nil {
		t.Fatalf("expected no skills for unknown domain, got %v", skills)
	}
}

func TestCatalogMembership(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{name: "Coding Club", ok: true},
		{name: "Debate Club", ok: true},
		{name: "Chess Club", ok: false},
		{name: "", ok: false},
	}
	for _, tc := range cases {
		if got := IsKnownClub(Club(tc.name)); got != tc.ok {
			t.Fatalf("IsKnownClub(%q) = %v, want %v", tc.name, got, tc.ok)
		}
	}
	if !IsKnownDomain(DomainEngineering) || IsKnownDomain("Medicine") {
		t.Fatalf("unexpected domain membership")
	}
	if !IsKnownSkill("Photography") || IsKnownSkill("Juggling") {
		t.Fatalf("unexpected skill membership")
	}
}

func TestEveryDomainHasSkills(t *testing.T) {
	all := SkillsByDomain()
	for _, domain := range Domains() {
		if len(all[domain]) == 0 {
			t.Fatalf("domain %q has no skills", domain)
		}
	}
}
