package skills

import (
	"fmt"
	"sort"
)

// catalog holds the seeded skill set with lookup indices.
type catalog struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
}

var c *catalog

func init() {
	c = buildCatalog(seedSkills())
}

// buildCatalog constructs the catalog and its indices from a skill slice.
func buildCatalog(skills []Skill) *catalog {
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })

	cat := &catalog{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
	}
	for i := range cat.skills {
		s := &cat.skills[i]
		cat.byID[s.ID] = s
		cat.byCategory[s.Category] = append(cat.byCategory[s.Category], *s)
	}
	return cat
}

// AllSkills returns every skill in the catalog, ordered by ID.
func AllSkills() []Skill {
	out := make([]Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// GetSkill returns the skill with the given ID.
func GetSkill(id string) (Skill, error) {
	s, ok := c.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("unknown skill: %q", id)
	}
	return *s, nil
}

// ByCategory returns all skills in the given category, ordered by ID.
func ByCategory(cat Category) []Skill {
	out := make([]Skill, len(c.byCategory[cat]))
	copy(out, c.byCategory[cat])
	return out
}

// DefaultQuestionCount is used when a seeded skill omits its own count.
const DefaultQuestionCount = 12

// DefaultPassThreshold is used when a seeded skill omits its own threshold.
const DefaultPassThreshold = 70
