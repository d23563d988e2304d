package skills

// Category groups related skills in the catalog.
type Category string

const (
	CategoryTechnical     Category = "technical"
	CategoryLeadership    Category = "leadership"
	CategoryCommunication Category = "communication"
	CategoryData          Category = "data-and-analytics"
	CategoryProduct       Category = "product-and-design"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryTechnical,
		CategoryLeadership,
		CategoryCommunication,
		CategoryData,
		CategoryProduct,
	}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryTechnical:
		return "Technical"
	case CategoryLeadership:
		return "Leadership"
	case CategoryCommunication:
		return "Communication"
	case CategoryData:
		return "Data & Analytics"
	case CategoryProduct:
		return "Product & Design"
	default:
		return string(c)
	}
}

// Proficiency is a named mastery tier used to parameterize question
// generation and to track which level of a skill the learner is working on.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
)

// AllProficiencies returns the proficiency ladder in ascending order.
func AllProficiencies() []Proficiency {
	return []Proficiency{ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced}
}

// Label returns the display label for a proficiency.
func (p Proficiency) Label() string {
	switch p {
	case ProficiencyBeginner:
		return "Beginner"
	case ProficiencyIntermediate:
		return "Intermediate"
	case ProficiencyAdvanced:
		return "Advanced"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the known proficiency tiers.
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced:
		return true
	}
	return false
}

// Next returns the proficiency one step above p, saturating at advanced.
func (p Proficiency) Next() Proficiency {
	switch p {
	case ProficiencyBeginner:
		return ProficiencyIntermediate
	case ProficiencyIntermediate:
		return ProficiencyAdvanced
	default:
		return ProficiencyAdvanced
	}
}

// Skill is a single assessable skill in the catalog.
type Skill struct {
	ID          string
	Name        string
	Description string
	Category    Category

	// PassThreshold is the minimum score (0-100) for an assessment
	// attempt on this skill to count as passed. Varies per skill,
	// commonly in the 70-80 range.
	PassThreshold int

	// QuestionCount is the number of questions per assessment session.
	QuestionCount int

	// Keywords guide LLM question generation toward the skill's scope.
	Keywords []string
}
