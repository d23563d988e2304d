package skills

// seedSkills returns the built-in skill catalog. Thresholds follow the
// platform's per-skill pass rates; they are deliberately not uniform.
func seedSkills() []Skill {
	return []Skill{
		{
			ID:            "go-fundamentals",
			Name:          "Go Fundamentals",
			Description:   "Core Go language: types, slices, maps, interfaces, error handling",
			Category:      CategoryTechnical,
			PassThreshold: 75,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"goroutines", "interfaces", "slices", "error handling"},
		},
		{
			ID:            "sql-querying",
			Name:          "SQL Querying",
			Description:   "Joins, aggregation, subqueries, and indexing basics",
			Category:      CategoryTechnical,
			PassThreshold: 75,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"joins", "group by", "indexes", "subqueries"},
		},
		{
			ID:            "rest-api-design",
			Name:          "REST API Design",
			Description:   "Resource modeling, status codes, versioning, and pagination",
			Category:      CategoryTechnical,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"http methods", "status codes", "versioning", "idempotency"},
		},
		{
			ID:            "cloud-architecture",
			Name:          "Cloud Architecture",
			Description:   "Scalability, availability, and cost trade-offs in cloud systems",
			Category:      CategoryTechnical,
			PassThreshold: 80,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"load balancing", "autoscaling", "regions", "queues"},
		},
		{
			ID:            "people-management",
			Name:          "People Management",
			Description:   "Feedback, delegation, one-on-ones, and team development",
			Category:      CategoryLeadership,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"feedback", "delegation", "coaching", "performance"},
		},
		{
			ID:            "strategic-thinking",
			Name:          "Strategic Thinking",
			Description:   "Prioritization, goal setting, and long-term planning",
			Category:      CategoryLeadership,
			PassThreshold: 75,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"okrs", "prioritization", "trade-offs", "vision"},
		},
		{
			ID:            "written-communication",
			Name:          "Written Communication",
			Description:   "Clear, concise business writing for documents and messages",
			Category:      CategoryCommunication,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"clarity", "structure", "audience", "tone"},
		},
		{
			ID:            "presentation-skills",
			Name:          "Presentation Skills",
			Description:   "Structuring and delivering persuasive presentations",
			Category:      CategoryCommunication,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"storytelling", "slides", "delivery", "audience"},
		},
		{
			ID:            "data-analysis",
			Name:          "Data Analysis",
			Description:   "Descriptive statistics, data cleaning, and interpretation",
			Category:      CategoryData,
			PassThreshold: 75,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"mean vs median", "outliers", "correlation", "sampling"},
		},
		{
			ID:            "data-visualization",
			Name:          "Data Visualization",
			Description:   "Choosing and designing effective charts",
			Category:      CategoryData,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"chart types", "axes", "color", "misleading charts"},
		},
		{
			ID:            "product-discovery",
			Name:          "Product Discovery",
			Description:   "User research, problem framing, and validation",
			Category:      CategoryProduct,
			PassThreshold: 70,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"user interviews", "personas", "mvp", "validation"},
		},
		{
			ID:            "ux-principles",
			Name:          "UX Principles",
			Description:   "Usability heuristics, accessibility, and interaction design",
			Category:      CategoryProduct,
			PassThreshold: 75,
			QuestionCount: DefaultQuestionCount,
			Keywords:      []string{"heuristics", "accessibility", "affordance", "feedback"},
		},
	}
}
