package skills

import "testing"

func TestCatalog_Lookup(t *testing.T) {
	all := AllSkills()
	if len(all) == 0 {
		t.Fatal("expected seeded skills")
	}

	s, err := GetSkill("go-fundamentals")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Go Fundamentals" {
		t.Errorf("Name = %q, want %q", s.Name, "Go Fundamentals")
	}
	if s.Category != CategoryTechnical {
		t.Errorf("Category = %q, want %q", s.Category, CategoryTechnical)
	}

	if _, err := GetSkill("does-not-exist"); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestCatalog_Thresholds(t *testing.T) {
	for _, s := range AllSkills() {
		if s.PassThreshold < 50 || s.PassThreshold > 100 {
			t.Errorf("%s: PassThreshold = %d, want 50-100", s.ID, s.PassThreshold)
		}
		if s.QuestionCount <= 0 {
			t.Errorf("%s: QuestionCount = %d, want > 0", s.ID, s.QuestionCount)
		}
	}
}

func TestCatalog_ByCategory(t *testing.T) {
	tech := ByCategory(CategoryTechnical)
	if len(tech) == 0 {
		t.Fatal("expected technical skills")
	}
	for _, s := range tech {
		if s.Category != CategoryTechnical {
			t.Errorf("%s: Category = %q, want technical", s.ID, s.Category)
		}
	}
}

func TestProficiency_Next(t *testing.T) {
	if ProficiencyBeginner.Next() != ProficiencyIntermediate {
		t.Error("beginner should step to intermediate")
	}
	if ProficiencyIntermediate.Next() != ProficiencyAdvanced {
		t.Error("intermediate should step to advanced")
	}
	if ProficiencyAdvanced.Next() != ProficiencyAdvanced {
		t.Error("advanced should saturate")
	}
}
