package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill this question was for"),
		field.String("question_id").
			NotEmpty().
			Comment("UUID assigned at generation time"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, true_false, or short_answer"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner entered, empty if skipped"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("correct"),
	}
}
