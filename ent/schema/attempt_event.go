package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed assessment attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the assessment session"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill assessed"),
		field.String("skill_name").
			NotEmpty().
			Comment("Display name at the time of the attempt"),
		field.String("proficiency").
			NotEmpty().
			Comment("beginner, intermediate, or advanced"),
		field.String("mode").
			NotEmpty().
			Comment("standard or adaptive"),
		field.Int("score").
			Comment("Rounded percentage, 0-100"),
		field.Bool("passed").
			Comment("Whether score met the skill's pass threshold"),
		field.Int("pass_threshold").
			Comment("Threshold in effect for this attempt"),
		field.Int("question_count").
			Comment("Questions served"),
		field.Int("correct_count").
			Comment("Questions answered correctly"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("passed"),
	}
}
