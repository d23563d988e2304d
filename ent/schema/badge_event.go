package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge award. Badges are append-only; the trophy
// shelf is derived by aggregating events.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_type").
			NotEmpty().
			Comment("first_pass, perfect_score, streak, comeback, category_sweep"),
		field.String("session_id").
			NotEmpty().
			Comment("Session whose completion triggered the award"),
		field.String("skill_id").
			Optional().
			Comment("Skill the badge relates to, if any"),
		field.String("skill_name").
			Optional().
			Comment("Display name for rendering without a catalog lookup"),
		field.Int("points").
			Default(0).
			Comment("Points granted with the badge"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable award reason"),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_type"),
		index.Fields("session_id"),
	}
}
