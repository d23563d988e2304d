// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Ajinkya236/skillsprint/ent/answerevent"
	"github.com/Ajinkya236/skillsprint/ent/attemptevent"
	"github.com/Ajinkya236/skillsprint/ent/badgeevent"
	"github.com/Ajinkya236/skillsprint/ent/llmrequestevent"
	"github.com/Ajinkya236/skillsprint/ent/schema"
	"github.com/Ajinkya236/skillsprint/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescPayloadVersion is the schema descriptor for payload_version field.
	answereventDescPayloadVersion := answereventMixinFields0[2].Descriptor()
	// answerevent.DefaultPayloadVersion holds the default value on creation for the payload_version field.
	answerevent.DefaultPayloadVersion = answereventDescPayloadVersion.Default.(int)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescSkillID is the schema descriptor for skill_id field.
	answereventDescSkillID := answereventFields[1].Descriptor()
	// answerevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	answerevent.SkillIDValidator = answereventDescSkillID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[5].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[7].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescPayloadVersion is the schema descriptor for payload_version field.
	attempteventDescPayloadVersion := attempteventMixinFields0[2].Descriptor()
	// attemptevent.DefaultPayloadVersion holds the default value on creation for the payload_version field.
	attemptevent.DefaultPayloadVersion = attempteventDescPayloadVersion.Default.(int)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescSkillID is the schema descriptor for skill_id field.
	attempteventDescSkillID := attempteventFields[1].Descriptor()
	// attemptevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	attemptevent.SkillIDValidator = attempteventDescSkillID.Validators[0].(func(string) error)
	// attempteventDescSkillName is the schema descriptor for skill_name field.
	attempteventDescSkillName := attempteventFields[2].Descriptor()
	// attemptevent.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	attemptevent.SkillNameValidator = attempteventDescSkillName.Validators[0].(func(string) error)
	// attempteventDescProficiency is the schema descriptor for proficiency field.
	attempteventDescProficiency := attempteventFields[3].Descriptor()
	// attemptevent.ProficiencyValidator is a validator for the "proficiency" field. It is called by the builders before save.
	attemptevent.ProficiencyValidator = attempteventDescProficiency.Validators[0].(func(string) error)
	// attempteventDescMode is the schema descriptor for mode field.
	attempteventDescMode := attempteventFields[4].Descriptor()
	// attemptevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	attemptevent.ModeValidator = attempteventDescMode.Validators[0].(func(string) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescPayloadVersion is the schema descriptor for payload_version field.
	badgeeventDescPayloadVersion := badgeeventMixinFields0[2].Descriptor()
	// badgeevent.DefaultPayloadVersion holds the default value on creation for the payload_version field.
	badgeevent.DefaultPayloadVersion = badgeeventDescPayloadVersion.Default.(int)
	// badgeeventDescBadgeType is the schema descriptor for badge_type field.
	badgeeventDescBadgeType := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badgeevent.BadgeTypeValidator = badgeeventDescBadgeType.Validators[0].(func(string) error)
	// badgeeventDescSessionID is the schema descriptor for session_id field.
	badgeeventDescSessionID := badgeeventFields[1].Descriptor()
	// badgeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	badgeevent.SessionIDValidator = badgeeventDescSessionID.Validators[0].(func(string) error)
	// badgeeventDescPoints is the schema descriptor for points field.
	badgeeventDescPoints := badgeeventFields[4].Descriptor()
	// badgeevent.DefaultPoints holds the default value on creation for the points field.
	badgeevent.DefaultPoints = badgeeventDescPoints.Default.(int)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[5].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescPayloadVersion is the schema descriptor for payload_version field.
	llmrequesteventDescPayloadVersion := llmrequesteventMixinFields0[2].Descriptor()
	// llmrequestevent.DefaultPayloadVersion holds the default value on creation for the payload_version field.
	llmrequestevent.DefaultPayloadVersion = llmrequesteventDescPayloadVersion.Default.(int)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
