package store

import (
	"context"
	"fmt"

	"github.com/Ajinkya236/skillsprint/ent"
	"github.com/Ajinkya236/skillsprint/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillID(data.SkillID).
		SetSkillName(data.SkillName).
		SetProficiency(data.Proficiency).
		SetMode(data.Mode).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetPassThreshold(data.PassThreshold).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = attemptRecord(e)
	}
	return records, nil
}

func (r *eventRepo) AttemptsBySkill(ctx context.Context, skillID string) ([]AttemptRecord, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SkillID(skillID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for %s: %w", skillID, err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = attemptRecord(e)
	}
	return records, nil
}

func (r *eventRepo) SkillStats(ctx context.Context, skillID string) (SkillStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SkillID(skillID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return SkillStats{}, fmt.Errorf("query attempts for %s: %w", skillID, err)
	}

	var stats SkillStats
	for _, e := range events {
		stats.Attempts++
		if e.Passed {
			stats.Passes++
		}
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
		stats.LastScore = e.Score
		stats.LastAttempt = e.Timestamp
	}
	return stats, nil
}

func attemptRecord(e *ent.AttemptEvent) AttemptRecord {
	return AttemptRecord{
		AttemptEventData: AttemptEventData{
			SessionID:     e.SessionID,
			SkillID:       e.SkillID,
			SkillName:     e.SkillName,
			Proficiency:   e.Proficiency,
			Mode:          e.Mode,
			Score:         e.Score,
			Passed:        e.Passed,
			PassThreshold: e.PassThreshold,
			QuestionCount: e.QuestionCount,
			CorrectCount:  e.CorrectCount,
		},
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
	}
}
