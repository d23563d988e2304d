package store

import (
	"context"
	"fmt"

	"github.com/Ajinkya236/skillsprint/ent"
	"github.com/Ajinkya236/skillsprint/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetBadgeType(data.BadgeType).
		SetSessionID(data.SessionID).
		SetPoints(data.Points).
		SetReason(data.Reason)

	if data.SkillID != "" {
		builder = builder.SetSkillID(data.SkillID)
	}
	if data.SkillName != "" {
		builder = builder.SetSkillName(data.SkillName)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error) {
	query := r.client.BadgeEvent.Query().
		Order(ent.Desc(badgeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(badgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(badgeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(badgeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(badgeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeRecord, len(events))
	for i, e := range events {
		records[i] = BadgeRecord{
			BadgeEventData: BadgeEventData{
				BadgeType: e.BadgeType,
				SessionID: e.SessionID,
				SkillID:   e.SkillID,
				SkillName: e.SkillName,
				Points:    e.Points,
				Reason:    e.Reason,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) BadgeCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.BadgeEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query badge counts: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.BadgeType]++
	}
	return counts, len(events), nil
}

func (r *eventRepo) TotalPoints(ctx context.Context) (int, error) {
	events, err := r.client.BadgeEvent.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query badge points: %w", err)
	}

	total := 0
	for _, e := range events {
		total += e.Points
	}
	return total, nil
}
