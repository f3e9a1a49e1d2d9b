package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/fracmap/ent"
	"github.com/abhisek/fracmap/ent/assessment"
	"github.com/abhisek/fracmap/ent/schema"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) error {
	conversation, err := rawToTurns(rec.Conversation)
	if err != nil {
		return fmt.Errorf("decode conversation: %w", err)
	}
	learnerModel, err := rawToMap(rec.LearnerModel)
	if err != nil {
		return fmt.Errorf("decode learner model: %w", err)
	}
	report, err := rawToMap(rec.Report)
	if err != nil {
		return fmt.Errorf("decode report: %w", err)
	}

	existing, err := r.client.Assessment.Query().
		Where(assessment.SessionID(rec.SessionID)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetMode(rec.Mode).
			SetPersonaName(rec.PersonaName).
			SetStartedAt(rec.StartedAt).
			SetTurnCount(rec.TurnCount).
			SetConversation(conversation).
			SetLearnerModel(learnerModel).
			SetReport(report)
		if rec.EndedAt != nil {
			upd.SetEndedAt(*rec.EndedAt)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update assessment: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		create := r.client.Assessment.Create().
			SetSessionID(rec.SessionID).
			SetMode(rec.Mode).
			SetPersonaName(rec.PersonaName).
			SetStartedAt(rec.StartedAt).
			SetTurnCount(rec.TurnCount).
			SetConversation(conversation).
			SetLearnerModel(learnerModel).
			SetReport(report)
		if rec.EndedAt != nil {
			create.SetEndedAt(*rec.EndedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query assessment: %w", err)
	}
}

func (r *assessmentRepo) Get(ctx context.Context, sessionID string) (*AssessmentRecord, error) {
	a, err := r.client.Assessment.Query().
		Where(assessment.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query assessment: %w", err)
	}
	return entToRecord(a)
}

func (r *assessmentRepo) List(ctx context.Context, limit int) ([]*AssessmentRecord, error) {
	q := r.client.Assessment.Query().
		Order(ent.Desc(assessment.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	recs := make([]*AssessmentRecord, 0, len(rows))
	for _, a := range rows {
		rec, err := entToRecord(a)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func entToRecord(a *ent.Assessment) (*AssessmentRecord, error) {
	conversation, err := json.Marshal(a.Conversation)
	if err != nil {
		return nil, fmt.Errorf("marshal conversation: %w", err)
	}
	learnerModel, err := json.Marshal(a.LearnerModel)
	if err != nil {
		return nil, fmt.Errorf("marshal learner model: %w", err)
	}

	rec := &AssessmentRecord{
		SessionID:    a.SessionID,
		Mode:         a.Mode,
		PersonaName:  a.PersonaName,
		StartedAt:    a.StartedAt,
		EndedAt:      a.EndedAt,
		TurnCount:    a.TurnCount,
		Conversation: conversation,
		LearnerModel: learnerModel,
	}
	if len(a.Report) > 0 {
		report, err := json.Marshal(a.Report)
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		rec.Report = report
	}
	return rec, nil
}

func rawToTurns(raw json.RawMessage) ([]schema.TurnRecord, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var turns []schema.TurnRecord
	if err := json.Unmarshal(raw, &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

func rawToMap(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
