package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/policypulse/policypulse/gen/ent"
	"github.com/policypulse/policypulse/gen/ent/legislation"
	"github.com/policypulse/policypulse/internal/common"
)

type LegislationRepository interface {
	Upsert(ctx context.Context, in UpsertLegislation) (*ent.Legislation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Legislation, error)
	GetByExternalID(ctx context.Context, externalID string) (*ent.Legislation, error)
	List(ctx context.Context, source string, limit, offset int) ([]*ent.Legislation, error)
}

// UpsertLegislation carries the upstream bill record.
type UpsertLegislation struct {
	ExternalID  string
	BillNumber  string
	Title       string
	Description string
	GovtType    string
	GovtSource  string
	BillStatus  string
	URL         string
}

type legislationRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewLegislationRepository(entc *ent.Client, log *slog.Logger) LegislationRepository {
	return &legislationRepo{ent: entc, log: log}
}

func (r *legislationRepo) Upsert(ctx context.Context, in UpsertLegislation) (*ent.Legislation, error) {
	existing, err := r.ent.Legislation.Query().
		Where(legislation.ExternalID(in.ExternalID)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetBillNumber(in.BillNumber).
			SetTitle(in.Title)
		if in.Description != "" {
			upd.SetDescription(in.Description)
		}
		if in.BillStatus != "" {
			upd.SetBillStatus(in.BillStatus)
		}
		if in.URL != "" {
			upd.SetURL(in.URL)
		}
		return upd.Save(ctx)
	case ent.IsNotFound(err):
		create := r.ent.Legislation.Create().
			SetExternalID(in.ExternalID).
			SetBillNumber(in.BillNumber).
			SetTitle(in.Title)
		if in.Description != "" {
			create.SetDescription(in.Description)
		}
		if in.GovtType != "" {
			create.SetGovtType(in.GovtType)
		}
		if in.GovtSource != "" {
			create.SetGovtSource(in.GovtSource)
		}
		if in.BillStatus != "" {
			create.SetBillStatus(in.BillStatus)
		}
		if in.URL != "" {
			create.SetURL(in.URL)
		}
		leg, err := create.Save(ctx)
		if err != nil {
			r.log.Error("legislation create failed", "external_id", in.ExternalID, "err", err)
			return nil, err
		}
		r.log.Info("legislation created", "id", leg.ID, "bill", leg.BillNumber)
		return leg, nil
	default:
		return nil, err
	}
}

func (r *legislationRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Legislation, error) {
	leg, err := r.ent.Legislation.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return leg, err
}

func (r *legislationRepo) GetByExternalID(ctx context.Context, externalID string) (*ent.Legislation, error) {
	leg, err := r.ent.Legislation.Query().
		Where(legislation.ExternalID(externalID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return leg, err
}

func (r *legislationRepo) List(ctx context.Context, source string, limit, offset int) ([]*ent.Legislation, error) {
	q := r.ent.Legislation.Query().
		Order(ent.Desc(legislation.FieldUpdatedAt)).
		Limit(limit).
		Offset(offset)
	if source != "" {
		q.Where(legislation.GovtSource(source))
	}
	return q.All(ctx)
}
