package repositories

import (
	"context"
	"errors"
	"sort"

	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/engine"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const counterID = 1

type preVoteProposal struct {
	tableName struct{} `pg:"pre_vote_proposals"`
	models.Proposal
}

type activeProposal struct {
	tableName struct{} `pg:"active_proposals"`
	models.Proposal
}

type proposalRepository struct {
	repository
}

// NewProposalRepository returns a Store backed by one table per partition and
// a single-row counter table.
func NewProposalRepository(db *pg.DB) engine.Store {
	return &proposalRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) (uint32, error) {
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		counter := &models.ProposalCounter{ID: counterID}

		_, err := tx.ModelContext(ctx, counter).
			Set("value = value + 1").
			WherePK().
			Returning("value").
			Update()
		if err != nil {
			return err
		}

		proposal.ID = counter.Value

		_, err = tx.ModelContext(ctx, partitionModel(proposal)).Insert()
		return err
	})
	if err != nil {
		return 0, err
	}

	return proposal.ID, nil
}

func (r *proposalRepository) Locate(ctx context.Context, id uint32) (engine.Located, error) {
	active := &activeProposal{}
	err := r.db.ModelContext(ctx, active).Where("id = ?", id).Select()
	if err == nil {
		return engine.InActive(&active.Proposal), nil
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return engine.Located{}, err
	}

	preVote := &preVoteProposal{}
	err = r.db.ModelContext(ctx, preVote).Where("id = ?", id).Select()
	if err == nil {
		return engine.InPreVote(&preVote.Proposal), nil
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return engine.Located{}, err
	}

	return engine.Missing(), nil
}

func (r *proposalRepository) Update(ctx context.Context, proposal *models.Proposal) error {
	next := *proposal
	next.Version++

	result, err := r.db.ModelContext(ctx, partitionModel(&next)).
		ExcludeColumn("announced").
		WherePK().
		Where("version = ?", proposal.Version).
		Update()
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return r.missOrConflict(ctx, r.db, partitionModel(proposal), proposal.ID)
	}

	proposal.Version = next.Version
	return nil
}

func (r *proposalRepository) Promote(ctx context.Context, proposal *models.Proposal) error {
	next := *proposal
	next.Version++

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		result, err := tx.ModelContext(ctx, (*preVoteProposal)(nil)).
			Where("id = ?", proposal.ID).
			Where("version = ?", proposal.Version).
			Delete()
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return r.missOrConflict(ctx, tx, (*preVoteProposal)(nil), proposal.ID)
		}

		_, err = tx.ModelContext(ctx, &activeProposal{Proposal: next}).Insert()
		return err
	})
	if err != nil {
		return err
	}

	proposal.Version = next.Version
	return nil
}

func (r *proposalRepository) Counter(ctx context.Context) (uint32, error) {
	counter := &models.ProposalCounter{ID: counterID}

	err := r.db.ModelContext(ctx, counter).WherePK().Select()

	return counter.Value, err
}

func (r *proposalRepository) Undisposed(ctx context.Context) ([]uint32, error) {
	return r.ids(ctx, func(q *orm.Query) *orm.Query {
		return q.Where("bond_disposed = ?", false)
	})
}

func (r *proposalRepository) Unannounced(ctx context.Context) ([]uint32, error) {
	return r.ids(ctx, func(q *orm.Query) *orm.Query {
		return q.Where("bond_disposed = ?", true).Where("announced = ?", false)
	})
}

func (r *proposalRepository) MarkAnnounced(ctx context.Context, id uint32) error {
	for _, model := range partitionModels() {
		result, err := r.db.ModelContext(ctx, model).
			Set("announced = ?", true).
			Where("id = ?", id).
			Update()
		if err != nil {
			return err
		}
		if result.RowsAffected() > 0 {
			return nil
		}
	}

	return engine.ErrNotFound
}

// ids collects the matching ids of both partitions in ascending order.
func (r *proposalRepository) ids(ctx context.Context, filter func(*orm.Query) *orm.Query) ([]uint32, error) {
	ids := make([]uint32, 0)

	for _, model := range partitionModels() {
		var partitionIDs []uint32

		err := filter(r.db.ModelContext(ctx, model).Column("id")).Select(&partitionIDs)
		if err != nil {
			return nil, err
		}

		ids = append(ids, partitionIDs...)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	return ids, nil
}

// missOrConflict tells a stale version apart from a record that left the
// partition.
func (r *proposalRepository) missOrConflict(ctx context.Context, db orm.DB, model interface{}, id uint32) error {
	exists, err := db.ModelContext(ctx, model).Where("id = ?", id).Exists()
	if err != nil {
		return err
	}
	if exists {
		return engine.ErrConflict
	}

	return engine.ErrNotFound
}

func partitionModels() []interface{} {
	return []interface{}{(*preVoteProposal)(nil), (*activeProposal)(nil)}
}

func partitionModel(proposal *models.Proposal) interface{} {
	if proposal.Phase == models.PhaseActive {
		return &activeProposal{Proposal: *proposal}
	}
	return &preVoteProposal{Proposal: *proposal}
}
