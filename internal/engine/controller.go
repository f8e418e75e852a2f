package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"consent_governance_system/internal/db/models"
	"go.uber.org/zap"
)

type CreateRequest struct {
	Proposer    string
	Bond        uint64
	Category    models.Category
	Title       string
	Description string
	Link        string
}

// Controller runs every state transition of a proposal. Calls are serialised.
type Controller struct {
	mu sync.Mutex

	config Config
	store  Store
	oracle CredentialOracle
	ledger BondLedger
	clock  Clock
	logger *zap.SugaredLogger
}

func NewController(
	config Config,
	store Store,
	oracle CredentialOracle,
	ledger BondLedger,
	clock Clock,
	logger *zap.SugaredLogger,
) *Controller {
	return &Controller{
		config: config,
		store:  store,
		oracle: oracle,
		ledger: ledger,
		clock:  clock,
		logger: logger,
	}
}

func (c *Controller) Create(ctx context.Context, request CreateRequest) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	kind, err := validateCreateRequest(request)
	if err != nil {
		return 0, c.reject("create", err, "proposer", request.Proposer)
	}
	if request.Bond < c.config.PreVoteBond {
		return 0, c.reject("create", ErrInsufficientBond, "proposer", request.Proposer, "bond", request.Bond)
	}
	if err := c.checkCredential(ctx, request.Proposer, c.config.ProposerClass, now); err != nil {
		return 0, c.reject("create", err, "proposer", request.Proposer)
	}

	proposal := &models.Proposal{
		Proposer:      request.Proposer,
		Category:      request.Category,
		Consent:       kind,
		Title:         strings.TrimSpace(request.Title),
		Description:   strings.TrimSpace(request.Description),
		Link:          strings.TrimSpace(request.Link),
		Phase:         models.PhasePreVote,
		CreatedAt:     now,
		PhaseDeadline: now.Add(c.config.PreVoteDuration),
		BondAmount:    request.Bond,
		SupportVotes:  []string{},
		ConsentVotes:  map[string]models.VoteValue{},
	}

	fastTrack := c.config.ActiveQueueBond > 0 && request.Bond >= c.config.ActiveQueueBond
	if fastTrack {
		if err := c.activate(ctx, proposal, now); err != nil {
			return 0, err
		}
	}

	receipt, err := c.ledger.Lock(ctx, request.Proposer, request.Bond)
	if err != nil {
		return 0, fmt.Errorf("failed to lock bond: %w", err)
	}
	proposal.BondReceipt = receipt

	id, err := c.store.Create(ctx, proposal)
	if err != nil {
		if releaseErr := c.ledger.Release(ctx, receipt, request.Proposer); releaseErr != nil {
			c.logger.Errorw("failed to return bond after failed create", "receipt", receipt, "error", releaseErr)
		}
		return 0, fmt.Errorf("failed to store proposal: %w", err)
	}

	c.logger.Infow("proposal created",
		"id", id,
		"proposer", request.Proposer,
		"category", request.Category,
		"phase", proposal.Phase,
	)
	return id, nil
}

// Support adds voter to the supporters of a pre-vote proposal and promotes it
// once the support threshold is reached.
func (c *Controller) Support(ctx context.Context, voter string, id uint32) (*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if err := c.checkCredential(ctx, voter, c.config.VoterClass, now); err != nil {
		return nil, c.reject("support", err, "voter", voter, "id", id)
	}

	located, err := c.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if located.Partition != PartitionPreVote {
		return nil, c.reject("support", ErrNotFound, "voter", voter, "id", id)
	}

	proposal := located.Proposal
	if proposal.HasSupported(voter) {
		return nil, c.reject("support", ErrAlreadySupported, "voter", voter, "id", id)
	}
	if c.status(proposal, now).IsTerminal() {
		return nil, c.reject("support", ErrPhaseClosed, "voter", voter, "id", id)
	}

	proposal.SupportVotes = append(proposal.SupportVotes, voter)

	if uint32(len(proposal.SupportVotes)) < c.config.SupportThreshold {
		if err := c.store.Update(ctx, proposal); err != nil {
			return nil, fmt.Errorf("failed to update proposal: %w", err)
		}
		c.logger.Infow("proposal supported", "id", id, "voter", voter, "support", len(proposal.SupportVotes))
		return c.withStatus(proposal, now), nil
	}

	if err := c.activate(ctx, proposal, now); err != nil {
		return nil, err
	}
	if err := c.store.Promote(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to promote proposal: %w", err)
	}

	c.logger.Infow("proposal promoted",
		"id", id,
		"voter", voter,
		"eligible_population", proposal.EligiblePopulation,
		"deadline", proposal.PhaseDeadline,
	)
	return c.withStatus(proposal, now), nil
}

// ExpirePreVote settles a pre-vote proposal whose deadline passed without
// reaching the support threshold.
func (c *Controller) ExpirePreVote(ctx context.Context, id uint32) (*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	located, err := c.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if located.Partition != PartitionPreVote {
		return nil, c.reject("expire", ErrNotFound, "id", id)
	}

	proposal := located.Proposal
	if !c.status(proposal, now).IsTerminal() {
		return nil, c.reject("expire", ErrPhaseOpen, "id", id)
	}

	return c.resolve(ctx, proposal, now)
}

func (c *Controller) CastConsent(ctx context.Context, voter string, id uint32, value models.VoteValue) (*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if !value.IsValid() {
		return nil, c.reject("cast consent", ErrInvalidVote, "voter", voter, "id", id, "value", value)
	}
	if err := c.checkCredential(ctx, voter, c.config.VoterClass, now); err != nil {
		return nil, c.reject("cast consent", err, "voter", voter, "id", id)
	}

	located, err := c.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if located.Partition != PartitionActive {
		return nil, c.reject("cast consent", ErrNotFound, "voter", voter, "id", id)
	}

	proposal := located.Proposal
	if proposal.HasVoted(voter) {
		return nil, c.reject("cast consent", ErrAlreadyVoted, "voter", voter, "id", id)
	}
	if c.status(proposal, now).IsTerminal() {
		return nil, c.reject("cast consent", ErrPhaseClosed, "voter", voter, "id", id)
	}
	// the electorate is frozen at promotion
	if uint64(len(proposal.ConsentVotes)) >= proposal.EligiblePopulation {
		return nil, c.reject("cast consent", ErrPhaseClosed, "voter", voter, "id", id, "reason", "electorate exhausted")
	}

	if proposal.ConsentVotes == nil {
		proposal.ConsentVotes = make(map[string]models.VoteValue)
	}
	proposal.ConsentVotes[voter] = value

	if err := c.store.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	c.logger.Infow("consent cast", "id", id, "voter", voter, "value", value)

	status := c.status(proposal, now)
	if status.IsTerminal() {
		c.logger.Infow("proposal decided", "id", id, "status", status)
		if err := c.dispose(ctx, proposal, status); err != nil {
			c.logger.Errorw("failed to dispose bond, leaving it for the sweep", "id", id, "error", err)
		}
	}

	return c.withStatus(proposal, now), nil
}

// MarkSpam flags a proposal as spam and forfeits its bond to the community
// treasury unless the bond was already disposed.
func (c *Controller) MarkSpam(ctx context.Context, marker string, id uint32) (*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if !c.config.isSpamMarker(marker) {
		return nil, c.reject("mark spam", ErrUnauthorized, "marker", marker, "id", id)
	}

	located, err := c.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if !located.Found() {
		return nil, c.reject("mark spam", ErrNotFound, "marker", marker, "id", id)
	}

	proposal := located.Proposal
	if !proposal.IsSpam {
		proposal.IsSpam = true
		if err := c.store.Update(ctx, proposal); err != nil {
			return nil, fmt.Errorf("failed to update proposal: %w", err)
		}
		c.logger.Infow("proposal marked as spam", "id", id, "marker", marker)
	}

	if !proposal.BondDisposed {
		if err := c.dispose(ctx, proposal, models.StatusSpam); err != nil {
			c.logger.Errorw("failed to dispose bond, leaving it for the sweep", "id", id, "error", err)
		}
	}

	return c.withStatus(proposal, now), nil
}

// Resolve recomputes the status of a proposal and disposes its bond the first
// time the status is terminal.
func (c *Controller) Resolve(ctx context.Context, id uint32) (*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	located, err := c.store.Locate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to locate proposal: %w", err)
	}
	if !located.Found() {
		return nil, ErrNotFound
	}

	return c.resolve(ctx, located.Proposal, c.clock.Now())
}

// ResolveAll resolves every proposal with an undisposed bond and returns the
// ones disposed by this call.
func (c *Controller) ResolveAll(ctx context.Context) ([]*models.Proposal, error) {
	ids, err := c.store.Undisposed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get undisposed proposals: %w", err)
	}

	var disposed []*models.Proposal
	for _, id := range ids {
		proposal, err := c.Resolve(ctx, id)
		if err != nil {
			c.logger.Errorw("failed to resolve proposal", "id", id, "error", err)
			continue
		}
		if proposal.BondDisposed {
			disposed = append(disposed, proposal)
		}
	}

	return disposed, nil
}

// Unannounced returns the settled proposals whose outcome has not been
// announced yet.
func (c *Controller) Unannounced(ctx context.Context) ([]*models.Proposal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids, err := c.store.Unannounced(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get unannounced proposals: %w", err)
	}

	now := c.clock.Now()
	proposals := make([]*models.Proposal, 0, len(ids))
	for _, id := range ids {
		located, err := c.store.Locate(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to locate proposal %d: %w", id, err)
		}
		if !located.Found() {
			continue
		}
		proposals = append(proposals, c.withStatus(located.Proposal, now))
	}

	return proposals, nil
}

func (c *Controller) MarkAnnounced(ctx context.Context, id uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.MarkAnnounced(ctx, id); err != nil {
		return fmt.Errorf("failed to mark proposal %d as announced: %w", id, err)
	}
	return nil
}

func (c *Controller) resolve(ctx context.Context, proposal *models.Proposal, now time.Time) (*models.Proposal, error) {
	status := c.status(proposal, now)
	if status.IsTerminal() && !proposal.BondDisposed {
		if err := c.dispose(ctx, proposal, status); err != nil {
			return nil, err
		}
	}
	return c.withStatus(proposal, now), nil
}

// dispose stores the claim on the record before releasing the bond. A failed
// release reopens the claim.
func (c *Controller) dispose(ctx context.Context, proposal *models.Proposal, status models.Status) error {
	destination := proposal.Proposer
	if status == models.StatusSpam {
		destination = c.config.CommunityTreasury
	}

	proposal.BondDisposed = true
	proposal.BondDestination = destination
	if err := c.store.Update(ctx, proposal); err != nil {
		proposal.BondDisposed = false
		proposal.BondDestination = ""
		return fmt.Errorf("failed to claim bond disposal: %w", err)
	}

	err := c.ledger.Release(ctx, proposal.BondReceipt, destination)
	if err != nil && !errors.Is(err, ErrBondReleased) {
		proposal.BondDisposed = false
		proposal.BondDestination = ""
		if reopenErr := c.store.Update(ctx, proposal); reopenErr != nil {
			c.logger.Errorw("bond disposal claimed but bond not released",
				"id", proposal.ID,
				"receipt", proposal.BondReceipt,
				"destination", destination,
				"error", reopenErr,
			)
		}
		return fmt.Errorf("failed to release bond: %w", err)
	}

	c.logger.Infow("bond disposed",
		"id", proposal.ID,
		"status", status,
		"destination", destination,
		"amount", proposal.BondAmount,
	)
	return nil
}

// activate moves the record to the active phase in memory. The eligible
// population is snapshotted here.
func (c *Controller) activate(ctx context.Context, proposal *models.Proposal, now time.Time) error {
	population, err := c.eligiblePopulation(ctx, now)
	if err != nil {
		return err
	}

	proposal.Phase = models.PhaseActive
	proposal.PhaseDeadline = now.Add(c.config.VotingDuration)
	proposal.SupportVotes = nil
	proposal.EligiblePopulation = population
	if proposal.ConsentVotes == nil {
		proposal.ConsentVotes = make(map[string]models.VoteValue)
	}
	return nil
}

func (c *Controller) eligiblePopulation(ctx context.Context, now time.Time) (uint64, error) {
	census, ok := c.oracle.(Census)
	if !ok {
		return c.config.EligiblePopulation, nil
	}

	holders, err := census.Holders(ctx, c.config.VoterClass, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count credential holders: %w", err)
	}
	if holders == 0 {
		return c.config.EligiblePopulation, nil
	}
	return holders, nil
}

func (c *Controller) checkCredential(ctx context.Context, account, class string, at time.Time) error {
	valid, err := c.oracle.IsValid(ctx, account, class, at)
	if err != nil {
		return fmt.Errorf("failed to check credential: %w", err)
	}
	if !valid {
		return ErrNotEligible
	}
	return nil
}

func (c *Controller) status(proposal *models.Proposal, now time.Time) models.Status {
	return StatusAt(c.config.Policy, proposal, now)
}

func (c *Controller) withStatus(proposal *models.Proposal, now time.Time) *models.Proposal {
	proposal.Status = c.status(proposal, now)
	return proposal
}

func (c *Controller) reject(operation string, err error, keysAndValues ...interface{}) error {
	c.logger.Debugw(operation+" rejected", append(keysAndValues, "error", err)...)
	return err
}

func validateCreateRequest(request CreateRequest) (models.ConsentKind, error) {
	kind, ok := request.Category.Consent()
	if !ok {
		return "", ErrUnknownCategory
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidProposal)
	}
	if len([]rune(title)) > MaxTitleLength {
		return "", fmt.Errorf("%w: title is longer than %d characters", ErrInvalidProposal, MaxTitleLength)
	}
	if len([]rune(strings.TrimSpace(request.Link))) > MaxLinkLength {
		return "", fmt.Errorf("%w: link is longer than %d characters", ErrInvalidProposal, MaxLinkLength)
	}

	return kind, nil
}
