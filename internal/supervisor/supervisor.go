// Package supervisor implements the consensus-and-retry orchestration loop.
// The supervisor dispatches each document to both sub-agents in parallel,
// joins their outcomes, evaluates them against the agreement rule, and
// either finalizes a decision or re-dispatches with retry guidance. Every
// session terminates in at most maxRetries+1 dispatch cycles with an
// accepted decision or an explicit escalation.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	retry "github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/consensus"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/internal/observability"
	"github.com/triage-labs/quorum/internal/prompts"
)

// Classifier is the sub-agent contract the supervisor dispatches against.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, doc documents.Document, round int, retryContext string) (*classify.Vote, error)
}

// Guide drafts retry instructions from a failed round's votes.
type Guide interface {
	Guide(ctx context.Context, doc documents.Document, round int, voteA, voteB *classify.Vote) (string, error)
}

// Supervisor owns the bounded retry state machine. It holds no per-session
// state; distinct documents may be classified concurrently through the
// same supervisor.
type Supervisor struct {
	cfg    Config
	agentA Classifier
	agentB Classifier
	guide  Guide
	logger *slog.Logger
}

// New creates a Supervisor, failing fast on invalid configuration.
// guide may be nil; retry guidance then falls back to the deterministic
// vote summary.
func New(cfg Config, agentA, agentB Classifier, guide Guide, logger *slog.Logger) (*Supervisor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Supervisor{
		cfg:    cfg,
		agentA: agentA,
		agentB: agentB,
		guide:  guide,
		logger: logger.With("system", "supervisor"),
	}, nil
}

// Run classifies one document to a terminal decision. The returned
// Decision is either accepted (consensus label, conservative confidence,
// merged rationale) or escalated (last votes plus reason trail); both are
// ordinary results. An error return means the session itself could not
// complete: cancellation, budget expiry, or a programming-contract
// violation. Recoverable agent and schema failures never surface here;
// they consume retries inside the loop.
func (s *Supervisor) Run(ctx context.Context, doc documents.Document) (*classify.Decision, error) {
	sess := newSession(doc, s.cfg.MaxRetries)
	start := time.Now()

	if s.cfg.SessionBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SessionBudget)
		defer cancel()
	}

	s.logger.InfoContext(
		ctx, "session started",
		"session_id", sess.ID,
		"document", doc.Name,
		"max_rounds", s.cfg.MaxRetries+1,
	)

	backoff := retry.NewFibonacci(s.cfg.backoffBase())
	retryContext := ""

	for {
		if err := ctx.Err(); err != nil {
			observability.RecordSession("error", sess.Attempts(), time.Since(start))
			return nil, fmt.Errorf("session %s: %w", sess.ID, err)
		}

		if err := sess.beginAttempt(); err != nil {
			return nil, err
		}
		round := sess.Attempts()

		outA, outB := s.dispatch(ctx, sess, round, retryContext)

		// A cancelled session discards whatever the in-flight calls
		// returned; nothing past this point applies their results.
		if err := ctx.Err(); err != nil {
			observability.RecordSession("error", sess.Attempts(), time.Since(start))
			return nil, fmt.Errorf("session %s: %w", sess.ID, err)
		}

		if err := sess.transition(StateEvaluating); err != nil {
			return nil, err
		}

		verdict := consensus.Evaluate(outA, outB, s.cfg.MinConfidence)

		if verdict.Kind == consensus.KindAccept {
			sess.record(Attempt{Round: round, OutcomeA: outA, OutcomeB: outB, Verdict: verdict, At: time.Now()})
			if err := sess.transition(StateAccepted); err != nil {
				return nil, err
			}

			decision := s.accepted(sess, verdict, outA, outB)
			observability.RecordSession("accepted", sess.Attempts(), time.Since(start))
			s.logger.InfoContext(
				ctx, "session accepted",
				"session_id", sess.ID,
				"label", decision.Label,
				"confidence", decision.Confidence,
				"rounds", decision.RoundsUsed,
			)
			return decision, nil
		}

		exhausted := sess.Attempts() >= s.cfg.MaxRetries+1
		if exhausted {
			// Budget is spent: the final retry verdict becomes an escalation.
			verdict = consensus.Verdict{
				Kind:   consensus.KindEscalate,
				Reason: verdict.Reason,
				Score:  verdict.Score,
			}
		}
		sess.record(Attempt{Round: round, OutcomeA: outA, OutcomeB: outB, Verdict: verdict, At: time.Now()})

		if exhausted {
			if err := sess.transition(StateEscalated); err != nil {
				return nil, err
			}

			decision := s.escalated(sess, verdict, outA, outB)
			observability.RecordSession("escalated", sess.Attempts(), time.Since(start))
			s.logger.WarnContext(
				ctx, "session escalated",
				"session_id", sess.ID,
				"rounds", decision.RoundsUsed,
				"reasons", decision.ReasonHistory,
			)
			return decision, nil
		}

		if err := sess.transition(StateRetrying); err != nil {
			return nil, err
		}

		s.logger.InfoContext(
			ctx, "retrying",
			"session_id", sess.ID,
			"round", round,
			"reason", verdict.Reason,
		)

		retryContext = s.retryContext(ctx, sess, round, outA, outB)

		delay, _ := backoff.Next()
		if err := wait(ctx, delay); err != nil {
			observability.RecordSession("error", sess.Attempts(), time.Since(start))
			return nil, fmt.Errorf("session %s: %w", sess.ID, err)
		}
	}
}

// dispatch invokes both sub-agents in parallel and joins their outcomes.
// This is a join point, not a race: both results (votes or errors) are in
// hand before evaluation. Individual agent failures are captured as failed
// outcomes rather than propagated, so one bad call never cancels its peer.
func (s *Supervisor) dispatch(ctx context.Context, sess *Session, round int, retryContext string) (consensus.Outcome, consensus.Outcome) {
	var outA, outB consensus.Outcome

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		outA = s.outcome(gctx, s.agentA, sess, round, retryContext)
		return nil
	})
	g.Go(func() error {
		outB = s.outcome(gctx, s.agentB, sess, round, retryContext)
		return nil
	})
	g.Wait()

	return outA, outB
}

func (s *Supervisor) outcome(ctx context.Context, agent Classifier, sess *Session, round int, retryContext string) consensus.Outcome {
	vote, err := agent.Classify(ctx, sess.Document, round, retryContext)
	if err != nil {
		s.logger.WarnContext(
			ctx, "agent attempt failed",
			"session_id", sess.ID,
			"agent", agent.Name(),
			"round", round,
			"error", err,
		)
		return consensus.Outcome{Agent: agent.Name(), Err: err}
	}
	return consensus.Outcome{Agent: agent.Name(), Vote: vote}
}

// retryContext produces the prompt augmentation for the next round. With
// guidance enabled and both votes in hand, the supervisor model drafts
// neutral instructions; otherwise (or when that call fails) the
// deterministic summary of the prior round is used.
func (s *Supervisor) retryContext(ctx context.Context, sess *Session, round int, outA, outB consensus.Outcome) string {
	fallback := prompts.FallbackGuidance(prompts.VoteSummary(outA.Vote), prompts.VoteSummary(outB.Vote))

	if !s.cfg.GuidanceEnabled || s.guide == nil || outA.Vote == nil || outB.Vote == nil {
		return fallback
	}

	guidance, err := s.guide.Guide(ctx, sess.Document, round, outA.Vote, outB.Vote)
	if err != nil {
		s.logger.WarnContext(
			ctx, "guidance failed, using fallback",
			"session_id", sess.ID,
			"round", round,
			"error", err,
		)
		return fallback
	}
	return guidance
}

func (s *Supervisor) accepted(sess *Session, verdict consensus.Verdict, outA, outB consensus.Outcome) *classify.Decision {
	return &classify.Decision{
		SessionID:           sess.ID,
		DocumentID:          sess.Document.ID,
		DocumentName:        sess.Document.Name,
		Outcome:             classify.OutcomeAccepted,
		Label:               verdict.Result.Label,
		Confidence:          verdict.Result.Confidence,
		Rationale:           verdict.Result.Rationale,
		MatchedRubricPoints: verdict.Result.MatchedRubricPoints,
		VoteA:               outA.Vote,
		VoteB:               outB.Vote,
		ConsensusReached:    true,
		ConsensusScore:      verdict.Score,
		RoundsUsed:          sess.Attempts(),
		CompletedAt:         time.Now(),
	}
}

func (s *Supervisor) escalated(sess *Session, verdict consensus.Verdict, outA, outB consensus.Outcome) *classify.Decision {
	return &classify.Decision{
		SessionID:        sess.ID,
		DocumentID:       sess.Document.ID,
		DocumentName:     sess.Document.Name,
		Outcome:          classify.OutcomeEscalated,
		VoteA:            outA.Vote,
		VoteB:            outB.Vote,
		ConsensusReached: false,
		ConsensusScore:   verdict.Score,
		RoundsUsed:       sess.Attempts(),
		ReasonHistory:    sess.Reasons(),
		CompletedAt:      time.Now(),
	}
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
