// Package guidance composes the career guidance core behind the session
// guard: resume analysis, recommendations, reports and archiving. Every
// operation requires a logged-in session.
package guidance

import (
	"context"
	"errors"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/archive"
	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/evidence"
	"github.com/UDAY704467/ai-career-guidance/internal/logging"
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
	"github.com/UDAY704467/ai-career-guidance/internal/recommend"
	"github.com/UDAY704467/ai-career-guidance/internal/report"
	"github.com/UDAY704467/ai-career-guidance/internal/session"
)

// ResumeExtractor turns an uploaded document into text.
type ResumeExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
	ExtractFile(ctx context.Context, path string) (string, error)
}

// Deps wires a Service. Engine and Evidence default to the canonical rule
// table and vocabulary, Logger to a no-op and Now to time.Now.
type Deps struct {
	Engine   *recommend.Engine
	Evidence *evidence.Extractor
	Resumes  ResumeExtractor
	Archiver archive.Archiver
	Logger   logging.Logger
	Now      func() time.Time
}

// Service is the application service used by the CLI.
type Service struct {
	engine   *recommend.Engine
	evidence *evidence.Extractor
	resumes  ResumeExtractor
	archiver archive.Archiver
	logger   logging.Logger
	now      func() time.Time
}

func NewService(d Deps) *Service {
	s := &Service{
		engine:   d.Engine,
		evidence: d.Evidence,
		resumes:  d.Resumes,
		archiver: d.Archiver,
		logger:   d.Logger,
		now:      d.Now,
	}
	if s.engine == nil {
		s.engine = recommend.NewEngine()
	}
	if s.evidence == nil {
		s.evidence = evidence.NewExtractor()
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ResumeResult is the outcome of analysing a resume. A failed extraction is
// not an error: Evidence is empty and Warning says why.
type ResumeResult struct {
	Text     string
	Evidence []string
	Warning  error
}

// AnalyzeResume extracts text from an uploaded document and finds evidence
// in it. Only a missing login is returned as an error.
func (s *Service) AnalyzeResume(ctx context.Context, sess *session.Session, filename string, data []byte) (ResumeResult, error) {
	user, err := sess.Require()
	if err != nil {
		return ResumeResult{}, err
	}
	if s.resumes == nil {
		return s.degrade(ctx, user, errors.New("no resume extractor configured")), nil
	}

	text, err := s.resumes.Extract(ctx, filename, data)
	if err != nil {
		return s.degrade(ctx, user, err), nil
	}
	return s.analyzed(ctx, user, text), nil
}

// AnalyzeResumeFile is AnalyzeResume for a document on disk.
func (s *Service) AnalyzeResumeFile(ctx context.Context, sess *session.Session, path string) (ResumeResult, error) {
	user, err := sess.Require()
	if err != nil {
		return ResumeResult{}, err
	}
	if s.resumes == nil {
		return s.degrade(ctx, user, errors.New("no resume extractor configured")), nil
	}

	text, err := s.resumes.ExtractFile(ctx, path)
	if err != nil {
		return s.degrade(ctx, user, err), nil
	}
	return s.analyzed(ctx, user, text), nil
}

// AnalyzeText finds evidence in already extracted text.
func (s *Service) AnalyzeText(ctx context.Context, sess *session.Session, text string) (ResumeResult, error) {
	user, err := sess.Require()
	if err != nil {
		return ResumeResult{}, err
	}
	return s.analyzed(ctx, user, text), nil
}

func (s *Service) analyzed(ctx context.Context, user, text string) ResumeResult {
	ev := s.evidence.Extract(text)
	s.logger.Debug(ctx, "resume analysed", "user", user, "chars", len(text), "evidence", ev)
	return ResumeResult{Text: text, Evidence: ev}
}

func (s *Service) degrade(ctx context.Context, user string, cause error) ResumeResult {
	if !errors.Is(cause, common.ErrExtractionFailed) {
		cause = errors.Join(common.ErrExtractionFailed, cause)
	}
	s.logger.Warn(ctx, "resume extraction failed, continuing without evidence", "user", user, "err", cause)
	return ResumeResult{Evidence: []string{}, Warning: cause}
}

// Recommend validates resp and runs the rule engine.
func (s *Service) Recommend(ctx context.Context, sess *session.Session, resp questionnaire.Response, ev []string) (recommend.Set, error) {
	user, err := sess.Require()
	if err != nil {
		return recommend.Set{}, err
	}
	if err := resp.Validate(); err != nil {
		return recommend.Set{}, err
	}

	for _, m := range s.engine.Trace(resp, ev) {
		s.logger.Debug(ctx, "rule matched", "user", user, "rule", m.Rule, "label", m.Label)
	}
	set := s.engine.Recommend(resp, ev)
	s.logger.Info(ctx, "recommendations computed", "user", user, "count", set.Len())
	return set, nil
}

// Snapshot builds the record of the current session: answers, evidence,
// freshly computed suggestions and the current time.
func (s *Service) Snapshot(ctx context.Context, sess *session.Session, resp questionnaire.Response, ev []string) (archive.Record, error) {
	user, err := sess.Require()
	if err != nil {
		return archive.Record{}, err
	}
	set, err := s.Recommend(ctx, sess, resp, ev)
	if err != nil {
		return archive.Record{}, err
	}
	return archive.NewRecord(user, resp, ev, set, s.now()), nil
}

// Report renders the current session as a downloadable report in dir and
// returns its path.
func (s *Service) Report(ctx context.Context, sess *session.Session, dir string, resp questionnaire.Response, ev []string) (string, error) {
	rec, err := s.Snapshot(ctx, sess, resp, ev)
	if err != nil {
		return "", err
	}

	path, err := report.WriteFile(dir, report.New(rec))
	if err != nil {
		s.logger.Error(ctx, "report write failed", "user", rec.User, "err", err)
		return "", err
	}
	s.logger.Info(ctx, "report written", "user", rec.User, "path", path)
	return path, nil
}

// Save archives the current session and returns the storage key.
func (s *Service) Save(ctx context.Context, sess *session.Session, resp questionnaire.Response, ev []string) (string, error) {
	rec, err := s.Snapshot(ctx, sess, resp, ev)
	if err != nil {
		return "", err
	}
	if s.archiver == nil {
		return "", errors.Join(common.ErrStorageUnavailable, errors.New("no archive configured"))
	}

	key, err := s.archiver.Archive(ctx, rec)
	if err != nil {
		s.logger.Error(ctx, "archive failed", "user", rec.User, "err", err)
		return "", err
	}
	s.logger.Info(ctx, "session archived", "user", rec.User, "key", key)
	return key, nil
}
