package app

import (
	"fmt"
	"log"
	"time"

	"github.com/ayusman/playsight/internal/analysis"
	"github.com/ayusman/playsight/internal/annotation"
	"github.com/ayusman/playsight/internal/evaluation"
	"github.com/ayusman/playsight/internal/gesture"
	"github.com/ayusman/playsight/internal/report"
	"github.com/ayusman/playsight/internal/store"
)

// Pipeline stages reported to progress observers.
const (
	stageGestures   = "gesture_analysis"
	stageDetailed   = "detailed_analysis"
	stageEvaluation = "evaluation"
	stageReport     = "report"
	stageDone       = "done"
)

// runPipeline runs the analysis stages over the annotation results and
// persists everything. The analyzers themselves are pure; this function owns
// all I/O and progress signaling.
//
// Pipeline stages:
// 1. Gesture analysis over person detections and object tracks
// 2. Detailed play analysis (emotional/spatial/activity/toys/windows)
// 3. Signal integration and evaluation scoring
// 4. Report composition and persistence
func (a *App) runPipeline(sessionID string, results *annotation.Results) error {
	start := time.Now()
	sessions := a.config.Store.Sessions()

	if err := sessions.UpdateStatus(sessionID, store.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	a.notify(Progress{SessionID: sessionID, Stage: stageGestures, Percent: 10})
	gestures := gesture.Analyze(results)

	a.notify(Progress{SessionID: sessionID, Stage: stageDetailed, Percent: 35})
	detailed := analysis.Analyze(results)

	a.notify(Progress{SessionID: sessionID, Stage: stageEvaluation, Percent: 60})
	integrated := Integrate(detailed, gestures)
	eval := evaluation.Evaluate(integrated)

	a.notify(Progress{SessionID: sessionID, Stage: stageReport, Percent: 80})
	rep := report.Generate(report.Input{
		Video:      detailed,
		Voice:      detailed.Voice,
		Gestures:   gestures,
		Integrated: integrated,
		Evaluation: eval,
	})

	if err := a.persist(sessionID, gestures, detailed, eval, rep); err != nil {
		a.fail(sessionID, err)
		return err
	}

	if a.config.Metrics != nil {
		a.config.Metrics.SessionsAnalyzed.Inc()
		a.config.Metrics.PipelineDuration.Observe(time.Since(start).Seconds())
		a.config.Metrics.LastOverallScore.Set(float64(rep.Summary.OverallScore))
	}

	a.notify(Progress{SessionID: sessionID, Stage: stageDone, Percent: 100})
	log.Printf("Session %s analyzed: score %d grade %s (%d gestures)",
		sessionID, rep.Summary.OverallScore, rep.Summary.Grade, len(gestures.Gestures))
	return nil
}

func (a *App) persist(sessionID string, gestures *gesture.Analysis, detailed *analysis.DetailedPlayAnalysis,
	eval *evaluation.Result, rep *report.ComprehensiveReport) error {

	reports := a.config.Store.Reports()
	if err := reports.SaveAnalysis(sessionID, store.KindGestures, gestures); err != nil {
		return fmt.Errorf("failed to save gesture analysis: %w", err)
	}
	if err := reports.SaveAnalysis(sessionID, store.KindDetailed, detailed); err != nil {
		return fmt.Errorf("failed to save detailed analysis: %w", err)
	}
	if err := reports.SaveAnalysis(sessionID, store.KindEvaluation, eval); err != nil {
		return fmt.Errorf("failed to save evaluation: %w", err)
	}
	if err := reports.Save(sessionID, rep.Summary.OverallScore, rep.Summary.Grade, rep); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if err := a.config.Store.Sessions().SetResult(sessionID, rep.Summary.OverallScore, rep.Summary.Grade); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}
	return nil
}
