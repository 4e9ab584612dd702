package observe

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvstep/dijkstra"
)

// LogObserver writes step events to a slog.Logger.
//
// Every step is logged at Debug with msg "step"; vertex finalization at Info
// with msg "vertex finalized"; the last step additionally at Info with msg
// "run complete". Distances are rendered with dijkstra.FormatDistance so +Inf
// shows as "Infinity" in both text and JSON output.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns a LogObserver writing to logger (slog.Default() if nil).
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogObserver{logger: logger.With(slog.String("component", "dijkstra"))}
}

// OnStep logs ev.
func (l *LogObserver) OnStep(ev dijkstra.Event) {
	ctx := context.Background()
	attrs := stepAttrs(ev)
	l.logger.LogAttrs(ctx, slog.LevelDebug, "step", attrs...)

	if ev.Finalized {
		l.logger.LogAttrs(ctx, slog.LevelInfo, "vertex finalized",
			slog.String("run_id", ev.RunID),
			slog.String("vertex", ev.Vertex),
			slog.Int("unvisited", ev.Unvisited),
		)
	}
	if ev.Done {
		l.logger.LogAttrs(ctx, slog.LevelInfo, "run complete",
			slog.String("run_id", ev.RunID),
			slog.Int("steps", ev.Step),
		)
	}
}

func stepAttrs(ev dijkstra.Event) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("run_id", ev.RunID),
		slog.Int("step", ev.Step),
		slog.String("phase", ev.Phase.String()),
		slog.String("next", ev.Next.String()),
		slog.String("vertex", ev.Vertex),
	}
	if ev.Edge != nil {
		attrs = append(attrs, slog.Group("edge",
			slog.String("id", ev.Edge.ID),
			slog.String("from", ev.Edge.From),
			slog.String("to", ev.Edge.To),
			slog.Float64("weight", ev.Edge.Weight),
		))
	}
	attrs = append(attrs, slog.String("distance", dijkstra.FormatDistance(ev.Distance)))
	if ev.Phase == dijkstra.PhaseRelax {
		attrs = append(attrs, slog.Bool("improved", ev.Improved))
	}

	return attrs
}
