package tracing

import (
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
)

// NamedHookable is a named object that accepts hooks.
type NamedHookable interface {
	sim.Named
	sim.Hookable
}

// CollectTrace lets the tracer collect timer events from a domain.
func CollectTrace(domain NamedHookable, tracer Tracer) {
	domain.AcceptHook(&traceHook{t: tracer})
}

// A traceHook turns tracker hook invocations into tracer calls.
type traceHook struct {
	t Tracer
}

// Func calls the tracer when the hook is triggered.
func (h *traceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case tracker.HookPosTimerStarted:
		h.t.TimerStarted(ctx.Item.(tracker.TimerRecord))
	case tracker.HookPosTimerCancelled:
		h.t.TimerCancelled(ctx.Item.(tracker.TimerRecord))
	case tracker.HookPosTimerReady:
		h.t.TimerReady(ctx.Item.(tracker.TimerRecord))
	case tracker.HookPosLogCleared:
		h.t.LogCleared(ctx.Item.(tracker.TimerRecord))
	case tracker.HookPosSlotUpgraded:
		h.t.SlotUpgraded(ctx.Item.(tracker.SlotUpgrade))
	}
}
