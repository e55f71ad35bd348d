package step

// Token names a display color role for a highlighted position. The renderer
// maps tokens to concrete styles; the engine never deals in colors directly.
type Token string

const (
	TokenCompare Token = "compare"
	TokenSwap    Token = "swap"
	TokenMove    Token = "move"
	TokenInsert  Token = "insert"
	TokenVisit   Token = "visit"
	TokenDone    Token = "done"
)

// HighlightMap annotates positions with display tokens for one frame. It is
// transient and render-only, never part of persisted state.
type HighlightMap map[int]Token

// Phase selects which of a step's two frames a highlight map describes:
// the frame shown while the step is held, or the frame after its mutation
// has been committed.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseCommit
)

// Highlights returns the highlight map for the given phase of the step.
// Render-only kinds keep their operands lit through the commit frame so a
// tick-driven display still shows them between steps.
func (s Step) Highlights(phase Phase) HighlightMap {
	switch s.Kind {
	case Compare:
		return HighlightMap{s.A: TokenCompare, s.B: TokenCompare}
	case Visit:
		return HighlightMap{s.A: TokenVisit}
	case Swap:
		if phase == PhaseActive {
			return HighlightMap{s.A: TokenSwap, s.B: TokenSwap}
		}
		return HighlightMap{s.A: TokenDone, s.B: TokenDone}
	case Shift:
		if phase == PhaseActive {
			return HighlightMap{s.A: TokenMove, s.B: TokenMove}
		}
		return HighlightMap{s.B: TokenDone}
	case Insert:
		if phase == PhaseActive {
			return HighlightMap{s.A: TokenInsert}
		}
		return HighlightMap{s.A: TokenDone}
	default:
		return nil
	}
}
