package domain

// MenuAction is the identifier of a context-menu entry or keyboard shortcut.
type MenuAction string

const (
	MenuAction_DetectLanguage     MenuAction = "detectLanguage"
	MenuAction_ProofreadText      MenuAction = "proofreadText"
	MenuAction_SummarizeSelection MenuAction = "summarizeSelection"
	MenuAction_RewriteSelection   MenuAction = "rewriteSelection"

	// Keyboard shortcuts open the compose overlay as well.
	MenuAction_SummarizeShortcut MenuAction = "summarize-selection"
	MenuAction_RewriteShortcut   MenuAction = "rewrite-selection"
)

// RequiresSelection reports whether the action needs selected text to run.
func (a MenuAction) RequiresSelection() bool {
	return a == MenuAction_DetectLanguage || a == MenuAction_ProofreadText
}

// OpensComposeOverlay reports whether the action opens the in-page compose overlay.
func (a MenuAction) OpensComposeOverlay() bool {
	switch a {
	case MenuAction_SummarizeSelection, MenuAction_RewriteSelection,
		MenuAction_SummarizeShortcut, MenuAction_RewriteShortcut:
		return true
	}
	return false
}

// RouterState is a state of the context-menu router state machine.
type RouterState string

const (
	RouterState_Idle              RouterState = "idle"
	RouterState_AwaitingSelection RouterState = "awaiting-selection"
	RouterState_Dispatched        RouterState = "dispatched"
	RouterState_Completed         RouterState = "completed"
	RouterState_Failed            RouterState = "failed"
)

// DispatchedOperation is the operation a routed event was dispatched to.
type DispatchedOperation string

const (
	DispatchedOperation_None               DispatchedOperation = ""
	DispatchedOperation_DetectLanguage     DispatchedOperation = "DetectLanguage"
	DispatchedOperation_Proofread          DispatchedOperation = "Proofread"
	DispatchedOperation_OpenComposeOverlay DispatchedOperation = "OpenComposeOverlay"
)

// UserEvent is a user-originated action: a menu click or a keyboard shortcut.
type UserEvent struct {
	Action        MenuAction
	SelectionText string
	Tab           PageTab
}

// RouteOutcome is the terminal state reached by a routed event and what was told to the user.
type RouteOutcome struct {
	State     RouterState
	Operation DispatchedOperation
	Message   string
	IsError   bool
	// Transitions records every state the event went through, in order.
	Transitions []RouterState
}

// MenuItem is a context-menu entry offered to the user.
type MenuItem struct {
	ID       MenuAction `json:"id"`
	Title    string     `json:"title"`
	Contexts []string   `json:"contexts"`
}
