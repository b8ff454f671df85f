package domain

import "fmt"

type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

func (k Kind) Valid() bool {
	return k == KindDeposit || k == KindWithdrawal
}

type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

func (s State) Valid() bool {
	return s == StatePending || s == StateApproved || s == StateRejected
}

func (s State) Terminal() bool {
	return s == StateApproved || s == StateRejected
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Effect is the balance side effect that must commit together with a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectCredit
)

type Transition struct {
	Next   State
	Effect Effect
}

type transitionKey struct {
	kind     Kind
	decision Decision
}

// Withdrawals are debited at submission, so approving one moves no money
// and rejecting one refunds the reservation.
var transitions = map[transitionKey]Transition{
	{KindDeposit, DecisionApprove}:    {Next: StateApproved, Effect: EffectCredit},
	{KindDeposit, DecisionReject}:     {Next: StateRejected, Effect: EffectNone},
	{KindWithdrawal, DecisionApprove}: {Next: StateApproved, Effect: EffectNone},
	{KindWithdrawal, DecisionReject}:  {Next: StateRejected, Effect: EffectCredit},
}

// NextState resolves the transition of a request in state current.
func NextState(current State, kind Kind, decision Decision) (Transition, error) {
	if current != StatePending {
		return Transition{}, ErrAlreadyDecided
	}
	if !decision.Valid() {
		return Transition{}, fmt.Errorf("%w: %q", ErrInvalidDecision, decision)
	}
	tr, ok := transitions[transitionKey{kind, decision}]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return tr, nil
}
