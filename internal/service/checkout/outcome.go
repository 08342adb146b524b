package checkout

type OutcomeKind string

const (
	OutcomeSucceeded OutcomeKind = "success"
	OutcomeCancelled OutcomeKind = "cancelled"
)

// Outcome - результат виджета оплаты: успех с reference или отмена.
type Outcome struct {
	Kind      OutcomeKind
	Reference string
}

func Succeeded(reference string) Outcome {
	return Outcome{Kind: OutcomeSucceeded, Reference: reference}
}

func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}
