package view

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseReady   Phase = "ready"
	PhaseFailed  Phase = "failed"
)

// State - неизменяемое состояние списка одного экземпляра view.
// Меняется только переходами Started, Succeeded, Failed и MutationApplied,
// каждый возвращает новое значение.
type State[T any] struct {
	Phase      Phase
	Target     string
	Items      []T
	Message    string
	Diagnostic string
}

func Idle[T any]() State[T] {
	return State[T]{Phase: PhaseIdle, Items: []T{}}
}

// Started: загрузка для target. Элементы другого target не показываются.
func (s State[T]) Started(target string) State[T] {
	next := State[T]{Phase: PhaseLoading, Target: target, Items: []T{}}
	if s.Target == target {
		next.Items = clone(s.Items)
	}
	return next
}

func (s State[T]) Succeeded(items []T) State[T] {
	return State[T]{Phase: PhaseReady, Target: s.Target, Items: clone(items)}
}

// Failed: одно сообщение вместо содержимого.
func (s State[T]) Failed(message, diagnostic string) State[T] {
	return State[T]{
		Phase:      PhaseFailed,
		Target:     s.Target,
		Items:      []T{},
		Message:    message,
		Diagnostic: diagnostic,
	}
}

// MutationApplied применяет подтверждённое бэкендом изменение к записям,
// для которых match вернул true. Остальные записи не трогаются.
func (s State[T]) MutationApplied(match func(T) bool, apply func(T) T) (State[T], bool) {
	next := s
	next.Items = make([]T, len(s.Items))

	applied := false
	for i, item := range s.Items {
		if match(item) {
			item = apply(item)
			applied = true
		}
		next.Items[i] = item
	}
	return next, applied
}

func (s State[T]) Loading() bool {
	return s.Phase == PhaseLoading
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
