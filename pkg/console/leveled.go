package console

// Leveled is the set of leveled writers. Callers that need to intercept
// output wrap a Leveled instead of swapping functions on the console.
type Leveled interface {
	Normal(text string) error
	Info(text string) error
	Warn(text string) error
	Error(text string) error
}

var _ Leveled = (*Console)(nil)

// Prefixed returns a Leveled that prepends prefix to every message
func Prefixed(l Leveled, prefix string) Leveled {
	return &prefixed{next: l, prefix: prefix}
}

type prefixed struct {
	next   Leveled
	prefix string
}

func (p *prefixed) Normal(text string) error { return p.next.Normal(p.prefix + text) }
func (p *prefixed) Info(text string) error   { return p.next.Info(p.prefix + text) }
func (p *prefixed) Warn(text string) error   { return p.next.Warn(p.prefix + text) }
func (p *prefixed) Error(text string) error  { return p.next.Error(p.prefix + text) }
