package component

// Phase — фаза симуляции
type Phase int

const (
	Running Phase = iota
	Finished
)

func (p Phase) String() string {
	if p == Finished {
		return "finished"
	}
	return "running"
}
