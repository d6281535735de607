package core

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
	OnRender(e *Engine)
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			break
		}
	}
}

// PushLayer attaches l and puts it on top of the stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
	e.RequestRedraw()
}

// PopLayer detaches the top layer.
func (e *Engine) PopLayer() {
	if l, ok := e.Layers.Pop(); ok {
		l.OnDetach(e)
		e.RequestRedraw()
	}
}
