package mock

import "sync"

// Interceptor records the calls made to a mock, by name.
type Interceptor struct {
	m      sync.Mutex
	Events map[string][]interface{}
}

func NewInterceptor() *Interceptor {
	return &Interceptor{
		Events: make(map[string][]interface{}),
	}
}

func (i *Interceptor) Reset() {
	i.m.Lock()
	defer i.m.Unlock()

	i.Events = make(map[string][]interface{})
}

func (i *Interceptor) Record(name string, args []interface{}) {
	i.m.Lock()
	defer i.m.Unlock()

	i.Events[name] = append(i.Events[name], interface{}(args))
}

// Count returns how many times name was recorded.
func (i *Interceptor) Count(name string) int {
	i.m.Lock()
	defer i.m.Unlock()

	return len(i.Events[name])
}
