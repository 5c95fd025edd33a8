package lua

import (
	"runtime"
	"sync"

	glua "github.com/yuin/gopher-lua"
)

type LuaBucket struct {
	once sync.Once
	max  int
	vms  chan *glua.LState
}

var bucket = LuaBucket{
	max: runtime.NumCPU(),
}

func (pl *LuaBucket) get() *glua.LState {
	pl.once.Do(func() {
		pl.vms = make(chan *glua.LState, pl.max)
		for range pl.max {
			pl.vms <- pl.new()
		}
	})

	return <-pl.vms
}

func (pl *LuaBucket) new() *glua.LState {
	// Scripts only look at injected globals; no stdlib needed.
	return glua.NewState(glua.Options{SkipOpenLibs: true})
}

func (pl *LuaBucket) put(L *glua.LState) {
	pl.vms <- L
}

func (pl *LuaBucket) shutdown() {
	if pl.vms == nil {
		return
	}
	close(pl.vms)
	for L := range pl.vms {
		L.Close()
	}
}
