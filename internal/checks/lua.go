package checks

import (
	"fmt"

	"github.com/vitistack/resolver-shim/pkg/lua"
	glua "github.com/yuin/gopher-lua"
)

// LuaValidator runs an operator-supplied script against a probe response.
// The script sees the globals "rcode" and "answers" and must leave a
// boolean on the stack; anything but true fails the check.
type LuaValidator struct {
	script string
}

func NewLuaValidator(script string) *LuaValidator {
	return &LuaValidator{script: script}
}

func (l *LuaValidator) Validate(rcode, answers int) error {
	vm := lua.Get()
	defer lua.Put(vm)

	vm.SetGlobal("rcode", glua.LNumber(rcode))
	vm.SetGlobal("answers", glua.LNumber(answers))

	if err := vm.DoString(l.script); err != nil {
		return fmt.Errorf("probe script failed: %w", err)
	}

	ret := vm.Get(-1)
	vm.Pop(1)

	if ret != glua.LTrue {
		return fmt.Errorf("probe script rejected response (rcode=%d, answers=%d)", rcode, answers)
	}

	return nil
}
