package luadefaults

import (
	"testing"

	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func TestSandbox(t *testing.T) {
	L := NewSandbox()
	defer L.Close()

	require.NoError(t, L.DoString(`
	local t = {}
	table.insert(t, string.upper("ok"))
	total = math.max(1, 2) + #t
	`))
	require.Equal(t, lua.LNumber(3), L.GetGlobal("total"))

	for _, code := range []string{
		`dofile("/etc/passwd")`,
		`loadfile("/etc/passwd")`,
		`require("os")`,
		`os.exit(1)`,
		`io.open("/etc/passwd")`,
	} {
		require.Error(t, L.DoString(code), "sandbox should reject: %v", code)
	}
}
