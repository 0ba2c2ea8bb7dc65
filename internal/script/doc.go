// Package script binds keys from Lua.
//
// A Script owns a sandboxed gopher-lua state with the base, table, string
// and math libraries plus a global "input" module:
//
//	local h = input.bind("Ctrl+S", function(action, mods)
//	    if action == input.PRESS then
//	        print("save")
//	    end
//	end)
//	input.unbind(h)
//
//	local x, y = input.pointer()
//	local dx, dy = input.scroll()
//	input.recenter(true)
//
// Callbacks run on the goroutine that dispatches keys. A Lua error raised
// by a callback becomes the subscriber's error. Closing the script removes
// every subscription it created.
package script
