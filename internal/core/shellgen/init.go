package shellgen

import "github.com/colonyops/try/pkg/tmpl"

// The wrapper captures stdout and evaluates it on success. Stderr is
// redirected to the terminal so the picker can render while stdout stays
// reserved for the command block. A non-zero exit (cancellation) evaluates
// nothing.
const posixInitScript = `try() {
    local out
    out=$({{ .Exe }} "$@" 2>/dev/tty)
    if [ $? -eq 0 ]; then
        eval "$out"
    fi
}
{{ .SetRoot }}`

// Fish splits captured output on newlines, so the lines are reprinted and
// sourced instead of passed to eval.
const fishInitScript = `function try
    set -l out (command {{ .Exe }} $argv 2>/dev/tty)
    if test $status -eq 0
        printf '%s\n' $out | source
    end
end
{{ .SetRoot }}`

// InitScript renders the shell wrapper users evaluate from their rc file,
// binding the given executable path and initial workspace root.
func InitScript(d Dialect, exe, root string) (string, error) {
	text := posixInitScript
	if d.Name() == "fish" {
		text = fishInitScript
	}
	return tmpl.Render(text, map[string]string{
		"Exe":     d.Escape(exe),
		"SetRoot": d.SetEnv(EnvVar, root),
	})
}
