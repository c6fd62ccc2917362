package shell

// Integration snippets. The wrapper function runs the real binary, then
// evals any export statement it printed so the edit lands in the calling
// shell. Listings and diagnostics pass through untouched.

const bashZshSnippet = `# pathed shell integration
pathed() {
    local out st
    out="$(command pathed "$@")"
    st=$?
    if [ -n "$out" ]; then
        case "$out" in
            export\ *) eval "$out" ;;
            *) printf '%s\n' "$out" ;;
        esac
    fi
    return $st
}`

const fishSnippet = `# pathed shell integration
function pathed
    set -l out (command pathed $argv | string collect)
    set -l st $status
    if test -n "$out"
        switch "$out"
            case 'set -gx*'
                eval $out
            case '*'
                printf '%s\n' $out
        end
    end
    return $st
end`

// IntegrationSnippet returns the wrapper function for the given dialect.
func IntegrationSnippet(d Dialect) string {
	if d == Fish {
		return fishSnippet
	}
	return bashZshSnippet
}
